// Package testutil provides fixtures shared by the package tests: a fluent
// person builder and a fixed set of typical persons.
package testutil
