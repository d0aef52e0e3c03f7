// Package storage connects the model to a persistence backend. It loads the
// initial data, saves after every change, reloads after external edits and
// copies data to and from plain JSON files.
package storage
