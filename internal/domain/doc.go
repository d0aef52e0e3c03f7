// Package domain defines the address book's core data model and the contracts
// between its layers. It contains plain types (types subpackage) and
// interfaces (interfaces subpackage) only, re-exported here as aliases for
// compact imports.
package domain
