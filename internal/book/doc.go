// Package book implements the two person containers of the application: the
// AddressBook holding live contacts and the RecycleBin holding soft-deleted
// ones.
//
// Both are ordered lists that never hold two persons considered the same by
// types.Person.IsSamePerson. Every mutating method either succeeds completely
// or returns ErrDuplicatePerson / ErrPersonNotFound and leaves the list as it
// was.
package book
