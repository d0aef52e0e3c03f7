// Package types holds the plain value types of the address book: the validated
// person fields, the Person record itself and the predicates used to filter
// lists of persons.
//
// Every field type is immutable and can only be obtained through its
// constructor, which validates the raw string. The zero value of a field type
// is the "absent" value and is never produced by a successful constructor.
package types
