// Package parser turns a line of user input into a ready-to-run command.
//
// A line is a command word followed by arguments. Person fields are given as
// prefixed values (n/NAME p/PHONE e/EMAIL a/ADDRESS t/TAG) in any order. A
// prefix only counts when it starts the input or follows whitespace, so
// "a/Block 5 c/o Tan" keeps "c/o" inside the address.
package parser
