// Package model implements domain.Model: the in-memory owner of the address
// book, the recycle bin, their filtered views and the undo/redo history.
//
// Multi-step mutations run against copies of the containers which replace the
// live ones only when every step succeeded, so a failing call never leaves
// partial changes behind. Batch moves between the containers are therefore
// all-or-nothing. AddressBookChanged is published after each completed change.
package model
