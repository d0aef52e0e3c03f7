// Package commands implements every operation of the command language.
//
// A Command is built by the parser and run once against a domain.Model.
// Execute either applies its whole change and returns a Result, or returns a
// *CommandError and leaves the model as it found it. Mutating commands commit
// a model snapshot on success so that undo and redo can walk back through
// them.
//
// Commands
//
//   - add, edit, delete, clear: change the address book
//   - tagadd, tagremove: change the tags of several persons at once
//   - restore, bin-delete, bin-clear: work on the recycle bin
//   - list, find, findtag, bin-list, bin-find: update the filtered views
//   - select, profile, help, exit: only publish UI events
//   - undo, redo, history: walk the command history
package commands
