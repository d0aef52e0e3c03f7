// Package store persists the address book and the recycle bin.
//
// Every backend implements domain.Storage and stores the same record shape
// (see personRecord). Loading validates every field again, so a hand-edited
// or corrupt store surfaces as ErrDataConversion instead of a broken model.
//
// Backends:
//   - FileStore: one JSON document, optionally sealed with a passphrase
//   - SQLiteStore: persons and person_tags tables
//   - BadgerStore: one JSON value per person in a Badger directory
//
// All stores are safe for concurrent use.
package store
