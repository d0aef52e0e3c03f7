package store

import "errors"

var (
	// ErrNoData means nothing has been saved at the location yet.
	ErrNoData = errors.New("store: no data")
	// ErrDataConversion means stored data could not be turned back into
	// valid persons.
	ErrDataConversion = errors.New("store: illegal values in stored data")
	// ErrWrongPassphrase is returned when a sealed file cannot be opened,
	// either because the passphrase is wrong or the file was modified.
	ErrWrongPassphrase = errors.New("store: wrong passphrase or corrupted data")
)
