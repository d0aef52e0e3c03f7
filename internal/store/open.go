package store

import (
	"fmt"
	"log/slog"

	"addressbook/internal/domain"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
	BackendBadger Backend = "badger"
)

// Options carries the settings shared by Open.
type Options struct {
	// Passphrase seals JSON files. Other backends reject it.
	Passphrase string
	Logger     *slog.Logger
}

// Open returns the backend stored at path. For badger, path is a directory.
func Open(backend Backend, path string, opts Options) (domain.Storage, error) {
	switch backend {
	case BackendJSON, "":
		return NewFileStore(path, WithPassphrase(opts.Passphrase)), nil
	case BackendSQLite:
		if opts.Passphrase != "" {
			return nil, fmt.Errorf("store: %s backend does not support a passphrase", backend)
		}
		return OpenSQLite(path)
	case BackendBadger:
		if opts.Passphrase != "" {
			return nil, fmt.Errorf("store: %s backend does not support a passphrase", backend)
		}
		return OpenBadger(path, BadgerOptions{Logger: opts.Logger})
	}
	return nil, fmt.Errorf("store: unknown backend %q", backend)
}
