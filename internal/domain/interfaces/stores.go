package interfaces

import (
	"context"

	domaintypes "addressbook/internal/domain/types"
)

// Storage persists the address book and the recycle bin together.
type Storage interface {
	// Load returns the stored persons of both containers. Implementations
	// return an error wrapping store.ErrNoData when nothing was saved yet.
	Load(ctx context.Context) (book, bin []domaintypes.Person, err error)
	Save(ctx context.Context, book, bin []domaintypes.Person) error
	// Location describes where the data lives, for messages and file watching.
	Location() string
	Close() error
}
