package interfaces

import (
	"context"

	domaintypes "addressbook/internal/domain/types"
)

// LogicService runs user command lines against the model.
type LogicService interface {
	// Execute parses and runs one command line and returns the feedback.
	// Errors carry the user-facing message in Error().
	Execute(commandText string) (string, error)
	// History returns the entered command lines, oldest first.
	History() []string
	FilteredPersons() []domaintypes.Person
	FilteredBinPersons() []domaintypes.Person
}

// StorageService moves data between the model and a Storage backend.
type StorageService interface {
	Load(ctx context.Context) (book, bin []domaintypes.Person, err error)
	// Reload replaces the model's data with what is stored. It reports
	// whether anything changed.
	Reload(ctx context.Context, m Model) (bool, error)
	Export(ctx context.Context, path string, m Model) error
	Import(ctx context.Context, path string, m Model) error
	Location() string
}
