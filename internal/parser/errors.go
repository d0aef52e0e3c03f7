package parser

import (
	"fmt"

	"addressbook/internal/commands"
)

// ParseError is a rejected input line. Message is shown to the user as is;
// Err carries the cause, e.g. a *types.IllegalValueError.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string { return e.Message }

func (e *ParseError) Unwrap() error { return e.Err }

// invalidFormat reports input that does not match usage.
func invalidFormat(usage string, cause error) error {
	return &ParseError{Message: fmt.Sprintf(commands.MessageInvalidCommandFormat, usage), Err: cause}
}
