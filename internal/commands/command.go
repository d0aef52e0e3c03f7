package commands

import (
	"addressbook/internal/domain"
	"addressbook/internal/events"
)

// Command is one parsed, ready-to-run operation.
type Command interface {
	Execute(m domain.Model) (Result, error)
}

// Result is what a successful command reports back.
type Result struct {
	// Feedback is shown to the user.
	Feedback string
	// Event, when set, is published for the presentation layer after the
	// command completed.
	Event events.Event
}

// CommandError is an execution failure with a user-facing message.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string { return e.Message }

func (e *CommandError) Unwrap() error { return e.Err }

func fail(err error, message string) error {
	return &CommandError{Message: message, Err: err}
}
