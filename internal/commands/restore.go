package commands

import (
	"errors"

	"addressbook/internal/book"
	"addressbook/internal/domain"
)

const (
	RestoreWord  = "restore"
	RestoreUsage = RestoreWord + ": Moves the persons identified by the index numbers used in the " +
		"last recycle bin listing back to the address book.\n" +
		"Parameters: INDEX [INDEX]... (must be positive integers)\n" +
		"Example: " + RestoreWord + " 1 2"

	MessageRestoreSuccess = "Restored Person: %s"
)

// RestoreCommand moves persons of the filtered bin list back into the book.
type RestoreCommand struct {
	Indices []Index
}

func (c *RestoreCommand) Execute(m domain.Model) (Result, error) {
	persons, err := resolve(m.FilteredBinPersons(), c.Indices)
	if err != nil {
		return Result{}, err
	}
	if err := m.RestorePersons(persons); err != nil {
		switch {
		case errors.Is(err, book.ErrDuplicatePerson):
			return Result{}, fail(err, MessageDuplicatePerson)
		case errors.Is(err, book.ErrPersonNotFound):
			return Result{}, fail(err, MessageMissingPerson)
		}
		return Result{}, err
	}
	m.CommitSnapshot()
	return Result{Feedback: eachLine(MessageRestoreSuccess, persons), Event: showBin()}, nil
}
