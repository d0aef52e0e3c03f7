package commands

import (
	"errors"
	"fmt"
	"strings"

	"addressbook/internal/book"
	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
)

const (
	DeleteWord  = "delete"
	DeleteUsage = DeleteWord + ": Moves the persons identified by the index numbers used in the " +
		"last person listing to the recycle bin.\n" +
		"Parameters: INDEX [INDEX]... (must be positive integers)\n" +
		"Example: " + DeleteWord + " 1 3"

	MessageDeleteSuccess = "Deleted Person: %s"
)

// DeleteCommand moves persons of the filtered list into the recycle bin.
type DeleteCommand struct {
	Indices []Index
}

func (c *DeleteCommand) Execute(m domain.Model) (Result, error) {
	persons, err := resolve(m.FilteredPersons(), c.Indices)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePersons(persons); err != nil {
		switch {
		case errors.Is(err, book.ErrDuplicatePerson):
			return Result{}, fail(err, MessageDuplicateBinPerson)
		case errors.Is(err, book.ErrPersonNotFound):
			return Result{}, fail(err, MessageMissingPerson)
		}
		return Result{}, err
	}
	m.CommitSnapshot()
	return Result{Feedback: eachLine(MessageDeleteSuccess, persons)}, nil
}

// eachLine formats format once per person, one line each.
func eachLine(format string, persons []types.Person) string {
	lines := make([]string, len(persons))
	for i, p := range persons {
		lines[i] = fmt.Sprintf(format, p)
	}
	return strings.Join(lines, "\n")
}

// names joins the persons' names with commas.
func names(persons []types.Person) string {
	out := make([]string, len(persons))
	for i, p := range persons {
		out[i] = p.Name().String()
	}
	return strings.Join(out, ", ")
}
