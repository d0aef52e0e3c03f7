package commands

import (
	"errors"
	"fmt"

	"addressbook/internal/book"
	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
)

const (
	AddWord  = "add"
	AddUsage = AddWord + ": Adds a person to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com " +
		"a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney"

	MessageAddSuccess = "New person added: %s"
)

// AddCommand adds one person to the address book.
type AddCommand struct {
	Person types.Person
}

func (c *AddCommand) Execute(m domain.Model) (Result, error) {
	if err := m.AddPerson(c.Person); err != nil {
		if errors.Is(err, book.ErrDuplicatePerson) {
			return Result{}, fail(err, MessageDuplicatePerson)
		}
		return Result{}, err
	}
	m.CommitSnapshot()
	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, c.Person)}, nil
}
