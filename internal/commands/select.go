package commands

import (
	"fmt"

	"addressbook/internal/domain"
	"addressbook/internal/events"
)

const (
	SelectWord  = "select"
	SelectUsage = SelectWord + ": Selects the person identified by the index number used in the " +
		"last person listing.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + SelectWord + " 1"

	ProfileWord  = "profile"
	ProfileUsage = ProfileWord + ": Opens the profile page of the person identified by the index " +
		"number used in the last person listing.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + ProfileWord + " 1"

	MessageSelectSuccess  = "Selected Person: %d"
	MessageProfileSuccess = "Opening profile of: %s"
)

// SelectCommand highlights a row of the person list.
type SelectCommand struct {
	Index Index
}

func (c *SelectCommand) Execute(m domain.Model) (Result, error) {
	p, err := resolveOne(m.FilteredPersons(), c.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf(MessageSelectSuccess, c.Index.OneBased()),
		Event:    events.NewPersonSelected(p),
	}, nil
}

// ProfileCommand asks the UI to open a person's external profile. Nothing
// is fetched here.
type ProfileCommand struct {
	Index Index
}

func (c *ProfileCommand) Execute(m domain.Model) (Result, error) {
	p, err := resolveOne(m.FilteredPersons(), c.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf(MessageProfileSuccess, p.Name()),
		Event:    events.NewOpenProfileRequest(p),
	}, nil
}
