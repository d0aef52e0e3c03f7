package commands

import (
	"fmt"

	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
	"addressbook/internal/events"
)

const (
	ListWord  = "list"
	ListUsage = ListWord + ": Lists all persons in the address book."

	FindWord  = "find"
	FindUsage = FindWord + ": Finds all persons whose names contain any of the specified " +
		"keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindWord + " alice bob charlie"

	FindTagWord  = "findtag"
	FindTagUsage = FindTagWord + ": Finds all persons with a tag containing any of the specified " +
		"words (case-insensitive).\n" +
		"Parameters: TAG [MORE_TAGS]...\n" +
		"Example: " + FindTagWord + " friends colleagues"

	MessageListSuccess = "Listed all persons"
)

// ListCommand shows every person of the address book.
type ListCommand struct{}

func (ListCommand) Execute(m domain.Model) (Result, error) {
	m.UpdateFilteredPersonList(types.ShowAll{})
	return Result{Feedback: MessageListSuccess, Event: showBook()}, nil
}

// FindCommand narrows the person list to those matching Predicate. It backs
// both find and findtag.
type FindCommand struct {
	Predicate types.Predicate
}

func (c *FindCommand) Execute(m domain.Model) (Result, error) {
	m.UpdateFilteredPersonList(c.Predicate)
	return Result{
		Feedback: fmt.Sprintf(MessagePersonsListedOverview, len(m.FilteredPersons())),
		Event:    showBook(),
	}, nil
}

// showBook and showBin bring the listed container into view, top entry first.
func showBook() events.Event { return events.NewJumpToListRequest(0, false) }

func showBin() events.Event { return events.NewJumpToListRequest(0, true) }
