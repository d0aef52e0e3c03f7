package commands

import (
	"errors"
	"fmt"

	"addressbook/internal/book"
	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
)

const (
	BinListWord  = "bin-list"
	BinListUsage = BinListWord + ": Lists all persons in the recycle bin."

	BinFindWord  = "bin-find"
	BinFindUsage = BinFindWord + ": Finds all persons in the recycle bin whose names contain any " +
		"of the specified keywords (case-insensitive).\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + BinFindWord + " alice bob"

	BinDeleteWord  = "bin-delete"
	BinDeleteUsage = BinDeleteWord + ": Permanently deletes the persons identified by the index " +
		"numbers used in the last recycle bin listing.\n" +
		"Parameters: INDEX [INDEX]... (must be positive integers)\n" +
		"Example: " + BinDeleteWord + " 1 2"

	BinClearWord  = "bin-clear"
	BinClearUsage = BinClearWord + ": Permanently deletes every person in the recycle bin."

	MessageBinListSuccess   = "Listed all persons in the recycle bin"
	MessageBinDeleteSuccess = "Permanently deleted: %s"
	MessageBinClearSuccess  = "Recycle bin has been cleared!"
)

// BinListCommand shows every person of the recycle bin.
type BinListCommand struct{}

func (BinListCommand) Execute(m domain.Model) (Result, error) {
	m.UpdateFilteredBinList(types.ShowAll{})
	return Result{Feedback: MessageBinListSuccess, Event: showBin()}, nil
}

// BinFindCommand narrows the recycle bin list to persons matching Predicate.
type BinFindCommand struct {
	Predicate types.Predicate
}

func (c *BinFindCommand) Execute(m domain.Model) (Result, error) {
	m.UpdateFilteredBinList(c.Predicate)
	return Result{
		Feedback: fmt.Sprintf(MessagePersonsListedOverview, len(m.FilteredBinPersons())),
		Event:    showBin(),
	}, nil
}

// BinDeleteCommand purges persons of the filtered bin list for good.
type BinDeleteCommand struct {
	Indices []Index
}

func (c *BinDeleteCommand) Execute(m domain.Model) (Result, error) {
	persons, err := resolve(m.FilteredBinPersons(), c.Indices)
	if err != nil {
		return Result{}, err
	}
	if err := m.PurgeBinPersons(persons); err != nil {
		if errors.Is(err, book.ErrPersonNotFound) {
			return Result{}, fail(err, MessageMissingPerson)
		}
		return Result{}, err
	}
	m.CommitSnapshot()
	return Result{Feedback: eachLine(MessageBinDeleteSuccess, persons), Event: showBin()}, nil
}

// BinClearCommand empties the recycle bin.
type BinClearCommand struct{}

func (BinClearCommand) Execute(m domain.Model) (Result, error) {
	if m.RecycleBin().Len() == 0 {
		return Result{Feedback: MessageBinClearSuccess}, nil
	}
	m.ClearRecycleBin()
	m.CommitSnapshot()
	return Result{Feedback: MessageBinClearSuccess}, nil
}
