package commands

import "addressbook/internal/domain"

const (
	ClearWord  = "clear"
	ClearUsage = ClearWord + ": Clears all persons from the address book. " +
		"The recycle bin is left untouched."

	MessageClearSuccess = "Address book has been cleared!"
)

// ClearCommand empties the address book. Clearing an empty book records no
// undo step.
type ClearCommand struct{}

func (ClearCommand) Execute(m domain.Model) (Result, error) {
	if m.AddressBook().Len() == 0 {
		return Result{Feedback: MessageClearSuccess}, nil
	}
	m.ClearAddressBook()
	m.CommitSnapshot()
	return Result{Feedback: MessageClearSuccess}, nil
}
