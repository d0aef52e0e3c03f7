package commands

import (
	"errors"
	"fmt"

	"addressbook/internal/book"
	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
)

const (
	EditWord  = "edit"
	EditUsage = EditWord + ": Edits the details of the person identified by the index number " +
		"used in the last person listing. Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: " + EditWord + " 1 p/91234567 e/johndoe@example.com"

	MessageEditSuccess = "Edited Person: %s"
	MessageNotEdited   = "At least one field to edit must be provided."
)

// EditDescriptor lists the fields to change. A nil field means "keep the
// current value"; a non-nil Tags replaces the tag set, and an empty slice
// clears it.
type EditDescriptor struct {
	Name    *types.Name
	Phone   *types.Phone
	Email   *types.Email
	Address *types.Address
	Tags    *[]types.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

// Apply returns p with the descriptor's fields applied.
func (d EditDescriptor) Apply(p types.Person) types.Person {
	if d.Name != nil {
		p = p.WithName(*d.Name)
	}
	if d.Phone != nil {
		p = p.WithPhone(*d.Phone)
	}
	if d.Email != nil {
		p = p.WithEmail(*d.Email)
	}
	if d.Address != nil {
		p = p.WithAddress(*d.Address)
	}
	if d.Tags != nil {
		p = p.WithTags(*d.Tags...)
	}
	return p
}

// EditCommand edits the person at Index of the filtered list.
type EditCommand struct {
	Index      Index
	Descriptor EditDescriptor
}

func (c *EditCommand) Execute(m domain.Model) (Result, error) {
	target, err := resolveOne(m.FilteredPersons(), c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Descriptor.Apply(target)

	if err := m.UpdatePerson(target, edited); err != nil {
		switch {
		case errors.Is(err, book.ErrDuplicatePerson):
			return Result{}, fail(err, MessageDuplicatePerson)
		case errors.Is(err, book.ErrPersonNotFound):
			return Result{}, fail(err, MessageMissingPerson)
		}
		return Result{}, err
	}
	m.UpdateFilteredPersonList(types.ShowAll{})
	m.CommitSnapshot()
	return Result{Feedback: fmt.Sprintf(MessageEditSuccess, edited)}, nil
}
