package commands

import (
	"errors"
	"fmt"
	"slices"

	"addressbook/internal/book"
	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
)

const (
	TagAddWord  = "tagadd"
	TagAddUsage = TagAddWord + ": Adds tags to the persons identified by the index numbers used " +
		"in the last person listing.\n" +
		"Parameters: INDEX [INDEX]... t/TAG [t/TAG]...\n" +
		"Example: " + TagAddWord + " 1 2 t/friend t/colleague"

	TagRemoveWord  = "tagremove"
	TagRemoveUsage = TagRemoveWord + ": Removes tags from the persons identified by the index " +
		"numbers used in the last person listing.\n" +
		"Parameters: INDEX [INDEX]... t/TAG [t/TAG]...\n" +
		"Example: " + TagRemoveWord + " 1 t/friend"

	MessageTagAddSuccess    = "Added tag(s) %s to: %s"
	MessageTagsAlreadyExist = "The tag(s) already exist on all selected persons"
	MessageTagRemoveSuccess = "Removed tag(s) %s from: %s"
	MessageTagsNotFound     = "None of the selected persons have the tag(s) %s"
)

// TagAddCommand adds Tags to every selected person. It fails only when no
// selected person would gain a tag.
type TagAddCommand struct {
	Indices []Index
	Tags    []types.Tag
}

func (c *TagAddCommand) Execute(m domain.Model) (Result, error) {
	persons, err := resolve(m.FilteredPersons(), c.Indices)
	if err != nil {
		return Result{}, err
	}
	gains := slices.ContainsFunc(persons, func(p types.Person) bool {
		return slices.ContainsFunc(c.Tags, func(t types.Tag) bool { return !p.HasTag(t) })
	})
	if !gains {
		return Result{}, fail(nil, MessageTagsAlreadyExist)
	}
	if err := m.AddTags(persons, c.Tags); err != nil {
		return Result{}, tagFailure(err)
	}
	m.CommitSnapshot()
	return Result{Feedback: fmt.Sprintf(MessageTagAddSuccess, types.JoinTags(c.Tags), names(persons))}, nil
}

// TagRemoveCommand removes Tags from every selected person. It fails only
// when no selected person carries any of the tags.
type TagRemoveCommand struct {
	Indices []Index
	Tags    []types.Tag
}

func (c *TagRemoveCommand) Execute(m domain.Model) (Result, error) {
	persons, err := resolve(m.FilteredPersons(), c.Indices)
	if err != nil {
		return Result{}, err
	}
	loses := slices.ContainsFunc(persons, func(p types.Person) bool {
		return slices.ContainsFunc(c.Tags, p.HasTag)
	})
	if !loses {
		return Result{}, fail(nil, fmt.Sprintf(MessageTagsNotFound, types.JoinTags(c.Tags)))
	}
	if err := m.RemoveTags(persons, c.Tags); err != nil {
		return Result{}, tagFailure(err)
	}
	m.CommitSnapshot()
	return Result{Feedback: fmt.Sprintf(MessageTagRemoveSuccess, types.JoinTags(c.Tags), names(persons))}, nil
}

func tagFailure(err error) error {
	if errors.Is(err, book.ErrPersonNotFound) {
		return fail(err, MessageMissingPerson)
	}
	return err
}
