package book

import (
	"errors"
	"slices"

	"addressbook/internal/domain/types"
)

var (
	// ErrDuplicatePerson is returned when a change would leave two persons
	// with the same name in one container.
	ErrDuplicatePerson = errors.New("operation would result in duplicate persons")
	// ErrPersonNotFound is returned when the target person is not in the container.
	ErrPersonNotFound = errors.New("person not found")
)

// PersonList is an insertion-ordered list of unique persons. The zero value is
// an empty list ready to use.
type PersonList struct {
	persons []types.Person
}

// Persons returns a copy of the list.
func (l *PersonList) Persons() []types.Person { return slices.Clone(l.persons) }

// Len returns the number of persons.
func (l *PersonList) Len() int { return len(l.persons) }

// Contains reports whether a person considered the same as p is present.
func (l *PersonList) Contains(p types.Person) bool {
	return slices.ContainsFunc(l.persons, p.IsSamePerson)
}

// Add appends p.
func (l *PersonList) Add(p types.Person) error {
	if l.Contains(p) {
		return ErrDuplicatePerson
	}
	l.persons = append(l.persons, p)
	return nil
}

// Remove deletes the entry equal to p.
func (l *PersonList) Remove(p types.Person) error {
	i := l.indexOf(p)
	if i < 0 {
		return ErrPersonNotFound
	}
	l.persons = slices.Delete(l.persons, i, i+1)
	return nil
}

// Replace swaps target for replacement in place, keeping its position.
func (l *PersonList) Replace(target, replacement types.Person) error {
	i := l.indexOf(target)
	if i < 0 {
		return ErrPersonNotFound
	}
	for j, other := range l.persons {
		if j != i && other.IsSamePerson(replacement) {
			return ErrDuplicatePerson
		}
	}
	l.persons[i] = replacement
	return nil
}

// SetPersons replaces the whole content. It fails without touching the list
// when persons contains duplicates.
func (l *PersonList) SetPersons(persons []types.Person) error {
	if !Unique(persons) {
		return ErrDuplicatePerson
	}
	l.persons = slices.Clone(persons)
	return nil
}

// Clear empties the list.
func (l *PersonList) Clear() { l.persons = nil }

// Equal compares content and order.
func (l *PersonList) Equal(other *PersonList) bool {
	return slices.EqualFunc(l.persons, other.persons, types.Person.Equal)
}

func (l *PersonList) indexOf(p types.Person) int {
	return slices.IndexFunc(l.persons, p.Equal)
}

// Unique reports whether no two persons in the slice are duplicates.
func Unique(persons []types.Person) bool {
	for i := range persons {
		for j := i + 1; j < len(persons); j++ {
			if persons[i].IsSamePerson(persons[j]) {
				return false
			}
		}
	}
	return true
}
