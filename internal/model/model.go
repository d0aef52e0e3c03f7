package model

import (
	"log/slog"

	"addressbook/internal/book"
	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
	"addressbook/internal/events"
	"addressbook/internal/logging"
)

// DefaultHistoryLimit bounds the number of snapshots kept for undo/redo.
const DefaultHistoryLimit = 100

// Model owns the address book and the recycle bin.
type Model struct {
	book *book.AddressBook
	bin  *book.RecycleBin

	personFilter types.Predicate
	binFilter    types.Predicate

	history *history
	events  domain.EventPublisher
	log     *slog.Logger
}

// Option customises a Model.
type Option func(*Model)

// WithPublisher publishes AddressBookChanged to p after each change.
func WithPublisher(p domain.EventPublisher) Option {
	return func(m *Model) { m.events = p }
}

// WithHistoryLimit caps the undo/redo history at n snapshots (n >= 2).
func WithHistoryLimit(n int) Option {
	return func(m *Model) {
		if n >= 2 {
			m.history.limit = n
		}
	}
}

// WithLogger sets the logger used for debug traces of mutations.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.log = logging.OrDiscard(l) }
}

// New builds a model holding the given persons. It fails with
// book.ErrDuplicatePerson when either list holds duplicates.
func New(bookPersons, binPersons []types.Person, opts ...Option) (*Model, error) {
	b, err := book.NewAddressBook(bookPersons...)
	if err != nil {
		return nil, err
	}
	bin, err := book.NewRecycleBin(binPersons...)
	if err != nil {
		return nil, err
	}
	m := &Model{
		book:         b,
		bin:          bin,
		personFilter: types.ShowAll{},
		binFilter:    types.ShowAll{},
		history:      &history{limit: DefaultHistoryLimit},
		log:          logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.history.reset(m.state())
	return m, nil
}

// AddressBook returns a copy of the live address book.
func (m *Model) AddressBook() domain.ReadOnlyBook { return m.book.Clone() }

// RecycleBin returns a copy of the recycle bin.
func (m *Model) RecycleBin() domain.ReadOnlyBook { return m.bin.Clone() }

// AddPerson appends p to the address book and resets the person filter so
// the new entry is visible.
func (m *Model) AddPerson(p types.Person) error {
	if err := m.book.Add(p); err != nil {
		return err
	}
	m.personFilter = types.ShowAll{}
	m.changed("add person")
	return nil
}

// UpdatePerson replaces target with edited in place.
func (m *Model) UpdatePerson(target, edited types.Person) error {
	if err := m.book.Replace(target, edited); err != nil {
		return err
	}
	m.changed("update person")
	return nil
}

// AddTags merges tags into every person of the batch.
func (m *Model) AddTags(persons []types.Person, tags []types.Tag) error {
	return m.retag(persons, func(p types.Person) types.Person { return p.WithAddedTags(tags...) }, "add tags")
}

// RemoveTags drops tags from every person of the batch.
func (m *Model) RemoveTags(persons []types.Person, tags []types.Tag) error {
	return m.retag(persons, func(p types.Person) types.Person { return p.WithoutTags(tags...) }, "remove tags")
}

func (m *Model) retag(persons []types.Person, edit func(types.Person) types.Person, op string) error {
	next := m.book.Clone()
	for _, p := range persons {
		if err := next.Replace(p, edit(p)); err != nil {
			return err
		}
	}
	m.book = next
	m.changed(op)
	return nil
}

// ClearAddressBook removes every live person. The recycle bin is untouched.
func (m *Model) ClearAddressBook() {
	if m.book.Len() == 0 {
		return
	}
	m.book.Clear()
	m.changed("clear address book")
}

// DeletePersons moves the batch from the address book into the recycle bin.
// It fails with book.ErrPersonNotFound if a person is not in the book and
// book.ErrDuplicatePerson if one already has a counterpart in the bin or in
// the batch; nothing moves in either case.
func (m *Model) DeletePersons(persons []types.Person) error {
	nextBook, nextBin := m.book.Clone(), m.bin.Clone()
	if err := move(&nextBook.PersonList, &nextBin.PersonList, persons); err != nil {
		return err
	}
	m.book, m.bin = nextBook, nextBin
	m.changed("delete persons")
	return nil
}

// RestorePersons moves the batch from the recycle bin back into the address
// book, with the same failure modes as DeletePersons.
func (m *Model) RestorePersons(persons []types.Person) error {
	nextBook, nextBin := m.book.Clone(), m.bin.Clone()
	if err := move(&nextBin.PersonList, &nextBook.PersonList, persons); err != nil {
		return err
	}
	m.book, m.bin = nextBook, nextBin
	m.changed("restore persons")
	return nil
}

func move(from, to *book.PersonList, persons []types.Person) error {
	for _, p := range persons {
		if err := from.Remove(p); err != nil {
			return err
		}
		if err := to.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// PurgeBinPersons deletes the batch from the recycle bin for good.
func (m *Model) PurgeBinPersons(persons []types.Person) error {
	next := m.bin.Clone()
	for _, p := range persons {
		if err := next.Remove(p); err != nil {
			return err
		}
	}
	m.bin = next
	m.changed("purge bin persons")
	return nil
}

// ClearRecycleBin empties the recycle bin.
func (m *Model) ClearRecycleBin() {
	if m.bin.Len() == 0 {
		return
	}
	m.bin.Clear()
	m.changed("clear recycle bin")
}

// ResetData replaces both containers and shows everything again.
func (m *Model) ResetData(bookPersons, binPersons []types.Person) error {
	b, err := book.NewAddressBook(bookPersons...)
	if err != nil {
		return err
	}
	bin, err := book.NewRecycleBin(binPersons...)
	if err != nil {
		return err
	}
	m.book, m.bin = b, bin
	m.personFilter, m.binFilter = types.ShowAll{}, types.ShowAll{}
	m.changed("reset data")
	return nil
}

// FilteredPersons returns the address book entries accepted by the current
// person filter, recomputed on every call.
func (m *Model) FilteredPersons() []types.Person {
	return types.Filter(m.book.Persons(), m.personFilter)
}

// FilteredBinPersons returns the recycle bin entries accepted by the current
// bin filter.
func (m *Model) FilteredBinPersons() []types.Person {
	return types.Filter(m.bin.Persons(), m.binFilter)
}

// UpdateFilteredPersonList replaces the person filter. nil shows all.
func (m *Model) UpdateFilteredPersonList(pred types.Predicate) {
	if pred == nil {
		pred = types.ShowAll{}
	}
	m.personFilter = pred
}

// UpdateFilteredBinList replaces the bin filter. nil shows all.
func (m *Model) UpdateFilteredBinList(pred types.Predicate) {
	if pred == nil {
		pred = types.ShowAll{}
	}
	m.binFilter = pred
}

// Equal reports whether both models hold the same data and show the same
// filtered lists.
func (m *Model) Equal(other *Model) bool {
	return m.book.Equal(&other.book.PersonList) &&
		m.bin.Equal(&other.bin.PersonList) &&
		personsEqual(m.FilteredPersons(), other.FilteredPersons()) &&
		personsEqual(m.FilteredBinPersons(), other.FilteredBinPersons())
}

func personsEqual(a, b []types.Person) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (m *Model) state() snapshot {
	return snapshot{book: m.book.Persons(), bin: m.bin.Persons()}
}

func (m *Model) changed(op string) {
	m.log.Debug("model changed", "op", op, "persons", m.book.Len(), "bin", m.bin.Len())
	if m.events != nil {
		m.events.Publish(events.NewAddressBookChanged(m.book.Persons(), m.bin.Persons()))
	}
}

// Compile-time assertion that Model implements domain.Model.
var _ domain.Model = (*Model)(nil)
