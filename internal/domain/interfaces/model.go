package interfaces

import domaintypes "addressbook/internal/domain/types"

// ReadOnlyBook is a read-only view of a person container.
type ReadOnlyBook interface {
	Persons() []domaintypes.Person
	Len() int
}

// Model is the single owner of the address book and the recycle bin. Commands
// only mutate data through it. Every mutating method is atomic: on error the
// model is left exactly as it was.
type Model interface {
	AddressBook() ReadOnlyBook
	RecycleBin() ReadOnlyBook

	// Address book mutations
	AddPerson(person domaintypes.Person) error
	UpdatePerson(target, edited domaintypes.Person) error
	AddTags(persons []domaintypes.Person, tags []domaintypes.Tag) error
	RemoveTags(persons []domaintypes.Person, tags []domaintypes.Tag) error
	ClearAddressBook()

	// Moves between the containers
	DeletePersons(persons []domaintypes.Person) error
	RestorePersons(persons []domaintypes.Person) error

	// Recycle bin mutations
	PurgeBinPersons(persons []domaintypes.Person) error
	ClearRecycleBin()

	// ResetData replaces the content of both containers.
	ResetData(book, bin []domaintypes.Person) error

	// Filtered views
	FilteredPersons() []domaintypes.Person
	FilteredBinPersons() []domaintypes.Person
	UpdateFilteredPersonList(pred domaintypes.Predicate)
	UpdateFilteredBinList(pred domaintypes.Predicate)

	// Snapshot history
	CommitSnapshot()
	Undo() error
	Redo() error
	CanUndo() bool
	CanRedo() bool
}
