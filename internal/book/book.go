package book

import "addressbook/internal/domain/types"

// AddressBook holds the live contacts.
type AddressBook struct {
	PersonList
}

// NewAddressBook returns a book holding persons, or ErrDuplicatePerson.
func NewAddressBook(persons ...types.Person) (*AddressBook, error) {
	b := &AddressBook{}
	if err := b.SetPersons(persons); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns an independent copy.
func (b *AddressBook) Clone() *AddressBook {
	return &AddressBook{PersonList{persons: b.Persons()}}
}

// RecycleBin holds soft-deleted contacts until they are restored or purged.
// It has the same contract as AddressBook.
type RecycleBin struct {
	PersonList
}

// NewRecycleBin returns a bin holding persons, or ErrDuplicatePerson.
func NewRecycleBin(persons ...types.Person) (*RecycleBin, error) {
	b := &RecycleBin{}
	if err := b.SetPersons(persons); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns an independent copy.
func (b *RecycleBin) Clone() *RecycleBin {
	return &RecycleBin{PersonList{persons: b.Persons()}}
}
