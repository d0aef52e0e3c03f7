package store

import (
	"fmt"

	"addressbook/internal/book"
	"addressbook/internal/domain/types"
)

// personRecord is the stored form of a person.
type personRecord struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Tags    []string `json:"tags,omitempty"`
}

// document is the on-disk shape of a FileStore and of exported data.
type document struct {
	Persons    []personRecord `json:"persons"`
	RecycleBin []personRecord `json:"recycle_bin"`
}

func recordOf(p types.Person) personRecord {
	r := personRecord{
		Name:    p.Name().String(),
		Phone:   p.Phone().String(),
		Email:   p.Email().String(),
		Address: p.Address().String(),
	}
	for _, t := range p.Tags() {
		r.Tags = append(r.Tags, t.Name())
	}
	return r
}

// person validates r. Failures wrap ErrDataConversion and the field error.
func (r personRecord) person() (types.Person, error) {
	name, err := types.NewName(r.Name)
	if err != nil {
		return types.Person{}, conversionError(err)
	}
	phone, err := types.NewPhone(r.Phone)
	if err != nil {
		return types.Person{}, conversionError(err)
	}
	email, err := types.NewEmail(r.Email)
	if err != nil {
		return types.Person{}, conversionError(err)
	}
	address, err := types.NewAddress(r.Address)
	if err != nil {
		return types.Person{}, conversionError(err)
	}
	tags, err := types.NewTags(r.Tags...)
	if err != nil {
		return types.Person{}, conversionError(err)
	}
	return types.NewPerson(name, phone, email, address, tags...), nil
}

func conversionError(err error) error {
	return fmt.Errorf("%w: %w", ErrDataConversion, err)
}

func recordsOf(persons []types.Person) []personRecord {
	out := make([]personRecord, len(persons))
	for i, p := range persons {
		out[i] = recordOf(p)
	}
	return out
}

// personsOf converts records back, rejecting duplicates within the list.
func personsOf(records []personRecord) ([]types.Person, error) {
	out := make([]types.Person, 0, len(records))
	for _, r := range records {
		p, err := r.person()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if !book.Unique(out) {
		return nil, conversionError(book.ErrDuplicatePerson)
	}
	return out, nil
}

func newDocument(bookPersons, binPersons []types.Person) document {
	return document{Persons: recordsOf(bookPersons), RecycleBin: recordsOf(binPersons)}
}

func (d document) persons() (bookPersons, binPersons []types.Person, err error) {
	if bookPersons, err = personsOf(d.Persons); err != nil {
		return nil, nil, err
	}
	if binPersons, err = personsOf(d.RecycleBin); err != nil {
		return nil, nil, err
	}
	return bookPersons, binPersons, nil
}
