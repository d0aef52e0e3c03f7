package testutil

import (
	"fmt"

	"addressbook/internal/domain/types"
)

// Default field values used by PersonBuilder.
const (
	DefaultName    = "Alice Pauline"
	DefaultPhone   = "85355255"
	DefaultEmail   = "alice@gmail.com"
	DefaultAddress = "123, Jurong West Ave 6, #08-111"
	DefaultTag     = "friends"
)

// PersonBuilder builds persons for tests. Invalid values panic: fixtures are
// expected to be valid.
type PersonBuilder struct {
	person types.Person
}

// NewPersonBuilder starts from the default person.
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{person: types.NewPerson(
		must(types.NewName(DefaultName)),
		must(types.NewPhone(DefaultPhone)),
		must(types.NewEmail(DefaultEmail)),
		must(types.NewAddress(DefaultAddress)),
		must(types.NewTag(DefaultTag)),
	)}
}

// From starts from a copy of p.
func From(p types.Person) *PersonBuilder { return &PersonBuilder{person: p} }

func (b *PersonBuilder) WithName(raw string) *PersonBuilder {
	b.person = b.person.WithName(must(types.NewName(raw)))
	return b
}

func (b *PersonBuilder) WithPhone(raw string) *PersonBuilder {
	b.person = b.person.WithPhone(must(types.NewPhone(raw)))
	return b
}

func (b *PersonBuilder) WithEmail(raw string) *PersonBuilder {
	b.person = b.person.WithEmail(must(types.NewEmail(raw)))
	return b
}

func (b *PersonBuilder) WithAddress(raw string) *PersonBuilder {
	b.person = b.person.WithAddress(must(types.NewAddress(raw)))
	return b
}

// WithTags replaces the tag set; no arguments clears it.
func (b *PersonBuilder) WithTags(raw ...string) *PersonBuilder {
	b.person = b.person.WithTags(must(types.NewTags(raw...))...)
	return b
}

func (b *PersonBuilder) Build() types.Person { return b.person }

// Tags validates raw tag names for use in assertions.
func Tags(raw ...string) []types.Tag { return must(types.NewTags(raw...)) }

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("testutil: invalid fixture: %v", err))
	}
	return v
}
