package types

import (
	"fmt"
	"slices"
)

// Person is one entry of the address book. It is a value: every With* method
// returns a modified copy and leaves the receiver untouched.
type Person struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	tags    []Tag // sorted, unique, nil when empty
}

// NewPerson assembles a person from already validated fields.
func NewPerson(name Name, phone Phone, email Email, address Address, tags ...Tag) Person {
	return Person{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		tags:    tagSet(tags),
	}
}

func (p Person) Name() Name       { return p.name }
func (p Person) Phone() Phone     { return p.phone }
func (p Person) Email() Email     { return p.email }
func (p Person) Address() Address { return p.address }

// Tags returns a copy of the person's tags, sorted by name.
func (p Person) Tags() []Tag { return slices.Clone(p.tags) }

// HasTag reports whether the person carries t.
func (p Person) HasTag(t Tag) bool { return slices.Contains(p.tags, t) }

func (p Person) WithName(n Name) Person       { p.name = n; return p }
func (p Person) WithPhone(ph Phone) Person    { p.phone = ph; return p }
func (p Person) WithEmail(e Email) Person     { p.email = e; return p }
func (p Person) WithAddress(a Address) Person { p.address = a; return p }

// WithTags replaces the whole tag set.
func (p Person) WithTags(tags ...Tag) Person {
	p.tags = tagSet(tags)
	return p
}

// WithAddedTags returns the person with tags merged into its tag set.
func (p Person) WithAddedTags(tags ...Tag) Person {
	p.tags = tagSet(append(slices.Clone(p.tags), tags...))
	return p
}

// WithoutTags returns the person with every tag in tags dropped.
func (p Person) WithoutTags(tags ...Tag) Person {
	kept := make([]Tag, 0, len(p.tags))
	for _, t := range p.tags {
		if !slices.Contains(tags, t) {
			kept = append(kept, t)
		}
	}
	p.tags = tagSet(kept)
	return p
}

// IsSamePerson is the duplicate rule: names equal ignoring case.
func (p Person) IsSamePerson(other Person) bool {
	return p.name.SameAs(other.name)
}

// Equal compares every field and the tag set.
func (p Person) Equal(other Person) bool {
	return p.name.Equal(other.name) &&
		p.phone == other.phone &&
		p.email == other.email &&
		p.address == other.address &&
		slices.Equal(p.tags, other.tags)
}

// String renders a one-line summary used in command feedback.
func (p Person) String() string {
	return fmt.Sprintf("%s Phone: %s Email: %s Address: %s Tags: %s",
		p.name, p.phone, p.email, p.address, JoinTags(p.tags))
}
