package types

import (
	"strings"

	"golang.org/x/text/cases"
)

// NameConstraint is shown when a name fails validation.
const NameConstraint = "Person names should only contain alphanumeric characters and spaces, " +
	"and it should not be blank"

// Name is a person's full name.
type Name struct {
	value string
}

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	if err := checkField("name", tagPersonName, raw, NameConstraint); err != nil {
		return Name{}, err
	}
	return Name{value: raw}, nil
}

// String returns the name exactly as it was given.
func (n Name) String() string { return n.value }

// IsZero reports whether n is the absent name.
func (n Name) IsZero() bool { return n.value == "" }

// Equal reports exact equality.
func (n Name) Equal(other Name) bool { return n.value == other.value }

// SameAs reports equality under Unicode case folding. This is the rule that
// decides whether two persons are duplicates.
func (n Name) SameAs(other Name) bool {
	return foldCase(n.value) == foldCase(other.value)
}

// Words splits the name on whitespace.
func (n Name) Words() []string { return strings.Fields(n.value) }

// foldCase builds a fresh Caser per call; cases.Caser keeps internal state.
func foldCase(s string) string { return cases.Fold().String(s) }
