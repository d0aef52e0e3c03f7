package types

import (
	"slices"
	"strings"
)

// Predicate selects persons for a filtered view. Implementations are plain
// structs, so two commands parsed from the same input are deeply equal.
type Predicate interface {
	Test(p Person) bool
}

// ShowAll accepts every person.
type ShowAll struct{}

func (ShowAll) Test(Person) bool { return true }

// NameContainsKeywords accepts a person when any keyword equals a whole word of
// the person's name, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

func (pred NameContainsKeywords) Test(p Person) bool {
	words := p.Name().Words()
	return slices.ContainsFunc(pred.Keywords, func(k string) bool {
		return containsWordIgnoreCase(words, k)
	})
}

// TagContainsKeywords accepts a person when any keyword equals a whole word of
// one of the person's tags, ignoring case.
type TagContainsKeywords struct {
	Keywords []string
}

func (pred TagContainsKeywords) Test(p Person) bool {
	for _, t := range p.tags {
		words := strings.Fields(t.name)
		if slices.ContainsFunc(pred.Keywords, func(k string) bool {
			return containsWordIgnoreCase(words, k)
		}) {
			return true
		}
	}
	return false
}

func containsWordIgnoreCase(words []string, keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return false
	}
	want := foldCase(keyword)
	return slices.ContainsFunc(words, func(w string) bool { return foldCase(w) == want })
}

// Filter returns the persons accepted by pred, in order. A nil pred accepts
// everything.
func Filter(persons []Person, pred Predicate) []Person {
	out := make([]Person, 0, len(persons))
	for _, p := range persons {
		if pred == nil || pred.Test(p) {
			out = append(out, p)
		}
	}
	return out
}
