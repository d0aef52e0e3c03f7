package commands

import (
	"addressbook/internal/domain/types"
)

// Index is a zero-based position in a displayed (filtered) list.
type Index int

// FromOneBased converts the number a user typed into an Index.
func FromOneBased(n int) Index { return Index(n - 1) }

// OneBased returns the number the user sees for i.
func (i Index) OneBased() int { return int(i) + 1 }

// resolve maps indices onto list, failing if any is out of range.
func resolve(list []types.Person, indices []Index) ([]types.Person, error) {
	persons := make([]types.Person, 0, len(indices))
	for _, i := range indices {
		if i < 0 || int(i) >= len(list) {
			return nil, fail(nil, MessageInvalidPersonIndex)
		}
		persons = append(persons, list[i])
	}
	return persons, nil
}

func resolveOne(list []types.Person, i Index) (types.Person, error) {
	persons, err := resolve(list, []Index{i})
	if err != nil {
		return types.Person{}, err
	}
	return persons[0], nil
}
