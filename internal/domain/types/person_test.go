package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/domain/types"
)

func person(t *testing.T, name, phone string, tags ...string) types.Person {
	t.Helper()
	n, err := types.NewName(name)
	require.NoError(t, err)
	p, err := types.NewPhone(phone)
	require.NoError(t, err)
	e, err := types.NewEmail("someone@example.com")
	require.NoError(t, err)
	a, err := types.NewAddress("Somewhere 1")
	require.NoError(t, err)
	tt, err := types.NewTags(tags...)
	require.NoError(t, err)
	return types.NewPerson(n, p, e, a, tt...)
}

func TestPerson_TagsAreASet(t *testing.T) {
	p := person(t, "Amy Bee", "111", "husband", "friend", "friend")

	got := p.Tags()
	require.Len(t, got, 2)
	assert.Equal(t, "friend", got[0].Name())
	assert.Equal(t, "husband", got[1].Name())

	// Mutating the returned slice must not leak into the person.
	got[0] = got[1]
	assert.Equal(t, "friend", p.Tags()[0].Name())
}

func TestPerson_EqualityRules(t *testing.T) {
	amy := person(t, "Amy Bee", "111", "friend")
	amyUpper := person(t, "AMY BEE", "222")
	bob := person(t, "Bob Choo", "111", "friend")

	assert.True(t, amy.IsSamePerson(amyUpper))
	assert.False(t, amy.Equal(amyUpper))
	assert.False(t, amy.IsSamePerson(bob))

	// Tag order does not matter for equality.
	a := person(t, "Amy Bee", "111", "friend", "husband")
	b := person(t, "Amy Bee", "111", "husband", "friend")
	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
}

func TestPerson_TagEditsReturnCopies(t *testing.T) {
	amy := person(t, "Amy Bee", "111")
	friend, err := types.NewTag("friend")
	require.NoError(t, err)

	tagged := amy.WithAddedTags(friend)
	assert.Empty(t, amy.Tags())
	assert.True(t, tagged.HasTag(friend))

	untagged := tagged.WithoutTags(friend)
	assert.Empty(t, untagged.Tags())
	assert.Equal(t, amy, untagged)
}

func TestPerson_String(t *testing.T) {
	p := person(t, "Amy Bee", "11111111", "friend")
	assert.Equal(t,
		"Amy Bee Phone: 11111111 Email: someone@example.com Address: Somewhere 1 Tags: [friend]",
		p.String())
}

func TestPredicates(t *testing.T) {
	amy := person(t, "Amy Bee", "111", "college friend")
	bob := person(t, "Bob Choo", "222", "husband")
	all := []types.Person{amy, bob}

	t.Run("name keyword", func(t *testing.T) {
		got := types.Filter(all, types.NameContainsKeywords{Keywords: []string{"Amy"}})
		require.Len(t, got, 1)
		assert.Equal(t, amy, got[0])
	})
	t.Run("name keyword ignores case, needs whole word", func(t *testing.T) {
		assert.True(t, types.NameContainsKeywords{Keywords: []string{"bEE"}}.Test(amy))
		assert.False(t, types.NameContainsKeywords{Keywords: []string{"Am"}}.Test(amy))
	})
	t.Run("tag keyword", func(t *testing.T) {
		got := types.Filter(all, types.TagContainsKeywords{Keywords: []string{"FRIEND"}})
		assert.Equal(t, []types.Person{amy}, got)
	})
	t.Run("show all and nil", func(t *testing.T) {
		assert.Equal(t, all, types.Filter(all, types.ShowAll{}))
		assert.Equal(t, all, types.Filter(all, nil))
	})
}
