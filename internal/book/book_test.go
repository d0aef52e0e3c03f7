package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/book"
	"addressbook/internal/domain/types"
	"addressbook/internal/testutil"
)

func TestNewAddressBook_RejectsDuplicates(t *testing.T) {
	alice := testutil.Alice()
	shouting := testutil.From(alice).WithName("ALICE PAULINE").WithPhone("999").Build()

	_, err := book.NewAddressBook(alice, shouting)
	assert.ErrorIs(t, err, book.ErrDuplicatePerson)
}

func TestAddressBook_Add(t *testing.T) {
	b, err := book.NewAddressBook(testutil.TypicalPersons()...)
	require.NoError(t, err)

	t.Run("duplicate leaves book unchanged", func(t *testing.T) {
		before := b.Persons()
		dup := testutil.From(testutil.Alice()).WithEmail("other@example.com").Build()

		assert.ErrorIs(t, b.Add(dup), book.ErrDuplicatePerson)
		assert.Equal(t, before, b.Persons())
	})

	t.Run("new person is appended", func(t *testing.T) {
		require.NoError(t, b.Add(testutil.Amy()))
		got := b.Persons()
		assert.Equal(t, testutil.Amy(), got[len(got)-1])
		assert.True(t, b.Contains(testutil.Amy()))
	})
}

func TestAddressBook_Remove(t *testing.T) {
	b, err := book.NewAddressBook(testutil.Alice(), testutil.Benson())
	require.NoError(t, err)

	assert.ErrorIs(t, b.Remove(testutil.Carl()), book.ErrPersonNotFound)

	// Same name but different fields is not the stored entry.
	variant := testutil.From(testutil.Alice()).WithPhone("123").Build()
	assert.ErrorIs(t, b.Remove(variant), book.ErrPersonNotFound)

	require.NoError(t, b.Remove(testutil.Alice()))
	assert.Equal(t, 1, b.Len())
	assert.False(t, b.Contains(testutil.Alice()))
}

func TestAddressBook_Replace(t *testing.T) {
	newBook := func(t *testing.T) *book.AddressBook {
		b, err := book.NewAddressBook(testutil.Alice(), testutil.Benson(), testutil.Carl())
		require.NoError(t, err)
		return b
	}

	t.Run("keeps position", func(t *testing.T) {
		b := newBook(t)
		edited := testutil.From(testutil.Benson()).WithPhone("123").Build()
		require.NoError(t, b.Replace(testutil.Benson(), edited))
		assert.Equal(t, edited, b.Persons()[1])
	})

	t.Run("same person may keep its own name", func(t *testing.T) {
		b := newBook(t)
		edited := testutil.From(testutil.Benson()).WithName("BENSON MEIER").Build()
		require.NoError(t, b.Replace(testutil.Benson(), edited))
	})

	t.Run("collision with another entry", func(t *testing.T) {
		b := newBook(t)
		before := b.Persons()
		edited := testutil.From(testutil.Benson()).WithName("Carl Kurz").Build()
		assert.ErrorIs(t, b.Replace(testutil.Benson(), edited), book.ErrDuplicatePerson)
		assert.Equal(t, before, b.Persons())
	})

	t.Run("missing target", func(t *testing.T) {
		b := newBook(t)
		assert.ErrorIs(t, b.Replace(testutil.Daniel(), testutil.Elle()), book.ErrPersonNotFound)
	})
}

func TestRecycleBin_SameContract(t *testing.T) {
	bin, err := book.NewRecycleBin(testutil.Hoon())
	require.NoError(t, err)

	assert.ErrorIs(t, bin.Add(testutil.Hoon()), book.ErrDuplicatePerson)
	require.NoError(t, bin.Add(testutil.Ida()))
	assert.ErrorIs(t, bin.Remove(testutil.Alice()), book.ErrPersonNotFound)

	clone := bin.Clone()
	bin.Clear()
	assert.Equal(t, 0, bin.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestPersonList_SetPersonsIsAtomic(t *testing.T) {
	var l book.PersonList
	require.NoError(t, l.Add(testutil.Alice()))

	err := l.SetPersons([]types.Person{testutil.Benson(), testutil.Benson()})
	assert.ErrorIs(t, err, book.ErrDuplicatePerson)
	assert.Equal(t, 1, l.Len())
}
