package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/book"
	"addressbook/internal/domain/types"
	"addressbook/internal/events"
	"addressbook/internal/model"
	"addressbook/internal/testutil"
)

type recorder struct{ events []events.Event }

func (r *recorder) Publish(ev events.Event) { r.events = append(r.events, ev) }

func typicalModel(t *testing.T, opts ...model.Option) *model.Model {
	t.Helper()
	m, err := model.New(testutil.TypicalPersons(), testutil.TypicalBinPersons(), opts...)
	require.NoError(t, err)
	return m
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := model.New([]types.Person{testutil.Amy(), testutil.Amy()}, nil)
	assert.ErrorIs(t, err, book.ErrDuplicatePerson)

	_, err = model.New(nil, []types.Person{testutil.Bob(), testutil.Bob()})
	assert.ErrorIs(t, err, book.ErrDuplicatePerson)
}

func TestFilteredPersonList_NameKeyword(t *testing.T) {
	m, err := model.New([]types.Person{testutil.Amy(), testutil.Bob()}, nil)
	require.NoError(t, err)

	m.UpdateFilteredPersonList(types.NameContainsKeywords{Keywords: []string{"Amy"}})
	assert.Equal(t, []types.Person{testutil.Amy()}, m.FilteredPersons())

	// The view is recomputed: a later mutation shows up without re-filtering.
	amyTwin := testutil.From(testutil.Alice()).WithName("Amy Tan").Build()
	require.NoError(t, m.UpdatePerson(testutil.Bob(), testutil.From(testutil.Bob()).WithName("Amy Choo").Build()))
	assert.Len(t, m.FilteredPersons(), 2)

	require.NoError(t, m.AddPerson(amyTwin))
	assert.Len(t, m.FilteredPersons(), 3, "adding resets the filter to show all")

	m.UpdateFilteredPersonList(nil)
	assert.Len(t, m.FilteredPersons(), 3)
}

func TestAddPerson_DuplicateLeavesModelUnchanged(t *testing.T) {
	rec := &recorder{}
	m := typicalModel(t, model.WithPublisher(rec))
	before := m.AddressBook().Persons()

	dup := testutil.From(testutil.Alice()).WithName("alice pauline").Build()
	assert.ErrorIs(t, m.AddPerson(dup), book.ErrDuplicatePerson)
	assert.Equal(t, before, m.AddressBook().Persons())
	assert.Empty(t, rec.events, "failed mutations publish nothing")
}

func TestDeleteThenRestore_RoundTrip(t *testing.T) {
	m := typicalModel(t)
	before := m.AddressBook().Persons()

	targets := []types.Person{testutil.Benson(), testutil.Daniel()}
	require.NoError(t, m.DeletePersons(targets))
	assert.Equal(t, 5, m.AddressBook().Len())
	assert.Equal(t, 4, m.RecycleBin().Len())

	require.NoError(t, m.RestorePersons(targets))
	assert.ElementsMatch(t, before, m.AddressBook().Persons())
	assert.Equal(t, testutil.TypicalBinPersons(), m.RecycleBin().Persons())
}

func TestDeletePersons_IsAllOrNothing(t *testing.T) {
	t.Run("missing person", func(t *testing.T) {
		m := typicalModel(t)
		err := m.DeletePersons([]types.Person{testutil.Alice(), testutil.Amy()})
		assert.ErrorIs(t, err, book.ErrPersonNotFound)
		assert.Equal(t, testutil.TypicalPersons(), m.AddressBook().Persons())
		assert.Equal(t, testutil.TypicalBinPersons(), m.RecycleBin().Persons())
	})

	t.Run("already in bin", func(t *testing.T) {
		binAlice := testutil.From(testutil.Alice()).WithPhone("000").Build()
		m, err := model.New(testutil.TypicalPersons(), []types.Person{binAlice})
		require.NoError(t, err)

		err = m.DeletePersons([]types.Person{testutil.Benson(), testutil.Alice()})
		assert.ErrorIs(t, err, book.ErrDuplicatePerson)
		assert.Equal(t, testutil.TypicalPersons(), m.AddressBook().Persons())
		assert.Equal(t, []types.Person{binAlice}, m.RecycleBin().Persons())
	})
}

func TestRestorePersons_Failures(t *testing.T) {
	m := typicalModel(t)
	assert.ErrorIs(t, m.RestorePersons([]types.Person{testutil.Alice()}), book.ErrPersonNotFound)

	clash := testutil.From(testutil.Hoon()).WithName("Alice Pauline").Build()
	m2, err := model.New(testutil.TypicalPersons(), []types.Person{clash})
	require.NoError(t, err)
	assert.ErrorIs(t, m2.RestorePersons([]types.Person{clash}), book.ErrDuplicatePerson)
	assert.Equal(t, 1, m2.RecycleBin().Len())
}

func TestTags_AddThenRemove(t *testing.T) {
	amy := testutil.From(testutil.Amy()).WithTags().Build()
	m, err := model.New([]types.Person{amy, testutil.Bob()}, nil)
	require.NoError(t, err)

	friend := testutil.Tags("friend")
	require.NoError(t, m.AddTags([]types.Person{amy}, friend))
	tagged := m.AddressBook().Persons()[0]
	assert.Equal(t, friend, tagged.Tags())

	require.NoError(t, m.RemoveTags([]types.Person{tagged}, friend))
	assert.Empty(t, m.AddressBook().Persons()[0].Tags())
	assert.Equal(t, amy, m.AddressBook().Persons()[0])
}

func TestTags_StalePersonFailsAtomically(t *testing.T) {
	m := typicalModel(t)
	stale := testutil.From(testutil.Carl()).WithPhone("1234").Build()

	err := m.AddTags([]types.Person{testutil.Alice(), stale}, testutil.Tags("vip"))
	assert.ErrorIs(t, err, book.ErrPersonNotFound)
	assert.Equal(t, testutil.Alice(), m.AddressBook().Persons()[0])
}

func TestPurgeAndClear(t *testing.T) {
	m := typicalModel(t)

	require.NoError(t, m.PurgeBinPersons([]types.Person{testutil.Hoon()}))
	assert.Equal(t, []types.Person{testutil.Ida()}, m.RecycleBin().Persons())
	assert.ErrorIs(t, m.PurgeBinPersons([]types.Person{testutil.Hoon()}), book.ErrPersonNotFound)

	m.ClearRecycleBin()
	assert.Equal(t, 0, m.RecycleBin().Len())

	m.ClearAddressBook()
	assert.Empty(t, m.FilteredPersons())
}

func TestUndoRedo(t *testing.T) {
	m := typicalModel(t)
	assert.False(t, m.CanUndo())
	assert.ErrorIs(t, m.Undo(), model.ErrNoUndo)

	require.NoError(t, m.AddPerson(testutil.Amy()))
	m.CommitSnapshot()
	require.NoError(t, m.DeletePersons([]types.Person{testutil.Alice()}))
	m.CommitSnapshot()
	m.UpdateFilteredPersonList(types.NameContainsKeywords{Keywords: []string{"Meier"}})

	require.NoError(t, m.Undo())
	assert.Len(t, m.FilteredPersons(), 8, "undo shows all persons again")
	assert.True(t, m.CanRedo())

	require.NoError(t, m.Undo())
	assert.Equal(t, testutil.TypicalPersons(), m.AddressBook().Persons())
	assert.ErrorIs(t, m.Undo(), model.ErrNoUndo)

	require.NoError(t, m.Redo())
	assert.Equal(t, 8, m.AddressBook().Len())

	// A new commit drops the redo branch.
	m.ClearRecycleBin()
	m.CommitSnapshot()
	assert.False(t, m.CanRedo())
	assert.ErrorIs(t, m.Redo(), model.ErrNoRedo)
}

func TestHistoryLimit(t *testing.T) {
	m := typicalModel(t, model.WithHistoryLimit(2))
	require.NoError(t, m.AddPerson(testutil.Amy()))
	m.CommitSnapshot()
	require.NoError(t, m.AddPerson(testutil.Bob()))
	m.CommitSnapshot()

	require.NoError(t, m.Undo())
	assert.ErrorIs(t, m.Undo(), model.ErrNoUndo)
	assert.Equal(t, 8, m.AddressBook().Len())
}

func TestChangesArePublished(t *testing.T) {
	rec := &recorder{}
	m := typicalModel(t, model.WithPublisher(rec))

	require.NoError(t, m.DeletePersons([]types.Person{testutil.George()}))
	require.Len(t, rec.events, 1)

	changed, ok := rec.events[0].(events.AddressBookChanged)
	require.True(t, ok)
	assert.Len(t, changed.Book, 6)
	assert.Len(t, changed.Bin, 3)
	assert.Equal(t, testutil.George(), changed.Bin[2])
}

func TestClearEmpty_PublishesNothing(t *testing.T) {
	rec := &recorder{}
	m, err := model.New(nil, nil, model.WithPublisher(rec))
	require.NoError(t, err)

	m.ClearAddressBook()
	m.ClearRecycleBin()
	assert.Empty(t, rec.events)
}

func TestResetData(t *testing.T) {
	m := typicalModel(t)
	m.UpdateFilteredBinList(types.NameContainsKeywords{Keywords: []string{"nobody"}})

	require.NoError(t, m.ResetData([]types.Person{testutil.Amy()}, []types.Person{testutil.Bob()}))
	assert.Equal(t, []types.Person{testutil.Bob()}, m.FilteredBinPersons())

	err := m.ResetData([]types.Person{testutil.Amy(), testutil.Amy()}, nil)
	assert.ErrorIs(t, err, book.ErrDuplicatePerson)
	assert.Equal(t, []types.Person{testutil.Amy()}, m.AddressBook().Persons())
}
