package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
	"addressbook/internal/store"
	"addressbook/internal/testutil"
)

type opener func(t *testing.T) domain.Storage

// fastKDF keeps sealing cheap in tests.
var fastKDF = store.WithScryptCost(1<<10, 8, 1)

func backends() map[string]opener {
	return map[string]opener{
		"json": func(t *testing.T) domain.Storage {
			return store.NewFileStore(filepath.Join(t.TempDir(), "addressbook.json"))
		},
		"json sealed": func(t *testing.T) domain.Storage {
			return store.NewFileStore(filepath.Join(t.TempDir(), "addressbook.enc"),
				store.WithPassphrase("correct horse"), fastKDF)
		},
		"sqlite": func(t *testing.T) domain.Storage {
			s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "addressbook.db"))
			require.NoError(t, err)
			return s
		},
		"badger": func(t *testing.T) domain.Storage {
			s, err := store.OpenBadger("", store.BadgerOptions{InMemory: true})
			require.NoError(t, err)
			return s
		},
	}
}

func TestBackends_RoundTrip(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			t.Cleanup(func() { _ = s.Close() })

			_, _, err := s.Load(ctx)
			require.ErrorIs(t, err, store.ErrNoData)

			require.NoError(t, s.Save(ctx, testutil.TypicalPersons(), testutil.TypicalBinPersons()))
			gotBook, gotBin, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, testutil.TypicalPersons(), gotBook)
			assert.Equal(t, testutil.TypicalBinPersons(), gotBin)

			// A second save replaces everything, including tags.
			amy := testutil.Amy()
			require.NoError(t, s.Save(ctx, []types.Person{testutil.Bob(), amy}, nil))
			gotBook, gotBin, err = s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []types.Person{testutil.Bob(), amy}, gotBook)
			assert.Empty(t, gotBin)

			// Saved but empty is not the same as never saved.
			require.NoError(t, s.Save(ctx, nil, nil))
			gotBook, gotBin, err = s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, gotBook)
			assert.Empty(t, gotBin)
		})
	}
}

func TestBackends_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			t.Cleanup(func() { _ = s.Close() })
			assert.ErrorIs(t, s.Save(ctx, nil, nil), context.Canceled)
			_, _, err := s.Load(ctx)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestFileStore_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.enc")
	require.NoError(t, store.NewFileStore(path, store.WithPassphrase("correct"), fastKDF).
		Save(ctx, testutil.TypicalPersons(), nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Alice", "sealed file leaks plain text")

	_, _, err = store.NewFileStore(path, store.WithPassphrase("wrong")).Load(ctx)
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)

	_, _, err = store.NewFileStore(path).Load(ctx)
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestFileStore_PlainDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "book.json")
	s := store.NewFileStore(path)
	assert.False(t, s.Encrypted())
	assert.Equal(t, path, s.Location())
	require.NoError(t, s.Save(ctx, []types.Person{testutil.Amy()}, []types.Person{testutil.Bob()}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
	  "persons": [{"name": "Amy Bee", "phone": "11111111", "email": "amy@example.com",
	               "address": "Block 312, Amy Street 1", "tags": ["friend"]}],
	  "recycle_bin": [{"name": "Bob Choo", "phone": "22222222", "email": "bob@example.com",
	                   "address": "Block 123, Bobby Street 3", "tags": ["friend", "husband"]}]
	}`, string(raw))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_RejectsIllegalData(t *testing.T) {
	tests := map[string]string{
		"bad phone":      `{"persons":[{"name":"Amy","phone":"12a","email":"a@b","address":"x"}],"recycle_bin":[]}`,
		"bad tag":        `{"persons":[{"name":"Amy","phone":"123","email":"a@b","address":"x","tags":["a*"]}]}`,
		"duplicate name": `{"persons":[{"name":"Amy","phone":"123","email":"a@b","address":"x"},{"name":"amy","phone":"456","email":"c@d","address":"y"}]}`,
		"not json":       `{"persons":`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "book.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, _, err := store.NewFileStore(path).Load(context.Background())
			assert.ErrorIs(t, err, store.ErrDataConversion)
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := store.Open(store.BackendJSON, filepath.Join(dir, "a.json"), store.Options{})
	require.NoError(t, err)
	assert.IsType(t, &store.FileStore{}, s)

	s, err = store.Open(store.BackendSQLite, filepath.Join(dir, "a.db"), store.Options{})
	require.NoError(t, err)
	assert.IsType(t, &store.SQLiteStore{}, s)
	require.NoError(t, s.Close())

	s, err = store.Open(store.BackendBadger, filepath.Join(dir, "badger"), store.Options{})
	require.NoError(t, err)
	assert.IsType(t, &store.BadgerStore{}, s)
	require.NoError(t, s.Close())

	_, err = store.Open(store.BackendSQLite, filepath.Join(dir, "b.db"), store.Options{Passphrase: "x"})
	assert.Error(t, err)
	_, err = store.Open("csv", "x", store.Options{})
	assert.Error(t, err)
}

func TestSQLite_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.db")

	s, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, testutil.TypicalPersons(), testutil.TypicalBinPersons()))
	require.NoError(t, s.Close())

	s, err = store.OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	book, bin, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutil.TypicalPersons(), book)
	assert.Equal(t, testutil.TypicalBinPersons(), bin)
}
