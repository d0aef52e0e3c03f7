package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	if wire != nil {
		require.NoError(t, wire.Close())
		wire = nil
	}
	return out.String(), err
}

func TestExec_RunsLinesAndPersists(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, "", "--home", home, "exec", "clear",
		"add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2")
	require.NoError(t, err)
	assert.Contains(t, out, "Address book has been cleared!")
	assert.Contains(t, out, "New person added: John Doe")

	out, err = run(t, "", "--home", home, "exec", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Listed all persons")
	assert.FileExists(t, filepath.Join(home, "addressbook.json"))
}

func TestExec_ReadsStdinAndStopsOnFailure(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, "list\ndelete 99\nclear\n", "--home", home, "--storage", "sqlite", "exec")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete 99")
	assert.Contains(t, out, "Listed all persons")
	assert.NotContains(t, out, "cleared")
}

func TestExportImport(t *testing.T) {
	home := t.TempDir()
	file := filepath.Join(t.TempDir(), "export.json")

	out, err := run(t, "", "--home", home, "export", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")

	_, err = run(t, "", "--home", home, "exec", "clear")
	require.NoError(t, err)

	out, err = run(t, "", "--home", home, "import", file)
	require.NoError(t, err)
	assert.NotContains(t, out, "Imported 0 persons")
}

func TestPassphraseNeedsJSONStorage(t *testing.T) {
	_, err := run(t, "", "--home", t.TempDir(), "--storage", "badger", "-p", "secret", "exec", "list")
	require.Error(t, err)
}
