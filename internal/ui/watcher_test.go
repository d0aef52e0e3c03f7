package ui_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"addressbook/internal/ui"
)

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "addressbook.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	w, err := ui.NewWatcher(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	changed := make(chan struct{})
	var once sync.Once
	go w.Run(ctx, func() { once.Do(func() { close(changed) }) })

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	select {
	case <-changed:
		t.Fatal("notified for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte(`{"persons":[]}`), 0o600))
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no notification after writing the data file")
	}
}
