package ui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"addressbook/internal/logging"
)

// debounce coalesces the burst of events a single save produces.
const debounce = 200 * time.Millisecond

// Watcher reports changes to a data location made by other processes. Our
// own saves are reported too; reloading identical data is a no-op.
type Watcher struct {
	w      *fsnotify.Watcher
	dir    string
	prefix string // empty matches every file in dir
	log    *slog.Logger
}

// NewWatcher watches location, which may be a file (json, sqlite) or a
// directory (badger).
func NewWatcher(location string, log *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(location)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", location, err)
	}
	dir, prefix := filepath.Dir(abs), filepath.Base(abs)
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		dir, prefix = abs, ""
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{w: fw, dir: dir, prefix: prefix, log: logging.OrDiscard(log)}, nil
}

// Run calls notify once per burst of relevant changes until ctx is done or
// the watcher is closed.
func (w *Watcher) Run(ctx context.Context, notify func()) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("data location changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.AfterFunc(debounce, notify)
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", "err", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	name := filepath.Base(ev.Name)
	if w.prefix == "" {
		return true
	}
	// Skip our own temp files; their rename onto the target is reported.
	if strings.Contains(name, ".tmp-") {
		return false
	}
	return strings.HasPrefix(name, w.prefix)
}

func (w *Watcher) Close() error { return w.w.Close() }
