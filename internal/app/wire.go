package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"addressbook/internal/domain"
	"addressbook/internal/events"
	"addressbook/internal/logging"
	"addressbook/internal/model"
	"addressbook/internal/services/logic"
	storagesvc "addressbook/internal/services/storage"
	"addressbook/internal/store"
)

// Wire bundles the logger, bus, storage, model and services for the CLI.
type Wire struct {
	Config  Config
	Log     *slog.Logger
	Bus     *events.Bus
	Store   domain.Storage
	Storage *storagesvc.Service
	Model   *model.Model
	Logic   *logic.Service

	closers []io.Closer
}

// NewWire constructs the dependency graph from cfg and loads the data.
// Logs go to cfg.LogFile, or to stderr when it is empty.
func NewWire(ctx context.Context, cfg Config, stderr io.Writer) (_ *Wire, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &Wire{Config: cfg}
	defer func() {
		if err != nil {
			_ = w.Close()
		}
	}()

	// Logging
	out := stderr
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o700); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w.closers = append(w.closers, f)
		out = f
	}
	if w.Log, err = logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: logging.Format(cfg.LogFormat),
		Output: out,
	}); err != nil {
		return nil, err
	}

	// Storage backend
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home %s: %w", cfg.Home, err)
	}
	if w.Store, err = store.Open(cfg.Storage, cfg.DataPath(), store.Options{
		Passphrase: cfg.Passphrase,
		Logger:     w.Log.With("component", "badger"),
	}); err != nil {
		return nil, err
	}
	w.closers = append(w.closers, w.Store)

	// Services around the model
	w.Bus = events.NewBus(w.Log)
	w.Storage = storagesvc.New(w.Store, w.Bus, w.Log)
	bookPersons, binPersons, err := w.Storage.Load(ctx)
	if err != nil {
		return nil, err
	}

	opts := []model.Option{model.WithPublisher(w.Bus), model.WithLogger(w.Log)}
	if cfg.HistoryLimit > 0 {
		opts = append(opts, model.WithHistoryLimit(cfg.HistoryLimit))
	}
	if w.Model, err = model.New(bookPersons, binPersons, opts...); err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}
	w.Bus.Subscribe(w.Storage.Handle)
	w.Logic = logic.New(w.Model, w.Bus, w.Log)

	w.Log.Info("address book ready",
		"storage", cfg.Storage, "location", w.Store.Location(), "persons", w.Model.AddressBook().Len())
	return w, nil
}

// Close releases the storage backend and the log file.
func (w *Wire) Close() error {
	var errs []error
	for i := len(w.closers) - 1; i >= 0; i-- {
		errs = append(errs, w.closers[i].Close())
	}
	w.closers = nil
	return errors.Join(errs...)
}
