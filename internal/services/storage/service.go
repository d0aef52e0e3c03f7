package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
	"addressbook/internal/events"
	"addressbook/internal/logging"
	"addressbook/internal/store"
)

// MessageSaveFailed is published when a save after a change fails.
const MessageSaveFailed = "Could not save data: %v"

// Service persists the model through a domain.Storage.
type Service struct {
	store  domain.Storage
	events domain.EventPublisher
	log    *slog.Logger

	mu      sync.Mutex
	lastErr error
}

// New constructs a storage service. pub receives save failures and reload
// notices and may be nil.
func New(st domain.Storage, pub domain.EventPublisher, log *slog.Logger) *Service {
	return &Service{store: st, events: pub, log: logging.OrDiscard(log)}
}

func (s *Service) Location() string { return s.store.Location() }

// Load returns the stored data. A store that was never written yields the
// sample persons; a store with illegal data yields empty containers. Other
// failures, such as a wrong passphrase, are returned.
func (s *Service) Load(ctx context.Context) (bookPersons, binPersons []types.Person, err error) {
	bookPersons, binPersons, err = s.store.Load(ctx)
	switch {
	case err == nil:
		s.log.Info("data loaded", "location", s.Location(), "persons", len(bookPersons), "bin", len(binPersons))
		return bookPersons, binPersons, nil
	case errors.Is(err, store.ErrNoData):
		s.log.Info("no data file found, starting with sample data", "location", s.Location())
		return samplePersons(), nil, nil
	case errors.Is(err, store.ErrDataConversion):
		s.log.Warn("data not in the correct format, starting with an empty address book",
			"location", s.Location(), "err", err)
		return nil, nil, nil
	}
	return nil, nil, fmt.Errorf("load %s: %w", s.Location(), err)
}

// Handle saves the data carried by AddressBookChanged. Other events are
// ignored. Save failures are logged and published, never returned.
func (s *Service) Handle(ev events.Event) {
	changed, ok := ev.(events.AddressBookChanged)
	if !ok {
		return
	}
	err := s.store.Save(context.Background(), changed.Book, changed.Bin)

	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("save failed", "location", s.Location(), "err", err)
		s.publish(events.NewNewResultAvailable(fmt.Sprintf(MessageSaveFailed, err), true))
		return
	}
	s.log.Debug("data saved", "location", s.Location(), "persons", len(changed.Book), "bin", len(changed.Bin))
}

// LastSaveError returns the outcome of the most recent save.
func (s *Service) LastSaveError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Reload replaces the model's data with the stored data when they differ.
// The reload is committed as an undoable step and announced with
// DataReloaded.
func (s *Service) Reload(ctx context.Context, m domain.Model) (bool, error) {
	bookPersons, binPersons, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("reload %s: %w", s.Location(), err)
	}
	if samePersons(bookPersons, m.AddressBook().Persons()) && samePersons(binPersons, m.RecycleBin().Persons()) {
		return false, nil
	}
	if err := m.ResetData(bookPersons, binPersons); err != nil {
		return false, fmt.Errorf("reload %s: %w", s.Location(), err)
	}
	m.CommitSnapshot()
	s.log.Info("data reloaded", "location", s.Location(), "persons", len(bookPersons), "bin", len(binPersons))
	s.publish(events.NewDataReloaded(s.Location()))
	return true, nil
}

// Export writes the model's data to a plain JSON file at path.
func (s *Service) Export(ctx context.Context, path string, m domain.Model) error {
	out := store.NewFileStore(path)
	if err := out.Save(ctx, m.AddressBook().Persons(), m.RecycleBin().Persons()); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	s.log.Info("data exported", "path", path)
	return nil
}

// Import replaces the model's data with the content of a plain JSON file.
// The import is an undoable step.
func (s *Service) Import(ctx context.Context, path string, m domain.Model) error {
	bookPersons, binPersons, err := store.NewFileStore(path).Load(ctx)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := m.ResetData(bookPersons, binPersons); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	m.CommitSnapshot()
	s.log.Info("data imported", "path", path, "persons", len(bookPersons), "bin", len(binPersons))
	return nil
}

func (s *Service) publish(ev events.Event) {
	if s.events != nil {
		s.events.Publish(ev)
	}
}

func samePersons(a, b []types.Person) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Compile-time assertion that Service implements domain.StorageService.
var _ domain.StorageService = (*Service)(nil)
