package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
)

var (
	bookPrefix  = []byte("book/")
	binPrefix   = []byte("bin/")
	savedAtMeta = []byte("meta/saved_at")
)

// BadgerStore keeps one JSON value per person in a Badger directory, keyed
// by container and position.
type BadgerStore struct {
	dir string
	db  *badger.DB
}

// BadgerOptions configures OpenBadger.
type BadgerOptions struct {
	// InMemory keeps everything in RAM; Dir is ignored.
	InMemory bool
	// Logger receives Badger's own messages. Nil silences them.
	Logger *slog.Logger
}

// OpenBadger opens or creates a Badger database in dir.
func OpenBadger(dir string, opts BadgerOptions) (*BadgerStore, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if dir == "" {
			return nil, errors.New("badger: directory is required")
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", dir, err)
		}
		bopts = badger.DefaultOptions(dir).WithSyncWrites(true)
	}
	bopts = bopts.WithNumVersionsToKeep(1)
	if opts.Logger != nil {
		bopts = bopts.WithLogger(&badgerLogger{log: opts.Logger})
	} else {
		bopts = bopts.WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerStore{dir: dir, db: db}, nil
}

func (s *BadgerStore) Location() string { return s.dir }

func (s *BadgerStore) Close() error { return s.db.Close() }

func (s *BadgerStore) Load(ctx context.Context) (bookPersons, binPersons []types.Person, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	var bookRecords, binRecords []personRecord
	err = s.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get(savedAtMeta); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNoData
			}
			return err
		}
		var scanErr error
		if bookRecords, scanErr = scanRecords(txn, bookPrefix); scanErr != nil {
			return scanErr
		}
		binRecords, scanErr = scanRecords(txn, binPrefix)
		return scanErr
	})
	if errors.Is(err, ErrNoData) {
		return nil, nil, fmt.Errorf("%s: %w", s.dir, ErrNoData)
	}
	if err != nil {
		return nil, nil, err
	}
	if bookPersons, err = personsOf(bookRecords); err != nil {
		return nil, nil, err
	}
	if binPersons, err = personsOf(binRecords); err != nil {
		return nil, nil, err
	}
	return bookPersons, binPersons, nil
}

// scanRecords decodes every value under prefix in key order. Keys carry a
// zero-padded position, so key order is list order.
func scanRecords(txn *badger.Txn, prefix []byte) ([]personRecord, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var out []personRecord
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var r personRecord
		err := item.Value(func(v []byte) error { return json.Unmarshal(v, &r) })
		if err != nil {
			return nil, fmt.Errorf("%w: key %s: %w", ErrDataConversion, item.Key(), err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *BadgerStore) Save(ctx context.Context, bookPersons, binPersons []types.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, prefix := range [][]byte{bookPrefix, binPrefix} {
			if err := deletePrefix(txn, prefix); err != nil {
				return err
			}
		}
		if err := putRecords(txn, bookPrefix, bookPersons); err != nil {
			return err
		}
		if err := putRecords(txn, binPrefix, binPersons); err != nil {
			return err
		}
		return txn.Set(savedAtMeta, []byte(time.Now().UTC().Format(time.RFC3339Nano)))
	})
}

func deletePrefix(txn *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()
	for _, k := range keys {
		if err := txn.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func putRecords(txn *badger.Txn, prefix []byte, persons []types.Person) error {
	for pos, p := range persons {
		v, err := json.Marshal(recordOf(p))
		if err != nil {
			return err
		}
		key := fmt.Appendf(append([]byte(nil), prefix...), "%08d", pos)
		if err := txn.Set(key, v); err != nil {
			return fmt.Errorf("put %s: %w", key, err)
		}
	}
	return nil
}

// badgerLogger forwards Badger's printf-style logging to slog.
type badgerLogger struct {
	log *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

var _ domain.Storage = (*BadgerStore)(nil)
