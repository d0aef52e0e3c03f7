package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	containerBook = "book"
	containerBin  = "bin"

	savedAtKey = "saved_at"
)

// SQLiteStore keeps persons in a SQLite database. A save replaces the whole
// content in one transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
	mu   sync.Mutex
}

// OpenSQLite opens or creates the database at path and applies migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite: path is required")
	}
	clean := filepath.Clean(path)
	dsn := clean + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps the pragmas in force for every statement.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(db, migrationFS, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{path: clean, db: db}, nil
}

func (s *SQLiteStore) Location() string { return s.path }

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) (bookPersons, binPersons []types.Person, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var savedAt string
	err = s.db.QueryRowContext(ctx, `SELECT value FROM store_meta WHERE key = ?`, savedAtKey).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%s: %w", s.path, ErrNoData)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read store meta: %w", err)
	}

	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, nil, err
	}
	if bookPersons, err = personsOf(records[containerBook]); err != nil {
		return nil, nil, err
	}
	if binPersons, err = personsOf(records[containerBin]); err != nil {
		return nil, nil, err
	}
	return bookPersons, binPersons, nil
}

type slot struct {
	container string
	position  int
}

func (s *SQLiteStore) loadRecords(ctx context.Context) (map[string][]personRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT container, position, name, phone, email, address
		   FROM persons
		  ORDER BY container, position`)
	if err != nil {
		return nil, fmt.Errorf("query persons: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]personRecord)
	index := make(map[slot]int)
	for rows.Next() {
		var (
			sl slot
			r  personRecord
		)
		if err := rows.Scan(&sl.container, &sl.position, &r.Name, &r.Phone, &r.Email, &r.Address); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		index[sl] = len(out[sl.container])
		out[sl.container] = append(out[sl.container], r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}
	// Release the single connection before the next query.
	_ = rows.Close()

	tagRows, err := s.db.QueryContext(ctx,
		`SELECT container, position, tag FROM person_tags ORDER BY container, position, tag`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var (
			sl  slot
			tag string
		)
		if err := tagRows.Scan(&sl.container, &sl.position, &tag); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		i, ok := index[sl]
		if !ok {
			return nil, fmt.Errorf("%w: tag %q of missing person %s/%d", ErrDataConversion, tag, sl.container, sl.position)
		}
		out[sl.container][i].Tags = append(out[sl.container][i].Tags, tag)
	}
	if err := tagRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Save(ctx context.Context, bookPersons, binPersons []types.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM person_tags`); err != nil {
		return fmt.Errorf("clear tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM persons`); err != nil {
		return fmt.Errorf("clear persons: %w", err)
	}
	if err := insertPersons(ctx, tx, containerBook, bookPersons); err != nil {
		return err
	}
	if err := insertPersons(ctx, tx, containerBin, binPersons); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO store_meta (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		savedAtKey, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("write store meta: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func insertPersons(ctx context.Context, tx *sql.Tx, container string, persons []types.Person) error {
	for pos, p := range persons {
		r := recordOf(p)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO persons (container, position, name, phone, email, address) VALUES (?, ?, ?, ?, ?, ?)`,
			container, pos, r.Name, r.Phone, r.Email, r.Address); err != nil {
			return fmt.Errorf("insert person %s/%d: %w", container, pos, err)
		}
		for _, tag := range r.Tags {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO person_tags (container, position, tag) VALUES (?, ?, ?)`,
				container, pos, tag); err != nil {
				return fmt.Errorf("insert tag %s/%d: %w", container, pos, err)
			}
		}
	}
	return nil
}

const migrationTable = "schema_migrations"

// applyMigrations runs the Up section of every .sql file under root once,
// in name order.
func applyMigrations(db *sql.DB, fsys fs.FS, root string) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
	    name TEXT PRIMARY KEY,
	    applied_at INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range files {
		var applied int
		if err := db.QueryRow(`SELECT COUNT(1) FROM `+migrationTable+` WHERE name = ?`, file).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied > 0 {
			continue
		}
		content, err := fs.ReadFile(fsys, root+"/"+file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", file, err)
		}
		if _, err := tx.Exec(upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec(`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
			file, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

// upSection returns the SQL between the Up and Down markers.
func upSection(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	if i := strings.Index(content, up); i >= 0 {
		content = content[i+len(up):]
	}
	if i := strings.Index(content, down); i >= 0 {
		content = content[:i]
	}
	return content
}

var _ domain.Storage = (*SQLiteStore)(nil)
