package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
	"addressbook/internal/util/memzero"
)

// FileStore keeps both containers in one JSON document. With a passphrase
// the document is sealed with scrypt and ChaCha20-Poly1305.
type FileStore struct {
	path       string
	passphrase string
	kdf        kdfParams
	mu         sync.Mutex
}

// FileOption customises a FileStore.
type FileOption func(*FileStore)

// WithPassphrase seals the document. An empty passphrase keeps it plain.
func WithPassphrase(passphrase string) FileOption {
	return func(s *FileStore) { s.passphrase = passphrase }
}

// WithScryptCost overrides the scrypt cost of newly sealed documents.
// Opening uses the cost stored in the envelope.
func WithScryptCost(n, r, p int) FileOption {
	return func(s *FileStore) { s.kdf = kdfParams{N: n, R: r, P: p} }
}

func NewFileStore(path string, opts ...FileOption) *FileStore {
	s := &FileStore{path: path, kdf: defaultKDF()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileStore) Location() string { return s.path }

// Encrypted reports whether saves are sealed.
func (s *FileStore) Encrypted() bool { return s.passphrase != "" }

func (s *FileStore) Load(ctx context.Context) (bookPersons, binPersons []types.Person, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if b == nil {
		return nil, nil, fmt.Errorf("%s: %w", s.path, ErrNoData)
	}
	if isSealed(b) {
		if s.passphrase == "" {
			return nil, nil, fmt.Errorf("%s is encrypted: %w", s.path, ErrWrongPassphrase)
		}
		if b, err = open(s.passphrase, b); err != nil {
			return nil, nil, err
		}
		defer memzero.Zero(b)
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDataConversion, err)
	}
	return doc.persons()
}

func (s *FileStore) Save(ctx context.Context, bookPersons, binPersons []types.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(newDocument(bookPersons, binPersons), "", "  ")
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		plain := b
		b, err = seal(s.passphrase, plain, s.kdf)
		memzero.Zero(plain)
		if err != nil {
			return fmt.Errorf("seal: %w", err)
		}
	}
	if err := writeFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

var _ domain.Storage = (*FileStore)(nil)
