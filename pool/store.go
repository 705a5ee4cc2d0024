package pool

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a pool does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading pool files.
// Implementations must be safe for concurrent use.
type Store interface {
	// Open opens a pool for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Load opens name in store and decodes it.
func Load(ctx context.Context, store Store, name string, format Format) ([][]byte, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open pool %s: %w", name, err)
	}
	defer rc.Close()

	ids, err := Decode(rc, format)
	if err != nil {
		return nil, fmt.Errorf("decode pool %s: %w", name, err)
	}
	return ids, nil
}

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open opens a pool file below the store root.
func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, name))
}

// MemoryStore is an in-memory Store implementation for testing.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu    sync.RWMutex
	pools map[string][]byte
}

// NewMemoryStore creates a new in-memory pool store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pools: make(map[string][]byte),
	}
}

// Put stores a copy of data under name.
func (m *MemoryStore) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pools[name] = bytes.Clone(data)
}

// Open opens a pool for reading.
func (m *MemoryStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.pools[name]
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
