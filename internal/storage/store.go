// Package storage persists named blobs of serialized state to a durable
// local key-value store.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Blob keys used by the application.
const (
	KeyExpenses = "expenses"
	KeyBudgets  = "budgets"
)

// Store reads and writes named blobs.
type Store interface {
	// Get returns the blob for key. ok is false when the key is absent;
	// absence is not an error.
	Get(key string) (data []byte, ok bool, err error)
	// Put writes the blob for key, replacing any previous value.
	Put(key string, data []byte) error
}

// FileStore keeps each key as a JSON file under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Get reads the blob for key.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes the blob for key.
func (s *FileStore) Put(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("writing blob %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
