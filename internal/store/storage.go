package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the persistence port for the document store. The store is the
// only writer and reads exactly once, at initialization.
type Storage interface {
	// Read returns the previously saved document bytes. Any error is
	// treated by the store as "no saved document".
	Read() ([]byte, error)
	// Write replaces the saved document bytes. Last write wins.
	Write(data []byte) error
}

// FileStorage persists the document as a single JSON file on disk, the
// local-storage equivalent for a single-user session.
type FileStorage struct {
	path string
}

// NewFileStorage returns file-backed storage rooted at path
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Read returns the saved file contents
func (f *FileStorage) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file %s: %w", f.path, err)
	}
	return data, nil
}

// Write saves data atomically: a temp file in the same directory is renamed
// over the target so a crash mid-write never leaves a truncated document.
func (f *FileStorage) Write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".resume-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace document file: %w", err)
	}
	return nil
}

// MemoryStorage is an in-memory Storage used in tests and as a stand-in
// when durable persistence is not wanted.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStorage returns empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Read returns the stored bytes, or an error when nothing was written yet
func (m *MemoryStorage) Read() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, fmt.Errorf("no document stored")
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Write replaces the stored bytes
func (m *MemoryStorage) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}
