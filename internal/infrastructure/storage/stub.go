// Package storage provides object storage implementations for file operations.
package storage

import (
	"context"
	"errors"
	"io"
	"sync"

	uploadapp "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/application/upload"
)

// MemoryObjectStorage keeps objects in a map. Use this for development
// and tests where no S3-compatible backend is running.
type MemoryObjectStorage struct {
	// BaseURL is the base URL returned from PublicURL
	// Defaults to "https://storage.example.com" if not set
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryObjectStorage creates a new MemoryObjectStorage
func NewMemoryObjectStorage() *MemoryObjectStorage {
	return &MemoryObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Ensure MemoryObjectStorage implements ObjectStorage
var _ uploadapp.ObjectStorage = (*MemoryObjectStorage)(nil)

// Upload stores the object under the given key
func (s *MemoryObjectStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data

	return nil
}

// PublicURL returns the base URL joined with the key
func (s *MemoryObjectStorage) PublicURL(key string) string {
	return s.BaseURL + "/" + key
}

// Delete removes the object. Deleting an unknown key is not an error.
func (s *MemoryObjectStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)

	return nil
}

// Get returns a stored object's contents (for testing)
func (s *MemoryObjectStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Size returns the number of stored objects (for testing)
func (s *MemoryObjectStorage) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
