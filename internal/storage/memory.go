package storage

import (
	"context"
	"io"
	"sync"
)

// MemoryStore keeps stored objects in a map. It backs tests and has the same
// delete-absent-is-a-no-op behavior as the real stores.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Store keeps the upload contents in memory and returns its relative path.
func (s *MemoryStore) Store(_ context.Context, namespace string, up *Upload) (string, error) {
	if namespace == "" {
		return "", ErrEmptyNamespace
	}

	if up == nil || up.Reader == nil {
		return "", ErrEmptyUpload
	}

	data, err := io.ReadAll(up.Reader)
	if err != nil {
		return "", err
	}

	name := objectName(namespace, up)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = data

	return name, nil
}

// Delete removes the object if present.
func (s *MemoryStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)

	return nil
}

// Has reports whether a path is currently stored.
func (s *MemoryStore) Has(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[path]

	return ok
}

// Len reports the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.objects)
}
