package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore for testing.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string][]byte
	writes    map[string]int
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string][]byte),
		writes:    make(map[string]int),
	}
}

// Put seeds a document without counting it as a write.
func (s *DocumentStore) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[path] = []byte(content)
}

// Read returns a copy of the stored document.
func (s *DocumentStore) Read(_ context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.documents[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores a copy of data under path.
func (s *DocumentStore) Write(_ context.Context, path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.documents[path] = stored
	s.writes[path]++
	return nil
}

// Content returns the stored document as a string.
func (s *DocumentStore) Content(path string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.documents[path])
}

// Writes returns how many times path was written.
func (s *DocumentStore) Writes(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes[path]
}
