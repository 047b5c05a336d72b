package memory

import (
	"context"
	"sync"

	"github.com/espalier-ui/espalier/pkg/ports"
)

// Store implements ports.TransformCache in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Get retrieves the cached output for key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out, ok := s.data[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	return out, nil
}

// Set stores the output for key.
func (s *Store) Set(ctx context.Context, key, output string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = output
	return nil
}

// Delete removes the entry for key.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
