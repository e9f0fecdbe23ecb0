// Package memory provides in-memory adapters for tests and standalone use.
package memory

import (
	"context"
	"sync"

	"github.com/lattice-dev/lattice/pkg/domain"
	"github.com/lattice-dev/lattice/pkg/ports"
)

// Store implements ports.KeyValueStore using an in-memory map.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewStore creates an empty store, optionally seeded with initial data.
func NewStore(seed map[string]string) *Store {
	data := make(map[string]string)
	for k, v := range seed {
		data[k] = v
	}
	return &Store{data: data}
}

var _ ports.KeyValueStore = (*Store)(nil)

// Get retrieves the value for a key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

// Set stores the value for a key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete removes a key.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
