// Package memory provides an in-memory persistence slot store used for tests
// and ephemeral sessions.
package memory

import (
	"context"
	"sort"
	"sync"

	"storefront/pkg/domain"
)

// Compile-time contract assertion ensuring memory.Store adheres to the domain persistence interface.
var _ domain.SlotStore = (*Store)(nil)

// Store keeps slot payloads in process memory.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewStore constructs an empty in-memory slot store.
func NewStore() *Store {
	return &Store{slots: make(map[string][]byte)}
}

// Read returns a copy of the payload stored under key.
func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.slots[key]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	return append([]byte(nil), payload...), nil
}

// Write replaces the payload stored under key.
func (s *Store) Write(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = append([]byte(nil), payload...)
	return nil
}

// Delete removes key if present.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}

// Keys lists stored keys in ascending order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.slots))
	for k := range s.slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Close is a no-op for the memory store.
func (s *Store) Close() error { return nil }
