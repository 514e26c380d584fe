package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process KeyValueStore. Values are kept JSON-encoded
// so Get/Set round-trip exactly like the durable stores. Used in tests and
// as the default driver.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get implements KeyValueStore
func (s *MemoryStore) Get(_ context.Context, key string, out any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, err
	}
	return true, nil
}

// Set implements KeyValueStore
func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

var _ KeyValueStore = (*MemoryStore)(nil)
