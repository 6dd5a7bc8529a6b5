package cart

import (
	"context"
	"sync"
)

// SlotStore is the durable key-value slot the cart mirrors its items into.
// Read reports false when the slot has never been written. Implementations
// store the serialized line-item list verbatim; they do not interpret it.
type SlotStore interface {
	Read(ctx context.Context, key string) ([]byte, bool, error)
	Write(ctx context.Context, key string, data []byte) error
}

// MemorySlotStore keeps slots in process memory. It is the default backend
// and the one the test suites use.
type MemorySlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string][]byte)}
}

func (m *MemorySlotStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (m *MemorySlotStore) Write(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = append([]byte(nil), data...)
	return nil
}

// Seed writes raw slot content directly, bypassing serialization. Used by
// tests to stage pre-existing or corrupt slots.
func (m *MemorySlotStore) Seed(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = append([]byte(nil), data...)
}
