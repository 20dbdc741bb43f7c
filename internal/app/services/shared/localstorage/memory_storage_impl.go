package localstorage

import (
	"context"
	"saude-connect/internal/app/contracts"
	"sync"
)

type memoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() contracts.SessionStorage {
	return &memoryStorage{values: make(map[string]string)}
}

// NewMemoryStorageWith seeds the store, mostly for tests that need a
// session already on disk.
func NewMemoryStorageWith(values map[string]string) contracts.SessionStorage {
	storage := &memoryStorage{values: make(map[string]string, len(values))}
	for key, value := range values {
		storage.values[key] = value
	}
	return storage
}

func (m *memoryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, found := m.values[key]
	return value, found, nil
}

func (m *memoryStorage) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStorage) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
