package store

import (
	"encoding/json"
	"log"
	"sync"
)

// MemoryStore is an in-memory Store, used by tests in place of the
// database-backed session store.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string, out any) (bool, error) {
	m.mu.Lock()
	raw, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("state: corrupt value for %q, treating as absent: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (m *MemoryStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = string(raw)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Put stores a raw value without marshalling, for corruption tests.
func (m *MemoryStore) Put(key, raw string) {
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}
