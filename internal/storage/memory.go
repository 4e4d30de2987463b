package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-process store used by tests and dry runs.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int

	// SetErr, when non-nil, is returned by SetMany without storing anything.
	SetErr error
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: map[string][]byte{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) SetMany(_ context.Context, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	for _, e := range entries {
		m.values[e.Key] = append([]byte(nil), e.Value...)
	}
	m.writes++
	return nil
}

// Put stores a raw value, bypassing the write counter.
func (m *MemoryKV) Put(key string, value []byte) {
	m.mu.Lock()
	m.values[key] = append([]byte(nil), value...)
	m.mu.Unlock()
}

// Writes reports how many SetMany batches were stored.
func (m *MemoryKV) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
