package store

import (
	"bytes"
	"context"
	"sync"

	"github.com/park285/chess-notation-recorder/internal/ledger"
)

// MemoryStore keeps serialized ledgers in process. Used when no durable
// backend is configured and in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (m *MemoryStore) Save(ctx context.Context, name string, l *ledger.Ledger) error {
	key, err := checkName(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := l.Serialize(&buf); err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = buf.Bytes()
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Load(ctx context.Context, name string, l *ledger.Ledger) error {
	l.Reset()
	key, err := checkName(name)
	if err != nil {
		return err
	}
	m.mu.RLock()
	raw, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return ledger.ErrNotFound
	}
	return l.Deserialize(bytes.NewReader(raw))
}

func (m *MemoryStore) Close() error { return nil }
