package readthrough

import (
	"context"
	"sync"
	"time"

	"github.com/facebookgo/clock"
)

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryBackend keeps entries in a process-local map and drops them lazily
// once their ttl has passed.
type MemoryBackend struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	clock clock.Clock
}

func NewMemoryBackend(c clock.Clock) *MemoryBackend {
	if c == nil {
		c = clock.New()
	}
	return &MemoryBackend{
		items: make(map[string]memoryItem),
		clock: c,
	}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !m.clock.Now().Before(item.expiresAt) {
		m.mu.Lock()
		if current, ok := m.items[key]; ok && current.expiresAt.Equal(item.expiresAt) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}

	return item.value, true, nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	m.items[key] = memoryItem{
		value:     value,
		expiresAt: m.clock.Now().Add(ttl),
	}
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included
func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
