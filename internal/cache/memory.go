package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is a process-local cache for single-process runs and tests.
// Expired entries are dropped lazily on read.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory returns an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, domain string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[domain]
	if !ok {
		return nil, ErrMiss
	}
	if m.now().After(entry.expiresAt) {
		delete(m.entries, domain)
		return nil, ErrMiss
	}
	return entry.data, nil
}

func (m *Memory) Set(_ context.Context, domain string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[domain] = memoryEntry{data: data, expiresAt: m.now().Add(ttl)}
	return nil
}
