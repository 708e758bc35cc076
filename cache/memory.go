package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"birthday-twins/models"
)

type memoryEntry struct {
	celebrities []models.Celebrity
	expiresAt   time.Time
}

// MemoryStore 는 프로세스 내 TTL 캐시다. 만료된 항목은 조회 시점에 지운다.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttlOrDefault(ttl),
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, date models.DateKey) ([]models.Celebrity, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(date)
	entry, ok := m.entries[k]
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, k)
		return nil, false, nil
	}
	return slices.Clone(entry.celebrities), true, nil
}

func (m *MemoryStore) Set(_ context.Context, date models.DateKey, celebrities []models.Celebrity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key(date)] = memoryEntry{
		celebrities: slices.Clone(celebrities),
		expiresAt:   m.now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, date models.DateKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key(date))
	return nil
}
