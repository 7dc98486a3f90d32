package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value   string
	stored  time.Time
	expires time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// MemoryCache is an in-process CacheRepository. It holds at most capacity
// entries; when full, expired entries are swept and then the oldest is evicted.
type MemoryCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	capacity int
	data     map[string]memoryEntry
	now      func() time.Time
}

// NewMemoryCache creates a cache whose entries expire after ttl. A ttl of zero
// keeps entries until evicted; a capacity of zero does not bound the cache.
func NewMemoryCache(ttl time.Duration, capacity int) *MemoryCache {
	return &MemoryCache{
		ttl:      ttl,
		capacity: capacity,
		data:     make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		// a concurrent Set may have replaced the entry
		if current, ok := m.data[key]; ok && current.expired(m.now()) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	now := m.now()
	entry := memoryEntry{value: value, stored: now}
	if m.ttl > 0 {
		entry.expires = now.Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && m.capacity > 0 && len(m.data) >= m.capacity {
		m.sweep(now)
		if len(m.data) >= m.capacity {
			m.evictOldest()
		}
	}
	m.data[key] = entry
	return nil
}

// sweep drops expired entries. The caller holds the write lock.
func (m *MemoryCache) sweep(now time.Time) {
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

// evictOldest drops the entry stored first. The caller holds the write lock.
func (m *MemoryCache) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, entry := range m.data {
		if !found || entry.stored.Before(oldest) {
			oldestKey, oldest, found = key, entry.stored, true
		}
	}
	if found {
		delete(m.data, oldestKey)
	}
}

// Len returns the number of stored entries, expired ones included
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
