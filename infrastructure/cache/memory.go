package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache é o cache local do processo. Os valores são serializados
// para que quem lê nunca compartilhe memória com quem gravou.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return false, nil
	}

	if err := msgpack.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}

	return true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{data: data, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()

	return nil
}

func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}
