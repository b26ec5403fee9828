package data

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"citytwin/internal/sim"
)

// RunEntry is one cached simulation result.
type RunEntry struct {
	Report    *sim.Report
	CreatedAt time.Time
	ExpiresAt time.Time
}

// RunCache keeps recently completed simulation reports in memory, keyed by a
// generated run id, so the API can serve follow-up reads without re-running
// the simulation. Entries expire after the TTL; call Sweep periodically (the
// API server runs a ticker) or rely on lazy eviction in Get.
type RunCache struct {
	mu    sync.RWMutex
	store map[string]*RunEntry
	ttl   time.Duration
}

func NewRunCache(ttl time.Duration) *RunCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RunCache{
		store: make(map[string]*RunEntry),
		ttl:   ttl,
	}
}

// Put stores a report and returns its generated run id.
func (c *RunCache) Put(rep *sim.Report) string {
	id := uuid.NewString()
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[id] = &RunEntry{
		Report:    rep,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	return id
}

// Get retrieves a cached report if present and not expired.
func (c *RunCache) Get(id string) (*sim.Report, bool) {
	c.mu.RLock()
	entry, exists := c.store[id]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.store, id)
		c.mu.Unlock()
		return nil, false
	}
	return entry.Report, true
}

// Len reports the number of entries currently stored, expired or not.
func (c *RunCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Sweep removes every expired entry.
func (c *RunCache) Sweep() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, id)
		}
	}
}
