package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citytwin/internal/sim"
)

func TestRunCachePutGet(t *testing.T) {
	cache := NewRunCache(time.Minute)
	rep := &sim.Report{TotalSwaps: 5}

	id := cache.Put(rep)
	require.NotEmpty(t, id)

	got, ok := cache.Get(id)
	require.True(t, ok)
	assert.Same(t, rep, got)

	_, ok = cache.Get("not-a-run-id")
	assert.False(t, ok)
}

func TestRunCacheDistinctIDs(t *testing.T) {
	cache := NewRunCache(time.Minute)
	a := cache.Put(&sim.Report{})
	b := cache.Put(&sim.Report{})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, cache.Len())
}

func TestRunCacheExpiry(t *testing.T) {
	cache := NewRunCache(10 * time.Millisecond)
	id := cache.Put(&sim.Report{})

	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get(id)
	assert.False(t, ok, "expired entries are evicted on read")
	assert.Equal(t, 0, cache.Len())
}

func TestRunCacheSweep(t *testing.T) {
	cache := NewRunCache(10 * time.Millisecond)
	cache.Put(&sim.Report{})
	cache.Put(&sim.Report{})

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 2, cache.Len())

	cache.Sweep()
	assert.Equal(t, 0, cache.Len())
}
