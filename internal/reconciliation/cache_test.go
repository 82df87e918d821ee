package reconciliation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetPut(t *testing.T) {
	cache := NewCache(4)
	report := &Report{Range: february2024}

	_, ok := cache.Get("v1", february2024)
	assert.False(t, ok)

	cache.Put("v1", february2024, report)

	cached, ok := cache.Get("v1", february2024)
	require.True(t, ok)
	assert.Same(t, report, cached)

	_, ok = cache.Get("v2", february2024)
	assert.False(t, ok)

	stats := cache.Stats()
	assert.Equal(t, CacheStats{Version: "v1", Entries: 1, MaxEntries: 4, Hits: 1, Misses: 2}, stats)
}

func TestCache_NewVersionDropsOldEntries(t *testing.T) {
	cache := NewCache(4)
	march := DateRange{StartDate: "2024-03-01", EndDate: "2024-03-31"}

	cache.Put("v1", february2024, &Report{})
	cache.Put("v1", march, &Report{})
	assert.Equal(t, 2, cache.Stats().Entries)

	cache.Put("v2", march, &Report{})

	_, ok := cache.Get("v2", february2024)
	assert.False(t, ok)
	_, ok = cache.Get("v1", march)
	assert.False(t, ok)

	stats := cache.Stats()
	assert.Equal(t, "v2", stats.Version)
	assert.Equal(t, 1, stats.Entries)
}

func TestCache_EvictsOldestEntry(t *testing.T) {
	cache := NewCache(2)
	ranges := []DateRange{
		{StartDate: "2024-01-01", EndDate: "2024-01-31"},
		{StartDate: "2024-02-01", EndDate: "2024-02-29"},
		{StartDate: "2024-03-01", EndDate: "2024-03-31"},
	}

	for _, r := range ranges {
		cache.Put("v1", r, &Report{Range: r})
	}

	_, ok := cache.Get("v1", ranges[0])
	assert.False(t, ok)
	for _, r := range ranges[1:] {
		report, ok := cache.Get("v1", r)
		require.True(t, ok)
		assert.Equal(t, r, report.Range)
	}

	// sobrescrever uma chave existente não consome espaço
	cache.Put("v1", ranges[1], &Report{})
	assert.Equal(t, 2, cache.Stats().Entries)
	_, ok = cache.Get("v1", ranges[2])
	assert.True(t, ok)
}

func TestCache_GetOrCompute(t *testing.T) {
	cache := NewCache(4)
	calls := 0
	compute := func() *Report {
		calls++
		return &Report{Range: february2024}
	}

	first := cache.GetOrCompute("v1", february2024, compute)
	second := cache.GetOrCompute("v1", february2024, compute)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	cache.Invalidate()
	cache.GetOrCompute("v1", february2024, compute)
	assert.Equal(t, 2, calls)
}

func TestCache_MinimumSize(t *testing.T) {
	cache := NewCache(0)
	assert.Equal(t, 1, cache.Stats().MaxEntries)
}

func TestCache_Concurrency(t *testing.T) {
	cache := NewCache(8)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := DateRange{StartDate: fmt.Sprintf("2024-01-%02d", i%28+1), EndDate: "2024-01-31"}
			report := cache.GetOrCompute("v1", r, func() *Report { return &Report{Range: r} })
			assert.Equal(t, r, report.Range)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Stats().Entries, 8)
}
