package reconciliation

import (
	"sync"
)

// CacheStats resume o uso do cache para o endpoint de status
type CacheStats struct {
	Version    string `json:"version"`
	Entries    int    `json:"entries"`
	MaxEntries int    `json:"max_entries"`
	Hits       uint64 `json:"hits"`
	Misses     uint64 `json:"misses"`
}

// Cache memoriza Reports por (versão dos registros, período).
// Uma versão nova descarta tudo que foi calculado com a anterior.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	version    string
	entries    map[DateRange]*Report
	order      []DateRange
	hits       uint64
	misses     uint64
}

func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = 1
	}

	return &Cache{
		maxEntries: maxEntries,
		entries:    make(map[DateRange]*Report),
	}
}

// Get retorna o Report calculado para a versão e o período, se existir
func (c *Cache) Get(version string, r DateRange) (*Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if version != c.version {
		c.misses++
		return nil, false
	}

	report, ok := c.entries[r]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return report, ok
}

// Put guarda o Report; ao atingir o limite o período mais antigo sai primeiro
func (c *Cache) Put(version string, r DateRange, report *Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if version != c.version {
		c.resetLocked(version)
	}

	if _, exists := c.entries[r]; exists {
		c.entries[r] = report
		return
	}

	for len(c.order) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[r] = report
	c.order = append(c.order, r)
}

// GetOrCompute devolve o valor em cache ou calcula e guarda
func (c *Cache) GetOrCompute(version string, r DateRange, compute func() *Report) *Report {
	if report, ok := c.Get(version, r); ok {
		return report
	}

	report := compute()
	c.Put(version, r, report)
	return report
}

// Invalidate descarta todas as entradas
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked("")
}

func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Version:    c.version,
		Entries:    len(c.entries),
		MaxEntries: c.maxEntries,
		Hits:       c.hits,
		Misses:     c.misses,
	}
}

func (c *Cache) resetLocked(version string) {
	c.version = version
	c.entries = make(map[DateRange]*Report)
	c.order = nil
}
