package assets

import "sync"

// Cache holds parsed models by path.
type Cache struct {
	data map[string]*Model
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*Model),
	}
}

// Get retrieves a model.
func (c *Cache) Get(path string) (*Model, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.data[path]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return m, ok
}

// Set stores a model.
func (c *Cache) Set(path string, m *Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[path] = m
}

// Clear empties the cache and resets its statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*Model)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
