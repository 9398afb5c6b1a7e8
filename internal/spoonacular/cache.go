package spoonacular

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DetailCache caches recipe details by id for the process lifetime. Recipe
// content is immutable upstream and the id space is small relative to session
// volume, so there is no eviction. Concurrent misses for the same id are
// collapsed into a single fetch.
type DetailCache struct {
	mu      sync.RWMutex
	entries map[int]*RecipeDetail
	group   singleflight.Group
}

// NewDetailCache creates an empty detail cache.
func NewDetailCache() *DetailCache {
	return &DetailCache{entries: make(map[int]*RecipeDetail)}
}

// Get returns the cached detail for id, or false on a miss.
func (c *DetailCache) Get(id int) (*RecipeDetail, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.entries[id]
	return d, ok
}

// GetOrFill returns the cached detail for id, calling fetch and storing its
// result on a miss. A failed fetch caches nothing.
func (c *DetailCache) GetOrFill(id int, fetch func() (*RecipeDetail, error)) (*RecipeDetail, error) {
	if d, ok := c.Get(id); ok {
		return d, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(id), func() (interface{}, error) {
		if d, ok := c.Get(id); ok {
			return d, nil
		}
		d, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[id] = d
		c.mu.Unlock()
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RecipeDetail), nil
}

// Len returns the number of cached details.
func (c *DetailCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
