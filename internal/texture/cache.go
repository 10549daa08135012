package texture

import (
	"image"
	"sync"
)

// Loader turns an image path into a decoded image.
type Loader interface {
	Load(path string) (*image.NRGBA, error)
}

// Cache is a concurrency-safe image cache keyed by path.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	load  func(string) (*image.NRGBA, error)
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache creates an empty cache reading files with LoadImage.
func NewCache() *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		load:  LoadImage,
	}
}

// Load decodes and caches an image. Failures are cached too, so every
// caller asking for a broken path sees the same error.
// An empty path yields nil, nil.
func (c *Cache) Load(path string) (*image.NRGBA, error) {
	if path == "" {
		return nil, nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := c.load(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	return img, err
}

// Len reports how many paths have been attempted.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
