package catalog

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the descriptor cache when none is configured.
const DefaultCacheSize = 2048

type cachedSettings struct {
	modTime  time.Time
	settings *Settings
}

// SettingsCache memoises parsed descriptors across editor Init calls.
// Entries are keyed by path and invalidated when the file changes.
type SettingsCache struct {
	lru *lru.Cache[string, cachedSettings]
}

// NewSettingsCache creates a cache holding up to size descriptors.
func NewSettingsCache(size int) *SettingsCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, _ := lru.New[string, cachedSettings](size)
	return &SettingsCache{lru: c}
}

// Load returns the parsed descriptor at path, from cache when fresh.
func (c *SettingsCache) Load(path string) (*Settings, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if entry, ok := c.lru.Get(path); ok && entry.modTime.Equal(info.ModTime()) {
		return entry.settings, nil
	}

	s, err := LoadSettings(path)
	if err != nil {
		c.lru.Remove(path)
		return nil, err
	}
	c.lru.Add(path, cachedSettings{modTime: info.ModTime(), settings: s})
	return s, nil
}

// Len returns the number of cached descriptors.
func (c *SettingsCache) Len() int {
	return c.lru.Len()
}

// Purge empties the cache.
func (c *SettingsCache) Purge() {
	c.lru.Purge()
}
