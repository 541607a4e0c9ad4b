package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// ContentHash identifies an upload by its exact bytes. Identical bytes load
// to an identical dataset, which makes the hash a safe memoization key.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Entry pairs a loaded dataset with the diagnostics its load produced.
type Entry struct {
	Dataset     *Dataset
	Diagnostics []Diagnostic
}

// Cache memoizes load results by content hash. Putting a new upload evicts
// every other entry: the cache never serves a dataset belonging to a
// replaced upload.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*Entry),
	}
}

func (c *Cache) Get(contentHash string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[contentHash]
	return entry, ok
}

func (c *Cache) Put(contentHash string, entry *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for hash := range c.entries {
		if hash != contentHash {
			delete(c.entries, hash)
		}
	}
	c.entries[contentHash] = entry
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry)
}

func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
