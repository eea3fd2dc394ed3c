// Package cache memoizes reference-file parse results. Parsing a large raw
// export takes seconds; the same bytes are uploaded repeatedly when users
// regenerate reports.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/reference"
)

// Cache is a bounded LRU of parsed reference sets keyed by file content.
// Because the hash covers the bytes, re-uploading a corrected file under the
// same name misses the cache and gets reparsed.
type Cache struct {
	entries *lru.Cache[string, *reference.Set]
}

// New returns a Cache holding at most size parsed files.
func New(size int) (*Cache, error) {
	entries, err := lru.New[string, *reference.Set](size)
	if err != nil {
		return nil, fmt.Errorf("create reference cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Key derives the cache key for an upload. Filename and year participate
// because they steer type detection and month bucketing.
func Key(content []byte, filename string, year int) string {
	sum := sha256.Sum256(content)
	return fmt.Sprintf("%s:%s:%d", hex.EncodeToString(sum[:]), filename, year)
}

// Get returns the cached parse for a key.
func (c *Cache) Get(key string) (*reference.Set, bool) {
	return c.entries.Get(key)
}

// Put stores a parse result, evicting the least recently used entry when
// full.
func (c *Cache) Put(key string, set *reference.Set) {
	c.entries.Add(key, set)
}

// Len reports how many parses are cached.
func (c *Cache) Len() int {
	return c.entries.Len()
}
