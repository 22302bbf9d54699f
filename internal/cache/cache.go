// Package cache persists minimization results between runs, keyed by the
// hash of the minterm list.
package cache

import (
	"crypto/md5"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gnoswap-labs/qmc/internal/qm"
)

const cacheFileName = "qmc_cache.gob"

// DefaultMaxAge is used when no maximum age is configured.
const DefaultMaxAge = 24 * time.Hour

type Entry struct {
	Result       qm.Result
	CreatedAt    time.Time
	LastAccessed time.Time
}

type Cache struct {
	CacheDir string
	entries  map[string]Entry
	mutex    sync.RWMutex
	maxAge   time.Duration
}

func NewCache(cacheDir string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cache := &Cache{
		CacheDir: cacheDir,
		entries:  make(map[string]Entry),
		maxAge:   DefaultMaxAge,
	}

	if err := cache.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}

	return cache, nil
}

func (c *Cache) load() error {
	file, err := os.Open(filepath.Join(c.CacheDir, cacheFileName))
	if os.IsNotExist(err) {
		return nil // cache file doesn't exist yet
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(&c.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}
	return nil
}

func (c *Cache) save() error {
	file, err := os.Create(filepath.Join(c.CacheDir, cacheFileName))
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}
	return nil
}

// Set stores res under the key of its minterm list and writes the cache
// file.
func (c *Cache) Set(res *qm.Result) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	c.entries[Key(res.Minterms)] = Entry{
		Result:       *res.Clone(),
		CreatedAt:    now,
		LastAccessed: now,
	}
	return c.save()
}

// Get returns a copy of the stored result for values. Entries older than
// the maximum age are dropped.
func (c *Cache) Get(values []int) (*qm.Result, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := Key(values)
	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if time.Since(entry.CreatedAt) > c.maxAge {
		delete(c.entries, key)
		return nil, false
	}

	entry.LastAccessed = time.Now()
	c.entries[key] = entry

	return entry.Result.Clone(), true
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// Flush writes the in-memory state, including access times, to disk.
func (c *Cache) Flush() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.save()
}

func (c *Cache) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = duration
}

func (c *Cache) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]Entry)
	_ = c.save() // ignore error as this is a manual operation
}

// Key hashes a minterm list.
func Key(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("%x", md5.Sum([]byte(strings.Join(parts, ","))))
}
