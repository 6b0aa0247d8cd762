package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/usecase"
)

// ConjugationCache is an LRU cache of pipeline results with a TTL. Entries
// written before the last Invalidate are treated as misses.
type ConjugationCache struct {
	mu         sync.RWMutex
	entries    map[string]*cacheEntry
	order      []string
	maxSize    int
	ttl        time.Duration
	generation uint64
	now        func() time.Time
}

type cacheEntry struct {
	results    []domain.Conjugation
	timestamp  time.Time
	generation uint64
}

func NewConjugationCache(maxSize int, ttl time.Duration) *ConjugationCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ConjugationCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

func cacheKey(word string, opts usecase.ConjugateOptions) string {
	data := []byte(word)
	data = append(data, 0)
	data = append(data, opts.Key()...)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

func (c *ConjugationCache) Get(word string, opts usecase.ConjugateOptions) ([]domain.Conjugation, bool) {
	key := cacheKey(word, opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}
	if c.now().Sub(entry.timestamp) > c.ttl || entry.generation != c.generation {
		delete(c.entries, key)
		c.removeFromOrder(key)
		return nil, false
	}

	c.moveToEnd(key)
	return entry.results, true
}

func (c *ConjugationCache) Put(word string, opts usecase.ConjugateOptions, results []domain.Conjugation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(word, opts)
	entry := &cacheEntry{
		results:    results,
		timestamp:  c.now(),
		generation: c.generation,
	}

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = entry
	c.order = append(c.order, key)
}

// Invalidate drops every entry, for instance after the lexicon was replaced.
func (c *ConjugationCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.generation++
}

func (c *ConjugationCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ConjugationCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ConjugationCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *ConjugationCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// CachedConjugator puts a ConjugationCache in front of a pipeline.
type CachedConjugator struct {
	conjugator usecase.Conjugator
	cache      *ConjugationCache
}

func NewCachedConjugator(conjugator usecase.Conjugator, cache *ConjugationCache) *CachedConjugator {
	return &CachedConjugator{
		conjugator: conjugator,
		cache:      cache,
	}
}

var _ usecase.Conjugator = (*CachedConjugator)(nil)

// Conjugate serves repeated words from the cache. Failures are not cached.
func (c *CachedConjugator) Conjugate(ctx context.Context, word string, opts usecase.ConjugateOptions) ([]domain.Conjugation, error) {
	if results, hit := c.cache.Get(word, opts); hit {
		return results, nil
	}

	results, err := c.conjugator.Conjugate(ctx, word, opts)
	if err != nil {
		return nil, err
	}

	c.cache.Put(word, opts, results)
	return results, nil
}

func (c *CachedConjugator) Invalidate() {
	c.cache.Invalidate()
}
