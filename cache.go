package tokenpage

import (
	"sync"
	"time"

	"github.com/eringen/tokenpage/character"
)

// CharacterCache is an in-memory, per-slug TTL cache of loaded
// characters. Not-found results are not cached so a newly added file is
// served on the next request.
type CharacterCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	loader  *character.Loader
	now     func() time.Time
}

type cacheEntry struct {
	char    character.Character
	fetched time.Time
}

// NewCharacterCache creates a CharacterCache backed by loader.
func NewCharacterCache(loader *character.Loader, ttl time.Duration) *CharacterCache {
	return &CharacterCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		loader:  loader,
		now:     time.Now,
	}
}

func (c *CharacterCache) valid(e cacheEntry) bool {
	return c.now().Sub(e.fetched) < c.ttl
}

// Get returns the character for slug, loading it if the cached copy is
// missing or stale.
func (c *CharacterCache) Get(slug string) (character.Character, error) {
	c.mu.RLock()
	e, ok := c.entries[slug]
	c.mu.RUnlock()
	if ok && c.valid(e) {
		return e.char, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[slug]; ok && c.valid(e) {
		return e.char, nil
	}
	ch, err := c.loader.Load(slug)
	if err != nil {
		delete(c.entries, slug)
		return character.Character{}, err
	}
	c.entries[slug] = cacheEntry{char: ch, fetched: c.now()}
	return ch, nil
}

// Invalidate drops slug, or every entry when slug is empty.
func (c *CharacterCache) Invalidate(slug string) {
	c.mu.Lock()
	if slug == "" {
		c.entries = make(map[string]cacheEntry)
	} else {
		delete(c.entries, slug)
	}
	c.mu.Unlock()
}
