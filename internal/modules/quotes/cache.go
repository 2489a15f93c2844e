package quotes

import (
	"sync"
	"time"

	"github.com/kallias/watchboard/internal/domain"
)

type cacheKey struct {
	symbol string
	period domain.Period
}

type cacheEntry struct {
	points    []domain.PricePoint
	fetchedAt time.Time
}

// SessionCache holds fetched price series in memory for the session. Entries
// expire after the TTL and are evicted lazily on access; a fetch for a new
// horizon discards the symbol's previous series. Nothing runs in the
// background.
type SessionCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewSessionCache creates a cache with the given entry lifetime
func NewSessionCache(ttl time.Duration) *SessionCache {
	return &SessionCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached series for a symbol and period, if fresh
func (c *SessionCache) Get(symbol string, period domain.Period) ([]domain.PricePoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{symbol: symbol, period: period}
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.fetchedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return entry.points, true
}

// Put stores a freshly fetched series, dropping any series the symbol had
// under other horizons
func (c *SessionCache) Put(symbol string, period domain.Period, points []domain.PricePoint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if key.symbol == symbol && key.period != period {
			delete(c.entries, key)
		}
	}

	c.entries[cacheKey{symbol: symbol, period: period}] = cacheEntry{
		points:    points,
		fetchedAt: c.now(),
	}
}

// Len reports how many series are currently held
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
