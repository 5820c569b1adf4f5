package cache

import (
	"countryfx/internal/domain"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/text/cases"
)

const (
	defaultMaxItems = 1024
	defaultTTL      = 5 * time.Minute
)

// RistrettoCountryCache keeps recently looked-up countries keyed by their case-folded name.
// Entries expire after ttl, which bounds how long a lookup that lost a race with a delete is served.
type RistrettoCountryCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewCountryCache(maxItems int64, ttl time.Duration) (*RistrettoCountryCache, error) {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create country cache failed: %w", err)
	}
	return &RistrettoCountryCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoCountryCache) Get(name string) (domain.Country, bool) {
	if v, ok := c.cache.Get(key(name)); ok {
		country, ok := v.(domain.Country)
		return country, ok
	}
	return domain.Country{}, false
}

func (c *RistrettoCountryCache) Set(country domain.Country) {
	c.cache.SetWithTTL(key(country.Name), country, 1, c.ttl)
}

func (c *RistrettoCountryCache) Delete(name string) {
	c.cache.Del(key(name))
}

// Clear drops every entry; called after a refresh batch rewrote the table.
func (c *RistrettoCountryCache) Clear() { c.cache.Clear() }

// Wait blocks until buffered writes are applied.
func (c *RistrettoCountryCache) Wait() { c.cache.Wait() }

func (c *RistrettoCountryCache) Close() { c.cache.Close() }

// Casers are stateful, so a fresh one is built per call.
func key(name string) string {
	return cases.Fold().String(name)
}
