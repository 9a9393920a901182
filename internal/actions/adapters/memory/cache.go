package memory

import (
	"slices"
	"strings"
	"sync"
	"time"

	"wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/actions/core/ports"
)

// DefaultMaxEntries bounds the entries that carry a ttl.
const DefaultMaxEntries = 64

type entry struct {
	ds      *domain.Dataset
	expires time.Time // zero: pinned
}

// DatasetCache holds pinned uploads plus a bounded set of expiring SQL
// loads. When the expiring set is full the oldest one is evicted.
type DatasetCache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	full       []string // keys of unfiltered entries, insertion order
	expiring   []string // keys with a ttl, insertion order
	maxEntries int
	now        func() time.Time
}

func NewDatasetCache(maxEntries int) *DatasetCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &DatasetCache{
		entries:    make(map[string]*entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

var _ ports.DatasetCachePort = (*DatasetCache)(nil)

func (c *DatasetCache) Get(sourceID string, dates []string) (*domain.Dataset, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(sourceID, dates)
	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if c.expired(e) {
		c.remove(k)
		return nil, false
	}
	return clone(e.ds), true
}

func (c *DatasetCache) Put(ds *domain.Dataset, dates []string, ttl time.Duration) {
	if ds == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(ds.ID, dates)
	var expires time.Time
	if ttl > 0 {
		expires = c.now().Add(ttl)
	}

	old, exists := c.entries[k]
	c.entries[k] = &entry{ds: clone(ds), expires: expires}

	if !exists && len(dates) == 0 {
		c.full = append(c.full, k)
	}

	wasExpiring := exists && !old.expires.IsZero()
	switch {
	case ttl > 0 && !wasExpiring:
		c.expiring = append(c.expiring, k)
	case ttl <= 0 && wasExpiring:
		c.expiring = without(c.expiring, k)
	}

	for len(c.expiring) > c.maxEntries {
		c.remove(c.expiring[0])
	}
}

func (c *DatasetCache) List() []*domain.Dataset {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*domain.Dataset, 0, len(c.full))
	for _, k := range slices.Clone(c.full) {
		e := c.entries[k]
		if c.expired(e) {
			c.remove(k)
			continue
		}
		out = append(out, clone(e.ds))
	}
	return out
}

func (c *DatasetCache) expired(e *entry) bool {
	return !e.expires.IsZero() && !c.now().Before(e.expires)
}

// remove expects c.mu held.
func (c *DatasetCache) remove(k string) {
	delete(c.entries, k)
	c.full = without(c.full, k)
	c.expiring = without(c.expiring, k)
}

func without(keys []string, k string) []string {
	return slices.DeleteFunc(keys, func(s string) bool { return s == k })
}

func key(sourceID string, dates []string) string {
	if len(dates) == 0 {
		return sourceID
	}
	return sourceID + "@" + strings.Join(dates, ",")
}

// callers get their own slices; cached rows are never shared
func clone(ds *domain.Dataset) *domain.Dataset {
	cp := *ds
	cp.Events = append([]domain.Event(nil), ds.Events...)
	cp.Dates = append([]string(nil), ds.Dates...)
	return &cp
}
