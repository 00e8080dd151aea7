// Package locks serializes operations per entity id. The storage layer has
// no multi-document transactions, so concurrent requests touching the same
// aircraft, gate or booking must not interleave their read-then-write steps.
package locks

import (
	"sort"
	"sync"
)

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Keyed hands out one mutex per key, created on demand and dropped when the
// last holder releases it.
type Keyed struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

// NewKeyed creates an empty keyed lock set.
func NewKeyed() *Keyed {
	return &Keyed{
		entries: make(map[string]*lockEntry),
	}
}

// Lock acquires the mutexes for all given keys in sorted order, so two
// operations locking overlapping key sets cannot deadlock. The returned
// function releases them in reverse order.
func (k *Keyed) Lock(keys ...string) func() {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	acquired := make([]*lockEntry, 0, len(sorted))
	for i, key := range sorted {
		// Skip duplicates after sorting
		if i > 0 && key == sorted[i-1] {
			continue
		}
		e := k.retain(key)
		e.mu.Lock()
		acquired = append(acquired, e)
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].mu.Unlock()
		}
		k.mu.Lock()
		for i, key := range sorted {
			if i > 0 && key == sorted[i-1] {
				continue
			}
			e := k.entries[key]
			e.refs--
			if e.refs == 0 {
				delete(k.entries, key)
			}
		}
		k.mu.Unlock()
	}
}

func (k *Keyed) retain(key string) *lockEntry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &lockEntry{}
		k.entries[key] = e
	}
	e.refs++
	return e
}
