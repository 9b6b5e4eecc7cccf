// internal/cache/cache.go
package cache

import (
	"fmt"
	"sync"
	"time"
)

// Resource identifies a cached query family.
type Resource string

const (
	ResourceVariationTypes Resource = "variation_types"
	ResourceVariationItems Resource = "variation_items"
	ResourceProducts       Resource = "products"
	ResourceProduct        Resource = "product"
	ResourceCategories     Resource = "categories"
	ResourceAddonLists     Resource = "addon_lists"
	ResourceShowcase       Resource = "showcase"
	ResourceProfile        Resource = "profile"
)

// Key addresses one cached snapshot: a resource family plus the id it
// is scoped by (company id for company-wide lists, product id for
// per-product lists).
type Key struct {
	Resource Resource
	ScopeID  string
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s", k.Resource, k.ScopeID)
}

type state int

const (
	stateStale state = iota
	stateFresh
)

type entry struct {
	value     interface{}
	state     state
	updatedAt time.Time
}

// Store is the explicit key→snapshot cache shared by the registry,
// item store and refresher. It is passed by reference to its
// consumers rather than living in package state. Any component may
// invalidate a key; only the engine's read path writes through.
//
// Invalidation is an idempotent state flip, so overlapping
// invalidations of one key collapse into a single subsequent refetch.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[Key]*entry)}
}

// Get returns the snapshot for key only while it is fresh.
func (s *Store) Get(key Key) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || e.state != stateFresh {
		return nil, false
	}
	return e.value, true
}

// Stale returns the last snapshot regardless of freshness. Used to
// keep rendering old data when a refetch fails.
func (s *Store) Stale(key Key) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Put stores a snapshot and marks it fresh.
func (s *Store) Put(key Key, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &entry{value: value, state: stateFresh, updatedAt: time.Now()}
}

// Invalidate marks the given keys stale. The snapshots themselves are
// kept so failed refetches can fall back to them.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		if e, ok := s.entries[key]; ok {
			e.state = stateStale
		} else {
			s.entries[key] = &entry{state: stateStale}
		}
	}
}

// Fresh reports whether key currently holds a fresh snapshot.
func (s *Store) Fresh(key Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	return ok && e.state == stateFresh
}
