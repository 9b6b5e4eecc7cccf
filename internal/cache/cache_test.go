package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humbertopaiva/ango-admin-backend/internal/cache"
)

func TestStore_GetReturnsOnlyFresh(t *testing.T) {
	store := cache.NewStore()
	key := cache.Key{Resource: cache.ResourceProducts, ScopeID: "company-1"}

	_, ok := store.Get(key)
	assert.False(t, ok)

	store.Put(key, "snapshot")
	value, ok := store.Get(key)
	assert.True(t, ok)
	assert.Equal(t, "snapshot", value)

	store.Invalidate(key)
	_, ok = store.Get(key)
	assert.False(t, ok)
}

func TestStore_StaleKeepsSnapshotAfterInvalidation(t *testing.T) {
	store := cache.NewStore()
	key := cache.Key{Resource: cache.ResourceVariationTypes, ScopeID: "company-1"}

	store.Put(key, []string{"Tamanho"})
	store.Invalidate(key)

	value, ok := store.Stale(key)
	assert.True(t, ok)
	assert.Equal(t, []string{"Tamanho"}, value)
}

func TestStore_InvalidateUnknownKeyIsRecorded(t *testing.T) {
	store := cache.NewStore()
	key := cache.Key{Resource: cache.ResourceProfile, ScopeID: "company-1"}

	store.Invalidate(key)
	assert.False(t, store.Fresh(key))

	_, ok := store.Stale(key)
	assert.True(t, ok)
}

// Overlapping invalidations collapse: one Put restores freshness no
// matter how many times the key was flipped stale.
func TestStore_InvalidationsCollapse(t *testing.T) {
	store := cache.NewStore()
	key := cache.Key{Resource: cache.ResourceVariationItems, ScopeID: "product-1"}

	store.Put(key, 1)
	store.Invalidate(key)
	store.Invalidate(key)
	store.Invalidate(key)

	store.Put(key, 2)
	value, ok := store.Get(key)
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	store := cache.NewStore()
	a := cache.Key{Resource: cache.ResourceVariationItems, ScopeID: "product-1"}
	b := cache.Key{Resource: cache.ResourceVariationItems, ScopeID: "product-2"}

	store.Put(a, "a")
	store.Put(b, "b")
	store.Invalidate(a)

	assert.False(t, store.Fresh(a))
	assert.True(t, store.Fresh(b))
}

func TestKey_String(t *testing.T) {
	key := cache.Key{Resource: cache.ResourceShowcase, ScopeID: "company-9"}
	assert.Equal(t, "showcase:company-9", key.String())
}
