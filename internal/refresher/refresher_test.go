package refresher_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/humbertopaiva/ango-admin-backend/internal/cache"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
)

func newTestRefresher(retryDelay, pollInterval time.Duration) (*refresher.Refresher, *cache.Store) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	store := cache.NewStore()
	return refresher.New(store, refresher.ReadConsistencyPolicy{RetryDelay: retryDelay}, pollInterval, log), store
}

func TestLoad_FreshHitSkipsFetch(t *testing.T) {
	r, store := newTestRefresher(time.Millisecond, time.Minute)
	key := cache.Key{Resource: cache.ResourceProducts, ScopeID: "company-1"}
	store.Put(key, []string{"cached"})

	fetches := 0
	value, err := r.Load(context.Background(), key, func(ctx context.Context) (interface{}, int, int, error) {
		fetches++
		return nil, 0, 0, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"cached"}, value)
	assert.Zero(t, fetches)
}

func TestLoad_ConsistentReadFetchesOnce(t *testing.T) {
	r, store := newTestRefresher(time.Millisecond, time.Minute)
	key := cache.Key{Resource: cache.ResourceProducts, ScopeID: "company-1"}

	fetches := 0
	value, err := r.Load(context.Background(), key, func(ctx context.Context) (interface{}, int, int, error) {
		fetches++
		return []string{"a", "b"}, 2, 2, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, value)
	assert.Equal(t, 1, fetches)
	assert.True(t, store.Fresh(key))
}

// An empty list with a positive reported total is the signature of the
// upstream serving a pre-write snapshot. Exactly one retry happens.
func TestLoad_InconsistentReadRetriesExactlyOnce(t *testing.T) {
	r, store := newTestRefresher(time.Millisecond, time.Minute)
	key := cache.Key{Resource: cache.ResourceVariationItems, ScopeID: "product-1"}

	fetches := 0
	value, err := r.Load(context.Background(), key, func(ctx context.Context) (interface{}, int, int, error) {
		fetches++
		if fetches == 1 {
			return []string{}, 0, 3, nil
		}
		return []string{"p", "m", "g"}, 3, 3, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, fetches)
	assert.Equal(t, []string{"p", "m", "g"}, value)
	assert.True(t, store.Fresh(key))
}

// The second result is accepted unconditionally, even when it is still
// empty. No third fetch.
func TestLoad_RetryResultAcceptedEvenWhenStillInconsistent(t *testing.T) {
	r, store := newTestRefresher(time.Millisecond, time.Minute)
	key := cache.Key{Resource: cache.ResourceVariationItems, ScopeID: "product-1"}

	fetches := 0
	value, err := r.Load(context.Background(), key, func(ctx context.Context) (interface{}, int, int, error) {
		fetches++
		return []string{}, 0, 3, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, fetches)
	assert.Equal(t, []string{}, value)
	assert.True(t, store.Fresh(key))
}

func TestLoad_FirstFetchErrorPropagates(t *testing.T) {
	r, store := newTestRefresher(time.Millisecond, time.Minute)
	key := cache.Key{Resource: cache.ResourceProducts, ScopeID: "company-1"}
	store.Put(key, []string{"stale"})
	store.Invalidate(key)

	boom := errors.New("upstream down")
	_, err := r.Load(context.Background(), key, func(ctx context.Context) (interface{}, int, int, error) {
		return nil, 0, 0, boom
	})

	assert.ErrorIs(t, err, boom)

	// The stale snapshot survives the failure.
	stale, ok := store.Stale(key)
	assert.True(t, ok)
	assert.Equal(t, []string{"stale"}, stale)
	assert.False(t, store.Fresh(key))
}

// A failure on the retry step is swallowed: the caller gets the empty
// first result and the key stays stale for a later poll to correct.
func TestLoad_RetryErrorKeepsKeyStale(t *testing.T) {
	r, store := newTestRefresher(time.Millisecond, time.Minute)
	key := cache.Key{Resource: cache.ResourceVariationItems, ScopeID: "product-1"}

	fetches := 0
	value, err := r.Load(context.Background(), key, func(ctx context.Context) (interface{}, int, int, error) {
		fetches++
		if fetches == 1 {
			return []string{}, 0, 2, nil
		}
		return nil, 0, 0, errors.New("upstream down")
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, fetches)
	assert.Equal(t, []string{}, value)
	assert.False(t, store.Fresh(key))
}

func TestLoad_ContextCancelledDuringRetryDelay(t *testing.T) {
	r, _ := newTestRefresher(time.Minute, time.Minute)
	key := cache.Key{Resource: cache.ResourceProducts, ScopeID: "company-1"}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := r.Load(ctx, key, func(ctx context.Context) (interface{}, int, int, error) {
		return []string{}, 0, 1, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestReload_SkipsFreshCopy(t *testing.T) {
	r, store := newTestRefresher(time.Millisecond, time.Minute)
	key := cache.Key{Resource: cache.ResourceCategories, ScopeID: "company-1"}
	store.Put(key, "old")

	value, err := r.Reload(context.Background(), key, func(ctx context.Context) (interface{}, int, int, error) {
		return "new", 1, 1, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "new", value)
}

func TestWatch_TickInvalidatesAndRunsCallback(t *testing.T) {
	r, store := newTestRefresher(time.Millisecond, 5*time.Millisecond)
	key := cache.Key{Resource: cache.ResourceVariationItems, ScopeID: "product-1"}
	store.Put(key, "snapshot")

	var callbacks atomic.Int32
	sub := r.Watch(key, func(ctx context.Context, k cache.Key) {
		callbacks.Add(1)
	})
	sub.Start(context.Background())
	defer sub.Cancel()

	assert.Eventually(t, func() bool {
		return callbacks.Load() >= 1
	}, time.Second, time.Millisecond)
	assert.False(t, store.Fresh(key))
}

func TestSubscription_CancelStopsPolling(t *testing.T) {
	r, _ := newTestRefresher(time.Millisecond, 5*time.Millisecond)
	key := cache.Key{Resource: cache.ResourceVariationItems, ScopeID: "product-1"}

	var callbacks atomic.Int32
	sub := r.Watch(key, func(ctx context.Context, k cache.Key) {
		callbacks.Add(1)
	})
	sub.Start(context.Background())

	assert.Eventually(t, func() bool {
		return callbacks.Load() >= 1
	}, time.Second, time.Millisecond)

	sub.Cancel()
	seen := callbacks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, seen, callbacks.Load())

	// Cancelling again is a no-op.
	sub.Cancel()
}

func TestSubscription_CancelBeforeStart(t *testing.T) {
	r, _ := newTestRefresher(time.Millisecond, time.Minute)
	sub := r.Watch(cache.Key{Resource: cache.ResourceProducts, ScopeID: "x"}, nil)
	sub.Cancel()
}

func TestSubscription_StartTwiceIsNoOp(t *testing.T) {
	r, _ := newTestRefresher(time.Millisecond, time.Hour)
	sub := r.Watch(cache.Key{Resource: cache.ResourceProducts, ScopeID: "x"}, nil)
	sub.Start(context.Background())
	sub.Start(context.Background())
	sub.Cancel()
}
