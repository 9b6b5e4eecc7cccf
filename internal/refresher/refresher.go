// internal/refresher/refresher.go
package refresher

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/cache"
)

// FetchFunc performs one read against the upstream and reports the
// decoded value, how many records came back and the total the
// upstream claims to have. A total of -1 means the upstream did not
// report one.
type FetchFunc func(ctx context.Context) (value interface{}, count, total int, err error)

// ReadConsistencyPolicy compensates for the upstream returning a
// write's effects inconsistently on the very next read, observed as a
// reported total > 0 with an empty row list. The policy waits
// RetryDelay and retries exactly once, then accepts whatever comes
// back. There is deliberately no retry loop.
type ReadConsistencyPolicy struct {
	RetryDelay time.Duration
}

// Inconsistent reports whether a list read contradicts itself.
func (p ReadConsistencyPolicy) Inconsistent(count, total int) bool {
	return total > 0 && count == 0
}

// Refresher is the read path of the engine: a read-through over the
// cache store that applies the consistency policy on misses, and the
// owner of per-view polling subscriptions.
type Refresher struct {
	store        *cache.Store
	policy       ReadConsistencyPolicy
	pollInterval time.Duration
	log          *logrus.Logger
}

func New(store *cache.Store, policy ReadConsistencyPolicy, pollInterval time.Duration, log *logrus.Logger) *Refresher {
	return &Refresher{
		store:        store,
		policy:       policy,
		pollInterval: pollInterval,
		log:          log,
	}
}

// Load returns the snapshot for key, fetching through the consistency
// policy when the cache holds no fresh copy.
//
// Failure semantics follow the view contract: a first-read failure
// propagates to the caller (the stale snapshot, if any, is kept in the
// store); a retry-step failure is only logged — the caller gets the
// empty first result and the key stays stale so a later poll corrects
// it.
func (r *Refresher) Load(ctx context.Context, key cache.Key, fetch FetchFunc) (interface{}, error) {
	if value, ok := r.store.Get(key); ok {
		return value, nil
	}

	value, count, total, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if r.policy.Inconsistent(count, total) {
		r.log.WithFields(logrus.Fields{
			"key":   key.String(),
			"total": total,
		}).Warn("Inconsistent read, retrying once")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.policy.RetryDelay):
		}

		retried, _, _, retryErr := fetch(ctx)
		if retryErr != nil {
			r.log.WithError(retryErr).WithField("key", key.String()).
				Error("Retry read failed, keeping key stale")
			return value, nil
		}
		value = retried
	}

	r.store.Put(key, value)
	return value, nil
}

// Reload marks key stale and loads it again, skipping any fresh copy.
func (r *Refresher) Reload(ctx context.Context, key cache.Key, fetch FetchFunc) (interface{}, error) {
	r.store.Invalidate(key)
	return r.Load(ctx, key, fetch)
}

// Invalidate marks the given keys stale.
func (r *Refresher) Invalidate(keys ...cache.Key) {
	r.store.Invalidate(keys...)
}

// Store exposes the underlying cache for callers that need the
// stale-fallback read.
func (r *Refresher) Store() *cache.Store {
	return r.store
}
