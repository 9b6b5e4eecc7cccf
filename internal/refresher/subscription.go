// internal/refresher/subscription.go
package refresher

import (
	"context"
	"sync"
	"time"

	"github.com/humbertopaiva/ango-admin-backend/internal/cache"
)

// Subscription is the explicit form of "poll while a detail view is
// open": while started, it re-marks its key stale on a fixed interval
// as a bounded-staleness guarantee. Cancel stops the ticker and, via
// context, any retry the refresher has pending for the key.
type Subscription struct {
	key      cache.Key
	interval time.Duration
	onStale  func(ctx context.Context, key cache.Key)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// Watch builds a subscription for key. onStale, when non-nil, runs
// after each invalidation tick (typically a refetch that warms the
// cache for the watching view); a nil onStale leaves the refetch to
// the next reader.
func (r *Refresher) Watch(key cache.Key, onStale func(ctx context.Context, key cache.Key)) *Subscription {
	sub := &Subscription{
		key:      key,
		interval: r.pollInterval,
	}
	sub.onStale = func(ctx context.Context, k cache.Key) {
		r.store.Invalidate(k)
		if onStale != nil {
			onStale(ctx, k)
		}
	}
	return sub
}

// Start begins polling. Starting an already-started subscription is a
// no-op.
func (s *Subscription) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.onStale(ctx, s.key)
			}
		}
	}()
}

// Cancel stops polling and waits for the poll goroutine to exit.
// Safe to call multiple times and before Start.
func (s *Subscription) Cancel() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
}
