// Package trending recomputes the hot flag on tweets in the background.
package trending

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/growloop/icarus/internal/storage"
)

var log = logrus.WithField("package", "trending")

// Refresher periodically flips the hot flag on tweets whose engagement within
// the trailing window crosses the threshold.
type Refresher struct {
	s         storage.Storage
	interval  time.Duration
	window    time.Duration
	threshold int64

	mu      sync.Mutex
	lastRun time.Time
	lastErr error
}

// New creates new instance of Refresher.
func New(s storage.Storage, interval, window time.Duration, threshold int64) *Refresher {
	return &Refresher{
		s:         s,
		interval:  interval,
		window:    window,
		threshold: threshold,
	}
}

// Run refreshes hot tweets every interval until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	err := r.s.RefreshHotTweets(ctx, time.Now().UTC().Add(-r.window), r.threshold)
	if err != nil {
		log.WithError(err).Error("failed to refresh hot tweets")
	}

	r.mu.Lock()
	r.lastRun = time.Now().UTC()
	r.lastErr = err
	r.mu.Unlock()
}

// Ping implements health.Pinger.
func (r *Refresher) Ping(_ context.Context) (interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastErr != nil {
		return nil, fmt.Errorf("last refresh failed: %w", r.lastErr)
	}

	return map[string]interface{}{"last_run": r.lastRun}, nil
}

// Name implements health.Pinger.
func (r *Refresher) Name() string {
	return "trending"
}
