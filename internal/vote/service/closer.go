package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
)

// ElectionCloser periodically flips active elections whose end time has
// passed to closed.
type ElectionCloser struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Clock    Clock

	startOnce sync.Once
	stopOnce  sync.Once
	started   bool // written only inside startOnce
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewElectionCloser creates a closer that runs every interval.
// If interval is 0 or negative, defaults to 1 minute.
func NewElectionCloser(store store.Store, logger *slog.Logger, interval time.Duration) *ElectionCloser {
	if interval <= 0 {
		interval = time.Minute
	}

	return &ElectionCloser{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
// Calls after the first, or after Stop, do nothing.
func (c *ElectionCloser) Start() {
	c.startOnce.Do(func() {
		c.started = true
		go c.run()
		c.Logger.Info("election closer started", "interval", c.Interval)
	})
}

// Stop blocks until any in-progress sweep has finished. It is safe to call
// more than once and on a closer that was never started.
func (c *ElectionCloser) Stop() {
	c.stopOnce.Do(func() {
		// Consume Start so a late call cannot launch a worker after Stop.
		c.startOnce.Do(func() {})
		close(c.stopCh)
		if c.started {
			<-c.doneCh
		}
		c.Logger.Info("election closer stopped")
	})
}

func (c *ElectionCloser) run() {
	defer close(c.doneCh)

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	c.CloseElapsed(context.Background())

	for {
		select {
		case <-ticker.C:
			c.CloseElapsed(context.Background())
		case <-c.stopCh:
			return
		}
	}
}

// CloseElapsed runs one sweep and returns the number of elections closed.
func (c *ElectionCloser) CloseElapsed(ctx context.Context) int64 {
	n, err := c.Store.Elections().CloseElapsed(ctx, c.Clock.now())
	if err != nil {
		c.Logger.Error("failed to close elapsed elections", "error", err)
		return 0
	}
	if n > 0 {
		c.Logger.Info("closed elapsed elections", "count", n)
	}
	return n
}
