package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/stretchr/testify/require"
)

func TestElectionCloser(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	admin := f.user("s1", "")
	club := f.club(admin)
	e := f.election(club, []domain.User{admin})

	c := NewElectionCloser(f.store, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	require.Equal(t, time.Minute, c.Interval)
	c.Clock = func() time.Time { return f.now }

	require.Zero(t, c.CloseElapsed(f.ctx))

	f.now = e.EndTime
	require.EqualValues(t, 1, c.CloseElapsed(f.ctx))

	got, err := f.elections.Get(f.ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusClosed, got.Status)

	require.Zero(t, c.CloseElapsed(f.ctx))
}

func TestElectionCloserStartStop(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	admin := f.user("s1", "")
	e := f.election(f.club(admin), []domain.User{admin})
	f.now = e.EndTime.Add(time.Second)

	c := NewElectionCloser(f.store, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour)
	c.Clock = func() time.Time { return f.now }
	c.Start()
	c.Stop()

	got, err := f.elections.Get(f.ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusClosed, got.Status)
}

func TestElectionCloserLifecycle(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	stopsWithin := func(t *testing.T, c *ElectionCloser) {
		t.Helper()
		done := make(chan struct{})
		go func() {
			c.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Stop did not return")
		}
	}

	t.Run("stop without start returns", func(t *testing.T) {
		t.Parallel()
		c := NewElectionCloser(newFixture(t).store, logger, time.Hour)
		stopsWithin(t, c)
	})

	t.Run("stop twice", func(t *testing.T) {
		t.Parallel()
		c := NewElectionCloser(newFixture(t).store, logger, time.Hour)
		c.Start()
		stopsWithin(t, c)
		require.NotPanics(t, func() { stopsWithin(t, c) })
	})

	t.Run("start after stop is ignored", func(t *testing.T) {
		t.Parallel()
		c := NewElectionCloser(newFixture(t).store, logger, time.Hour)
		stopsWithin(t, c)
		c.Start()
		require.False(t, c.started)
	})
}
