package watch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func runDebouncer(t *testing.T, cfg DebounceConfig, fires *atomic.Int64) (chan string, context.CancelFunc, chan error) {
	t.Helper()
	debouncer, err := NewDebouncer(cfg, func() { fires.Add(1) })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan string, 64)
	done := make(chan error, 1)
	go func() { done <- debouncer.Run(ctx, changes) }()
	return changes, cancel, done
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var fires atomic.Int64
	changes, cancel, done := runDebouncer(t,
		DebounceConfig{QuietWindow: 50 * time.Millisecond, MaxDelay: time.Second}, &fires)
	defer cancel()

	for i := 0; i < 5; i++ {
		changes <- "toolkit.api.json"
	}

	require.Eventually(t, func() bool { return fires.Load() == 1 },
		time.Second, 10*time.Millisecond)

	// Stays at one once the burst is flushed.
	time.Sleep(150 * time.Millisecond)
	require.Equal(t, int64(1), fires.Load())

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestDebouncer_MaxDelayBoundsPostponement(t *testing.T) {
	var fires atomic.Int64
	changes, cancel, done := runDebouncer(t,
		DebounceConfig{QuietWindow: 80 * time.Millisecond, MaxDelay: 200 * time.Millisecond}, &fires)
	defer cancel()

	// Keep changes arriving faster than the quiet window for well past the
	// max delay; the deadline must force a rebuild anyway.
	stop := time.After(600 * time.Millisecond)
feed:
	for {
		select {
		case <-stop:
			break feed
		case changes <- "toolkit.api.json":
			time.Sleep(20 * time.Millisecond)
		}
	}

	require.GreaterOrEqual(t, fires.Load(), int64(2))

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestDebouncer_ChannelCloseStopsRun(t *testing.T) {
	var fires atomic.Int64
	changes, cancel, done := runDebouncer(t,
		DebounceConfig{QuietWindow: 50 * time.Millisecond, MaxDelay: time.Second}, &fires)
	defer cancel()

	close(changes)
	require.NoError(t, <-done)
	require.Zero(t, fires.Load())
}

func TestDebouncer_RequiresCallback(t *testing.T) {
	_, err := NewDebouncer(DebounceConfig{}, nil)
	require.Error(t, err)
}

func TestDebouncer_DefaultsApplied(t *testing.T) {
	debouncer, err := NewDebouncer(DebounceConfig{}, func() {})
	require.NoError(t, err)
	require.Equal(t, defaultQuietWindow, debouncer.cfg.QuietWindow)
	require.Equal(t, defaultMaxDelay, debouncer.cfg.MaxDelay)
}
