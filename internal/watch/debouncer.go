package watch

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
)

// DebounceConfig controls how change bursts are coalesced.
type DebounceConfig struct {
	// QuietWindow is how long the input must stay quiet before a rebuild
	// fires. Every new change restarts the window.
	QuietWindow time.Duration

	// MaxDelay caps how long a rebuild can be postponed while changes keep
	// arriving.
	MaxDelay time.Duration
}

const (
	defaultQuietWindow = 500 * time.Millisecond
	defaultMaxDelay    = 5 * time.Second
)

func (c *DebounceConfig) applyDefaults() {
	if c.QuietWindow <= 0 {
		c.QuietWindow = defaultQuietWindow
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = defaultMaxDelay
	}
}

// Debouncer coalesces bursts of change notifications into single rebuild
// calls: a rebuild fires once the input has been quiet for QuietWindow, or
// after MaxDelay if changes never stop arriving. It is a single-goroutine
// loop; the rebuild callback runs on the loop goroutine, so changes that
// arrive during a rebuild queue up for the next cycle.
type Debouncer struct {
	cfg     DebounceConfig
	rebuild func()
}

// NewDebouncer creates a Debouncer. Zero config fields take defaults.
func NewDebouncer(cfg DebounceConfig, rebuild func()) (*Debouncer, error) {
	if rebuild == nil {
		return nil, errors.NewError(errors.CategoryValidation, "rebuild callback is required").Build()
	}
	cfg.applyDefaults()
	return &Debouncer{cfg: cfg, rebuild: rebuild}, nil
}

// Run consumes changes until the context is canceled or the channel closes.
func (d *Debouncer) Run(ctx context.Context, changes <-chan string) error {
	quiet := newStoppedTimer()
	deadline := newStoppedTimer()

	var quietC, deadlineC <-chan time.Time
	pending := 0

	fire := func() {
		slog.Debug("Rebuilding after input changes", slog.Int("changes", pending))
		pending = 0
		resetStopped(quiet)
		resetStopped(deadline)
		quietC, deadlineC = nil, nil
		d.rebuild()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case name, ok := <-changes:
			if !ok {
				return nil
			}
			slog.Debug("Input change detected", slog.String("file", name))
			if pending == 0 {
				restart(deadline, d.cfg.MaxDelay)
				deadlineC = deadline.C
			}
			pending++
			restart(quiet, d.cfg.QuietWindow)
			quietC = quiet.C

		case <-quietC:
			fire()

		case <-deadlineC:
			fire()
		}
	}
}

// newStoppedTimer returns a timer that will not fire until restarted.
func newStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	resetStopped(t)
	return t
}

func resetStopped(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func restart(t *time.Timer, after time.Duration) {
	resetStopped(t)
	t.Reset(after)
}
