package generator

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// countWarnings wraps the default slog handler with a warning counter for
// the duration of one run. The returned restore function reinstates the
// previous logger; the count function reads the total so far.
func countWarnings() (restore func(), count func() int) {
	previous := slog.Default()
	counter := &warnCountHandler{Handler: previous.Handler(), n: &atomic.Int64{}}
	slog.SetDefault(slog.New(counter))
	return func() { slog.SetDefault(previous) },
		func() int { return int(counter.n.Load()) }
}

type warnCountHandler struct {
	slog.Handler
	n *atomic.Int64
}

func (h *warnCountHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		h.n.Add(1)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *warnCountHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &warnCountHandler{Handler: h.Handler.WithAttrs(attrs), n: h.n}
}

func (h *warnCountHandler) WithGroup(name string) slog.Handler {
	return &warnCountHandler{Handler: h.Handler.WithGroup(name), n: h.n}
}
