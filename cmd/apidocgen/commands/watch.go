package commands

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/apidocgen/internal/generator"
	"git.home.luguber.info/inful/apidocgen/internal/watch"
)

// WatchCmd implements the 'watch' command: an initial full generation,
// then a debounced regeneration on every input change.
type WatchCmd struct {
	Input       string        `short:"i" help:"Doc-model input directory (overrides config)"`
	Output      string        `short:"o" help:"Output directory (overrides config)"`
	QuietWindow time.Duration `help:"How long the input must stay quiet before regenerating" default:"500ms"`
	MaxDelay    time.Duration `help:"Upper bound on regeneration postponement during change bursts" default:"5s"`
}

func (w *WatchCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}
	if w.Input != "" {
		cfg.Input.Directory = w.Input
	}
	if w.Output != "" {
		cfg.Output.Directory = w.Output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen := generator.New(cfg)
	rebuild := func() {
		if _, err := gen.Run(); err != nil {
			// Watch mode keeps running through bad input; the next change
			// gets another chance.
			slog.Error("Generation failed", slog.Any("error", err))
		}
	}
	rebuild()

	watcher, err := watch.New(cfg.Input.Directory,
		watch.DebounceConfig{QuietWindow: w.QuietWindow, MaxDelay: w.MaxDelay},
		rebuild)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("Watch stopped")
	return nil
}
