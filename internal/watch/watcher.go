// Package watch rebuilds the documentation whenever the doc-model input
// directory changes. File system events are debounced so editor save
// bursts and bulk copies trigger one rebuild, not dozens.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/apidocgen/internal/apiload"
	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
)

// Watcher monitors one input directory and invokes a rebuild callback
// through a Debouncer.
type Watcher struct {
	dir       string
	debouncer *Debouncer
}

// New creates a Watcher for dir. The rebuild callback runs on the watch
// loop goroutine; rebuild errors are the callback's responsibility.
func New(dir string, cfg DebounceConfig, rebuild func()) (*Watcher, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve input directory").
			WithContext("path", dir).
			Build()
	}
	debouncer, err := NewDebouncer(cfg, rebuild)
	if err != nil {
		return nil, err
	}
	return &Watcher{dir: abs, debouncer: debouncer}, nil
}

// Run watches until the context is canceled. It returns the context error
// on cancellation, matching the Debouncer contract.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create file watcher").Build()
	}
	defer func() {
		_ = fsw.Close()
	}()

	if err := fsw.Add(w.dir); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to watch input directory").
			WithContext("path", w.dir).
			Build()
	}

	slog.Info("Watching for input changes", slog.String("path", w.dir))

	changes := make(chan string, 64)
	go w.forward(ctx, fsw, changes)

	return w.debouncer.Run(ctx, changes)
}

// forward filters raw file system events down to doc-model file changes.
func (w *Watcher) forward(ctx context.Context, fsw *fsnotify.Watcher, changes chan<- string) {
	defer close(changes)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(filepath.Base(event.Name), apiload.FileSuffix) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case changes <- event.Name:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("File watcher error", slog.Any("error", err))
		}
	}
}
