package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/bikeshare/internal/ports"
)

// DefaultDebounce delays a rerun until writes to the data file settle.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reruns a report whenever the watched data file changes.
type Watcher struct {
	path     string
	run      func(ctx context.Context) error
	logger   ports.Logger
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer

	runMu sync.Mutex // serializes reruns
}

// NewWatcher watches path and calls run once at start and after each change.
func NewWatcher(path string, run func(ctx context.Context) error, logger ports.Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		run:      run,
		logger:   logger,
		debounce: DefaultDebounce,
	}
}

// Run blocks until ctx is canceled. The data file's directory is watched
// so editors that replace the file by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.rerun(ctx)

	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("data file changed", ports.String("path", w.path), ports.String("op", event.Op.String()))
			w.schedule(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.rerun(ctx) })
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) rerun(ctx context.Context) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if ctx.Err() != nil {
		return
	}
	if err := w.run(ctx); err != nil {
		w.logger.Error("report failed", ports.String("path", w.path), ports.Err(err))
	}
}
