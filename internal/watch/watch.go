// Package watch re-runs a callback whenever a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wadahiro/ssmshapes/internal/clock"
	"github.com/wadahiro/ssmshapes/internal/log"
)

var logger = log.For(log.ComponentWatch)

// Debouncer collapses bursts of Trigger calls into one call of f, made once
// no Trigger has arrived for the configured delay.
type Debouncer struct {
	clock clock.Clock
	delay time.Duration
	f     func()

	mu    sync.Mutex
	timer clock.Timer
}

// NewDebouncer creates a Debouncer that calls f.
func NewDebouncer(clk clock.Clock, delay time.Duration, f func()) *Debouncer {
	return &Debouncer{clock: clk, delay: delay, f: f}
}

// Trigger restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, d.f)
}

// Stop cancels a pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// File watches a single file. Its directory is watched instead of the file
// itself so that editors which save by renaming a temporary file are seen.
type File struct {
	path     string
	debounce *Debouncer
}

// NewFile prepares a watch on path that calls onChange after each burst of
// writes.
func NewFile(path string, clk clock.Clock, delay time.Duration, onChange func()) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return &File{path: abs, debounce: NewDebouncer(clk, delay, onChange)}, nil
}

// Run blocks until ctx is done or the watcher fails.
func (w *File) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()
	defer w.debounce.Stop()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	logger.Info("Watching for changes", "file", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				logger.Debug("Detected change", "file", event.Name, "op", event.Op.String())
				w.debounce.Trigger()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", "error", err)
		}
	}
}

func (w *File) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
