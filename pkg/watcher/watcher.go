// Package watcher re-runs validation when watched dataset files change
// on disk. Changes are debounced so editors that write files in several
// steps trigger a single run.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval is the quiet period required before a change
// triggers a revalidation.
const DefaultDebounceInterval = 100 * time.Millisecond

// Watcher observes a fixed set of files and invokes a callback with the
// paths that changed. Parent directories are watched rather than the
// files themselves so rename-based saves are not missed.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce *Debouncer

	// watched maps cleaned absolute paths back to the paths the
	// caller supplied.
	watched map[string]string

	mu      sync.Mutex
	pending map[string]struct{}
}

// New creates a watcher for the given files. The files do not need to
// exist yet; validation picks up creations as well as modifications.
func New(paths []string, interval time.Duration) (*Watcher, error) {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		logger:   slog.Default().With("component", "watcher"),
		debounce: NewDebouncer(interval),
		watched:  make(map[string]string, len(paths)),
		pending:  make(map[string]struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to resolve %q: %w", p, err)
		}
		w.watched[abs] = p
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch directory %q: %w", dir, err)
		}
		w.logger.Debug("Watching directory", "path", dir)
	}

	return w, nil
}

// Watch blocks until the context is cancelled, calling onChange with
// the changed file paths after each quiet period. Paths are reported in
// the caller's original spelling.
func (w *Watcher) Watch(ctx context.Context, onChange func(paths []string)) error {
	w.logger.Info("File watcher started",
		"files", len(w.watched),
		"debounce_ms", w.debounce.interval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("File watcher stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			orig, tracked := w.match(event)
			if !tracked {
				continue
			}

			w.logger.Debug("File event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			w.mu.Lock()
			w.pending[orig] = struct{}{}
			w.mu.Unlock()

			w.debounce.Trigger(func() {
				onChange(w.drain())
			})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("File watcher error", "error", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.debounce.Stop()
	return w.fsw.Close()
}

func (w *Watcher) match(event fsnotify.Event) (string, bool) {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return "", false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	orig, ok := w.watched[abs]
	return orig, ok
}

// drain returns and resets the pending change set.
func (w *Watcher) drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	return paths
}

// Debouncer collapses rapid event bursts into a single callback after a
// quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopped  bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules the callback after the quiet period, replacing any
// previously scheduled callback.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.mu.Unlock()

		if cb != nil && !stopped {
			cb()
		}
	})
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
