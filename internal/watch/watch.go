// Package watch re-runs a callback when source files change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change lists the paths that changed during one debounce window.
type Change struct {
	Paths []string
}

// Func is called after each debounced batch of changes.
type Func func(ctx context.Context, change Change)

// Options configures a Watcher.
type Options struct {
	// Debounce is how long the watcher waits for more events before it
	// calls the callback. Zero calls it for every event batch read.
	Debounce time.Duration
	// Match selects the paths that trigger the callback. Nil accepts all.
	Match func(path string) bool
	Logger *slog.Logger
}

// Watcher watches files and directories and coalesces their write, create,
// remove and rename events.
type Watcher struct {
	fs   *fsnotify.Watcher
	opts Options
	log  *slog.Logger

	pending map[string]struct{}
}

// New creates a watcher over paths. Directories are watched
// non-recursively.
func New(paths []string, opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	w := &Watcher{fs: fsw, opts: opts, log: log, pending: make(map[string]struct{})}
	for _, path := range paths {
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
		log.Debug("watching", "path", path)
	}

	return w, nil
}

// Run delivers debounced changes to fn until ctx is cancelled. It closes
// the watcher before returning.
func (w *Watcher) Run(ctx context.Context, fn Func) error {
	defer w.fs.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("change", "path", ev.Name, "op", ev.Op.String())
			w.add(ev.Name)

			if w.opts.Debounce <= 0 {
				w.flush(ctx, fn)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.flush(ctx, fn)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.log.Warn("watch events dropped", "error", err)
				continue
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return w.opts.Match == nil || w.opts.Match(ev.Name)
}

func (w *Watcher) add(path string) {
	w.pending[filepath.Clean(path)] = struct{}{}
}

func (w *Watcher) flush(ctx context.Context, fn Func) {
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	clear(w.pending)

	if len(paths) == 0 {
		return
	}
	slices.Sort(paths)

	fn(ctx, Change{Paths: paths})
}
