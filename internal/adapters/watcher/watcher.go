// Package watcher implements file watching and opt-in manifest cache
// invalidation.
package watcher

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/macroscope/internal/core/domain"
	"go.trai.ch/macroscope/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow is the time window within which repeated events for
// the same path are coalesced.
const DefaultDebounceWindow = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fs       *fsnotify.Watcher
	events   chan ports.WatchEvent
	debounce time.Duration

	mu     sync.Mutex
	last   map[string]time.Time
	closed bool
}

// NewWatcher creates a watcher with the default debounce window.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		fs:       fw,
		events:   make(chan ports.WatchEvent, 64),
		debounce: DefaultDebounceWindow,
		last:     make(map[string]time.Time),
	}, nil
}

// Add registers a directory to watch.
func (w *Watcher) Add(dir string) error {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return domain.ErrWatcherClosed
	}

	if err := w.fs.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
	}
	return nil
}

// Start delivers events until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if out, keep := w.translate(ev); keep {
				select {
				case w.events <- out:
				case <-ctx.Done():
					return nil
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				return zerr.Wrap(err, "file watcher failed")
			}
		}
	}
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	return w.fs.Close()
}

// Events returns an iterator over delivered events. It ends when the watcher
// stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for ev := range w.events {
			if !yield(ev) {
				return
			}
		}
	}
}

// translate maps an fsnotify event to a ports event, dropping events inside
// the debounce window for their path.
func (w *Watcher) translate(ev fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case ev.Has(fsnotify.Create):
		op = ports.OpCreate
	case ev.Has(fsnotify.Write):
		op = ports.OpWrite
	case ev.Has(fsnotify.Remove):
		op = ports.OpRemove
	case ev.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}

	now := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()
	if last, ok := w.last[ev.Name]; ok && now.Sub(last) < w.debounce {
		return ports.WatchEvent{}, false
	}
	w.last[ev.Name] = now

	return ports.WatchEvent{Path: ev.Name, Operation: op}, true
}
