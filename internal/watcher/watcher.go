// Package watcher reports external modifications of the open map file.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/hollow/internal/logger"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must stay quiet before a change is
// reported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// Watcher watches one file. Saves replace the file by renaming a temporary
// file over it, so the parent directory is watched and events are filtered
// by name.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onChange func(path string)
	debounce time.Duration

	mu          sync.Mutex
	ignoreUntil time.Time
	timer       *time.Timer
	closed      bool

	done chan struct{}
	wg   sync.WaitGroup
}

// New starts watching path. onChange runs on its own goroutine after each
// burst of external writes.
func New(path string, onChange func(path string), opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve '%s': %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch '%s': %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		onChange: onChange,
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	logger.DebugTagf("watcher", "Watching %s", abs)
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Suppress ignores changes for d. The editor calls it before writing the
// file itself.
func (w *Watcher) Suppress(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ignoreUntil = time.Now().Add(d)
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warnf("Watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.path {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || time.Now().Before(w.ignoreUntil) {
		logger.DebugTagf("watcher", "Ignoring %s", ev)
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}
	logger.Infof("Watcher: %s changed on disk", w.path)
	w.onChange(w.path)
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
