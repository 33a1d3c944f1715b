package spectra

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/quantalab/tauviz/errors"
	"github.com/quantalab/tauviz/logger"
)

// Watcher watches input documents for changes and triggers re-render
// callbacks. Editors and upstream calculations often write a file several
// times in quick succession, so events are debounced.
type Watcher struct {
	paths          []string
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ChangeCallback is called after a watched document changes and the
// debounce period has elapsed.
type ChangeCallback func() error

// NewWatcher creates a watcher over one or more input documents.
func NewWatcher(paths ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	for _, path := range paths {
		if err := fsWatcher.Add(path); err != nil {
			fsWatcher.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", path)
		}
	}

	return &Watcher{
		paths:          paths,
		watcher:        fsWatcher,
		callbacks:      make([]ChangeCallback, 0),
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid file changes
	}, nil
}

// OnChange registers a callback to be called when a watched document changes.
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for document changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only re-render on Write or Create events
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("[watch] Document changed",
					"file", event.Name,
					"op", event.Op.String())
				w.scheduleCallbacks()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("[watch] Watcher error", "error", err)
		}
	}
}

// scheduleCallbacks debounces rapid file changes before firing callbacks
func (w *Watcher) scheduleCallbacks() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.fireCallbacks)
}

// fireCallbacks calls all registered callbacks
func (w *Watcher) fireCallbacks() {
	w.mu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(); err != nil {
			// Keep watching even if one render fails; the document may be
			// mid-write and the next event will retry
			logger.Warnw("[watch] Re-render failed", "error", err)
		}
	}
}

// Stop stops watching for document changes.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
