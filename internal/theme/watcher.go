package theme

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a themes directory and reloads changed theme files into
// the registry, so chrome edits show up without restarting the host.
type Watcher struct {
	watcher  *fsnotify.Watcher
	registry *Registry
	dir      string
	logger   *slog.Logger
	onReload func(name string)

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewWatcher creates a watcher for the given themes directory.
func NewWatcher(registry *Registry, dir string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:  fw,
		registry: registry,
		dir:      dir,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// SetReloadCallback registers a callback invoked with the preset name
// after each successful reload. The host typically triggers a redraw.
func (w *Watcher) SetReloadCallback(fn func(name string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Start begins watching. Watching the directory rather than individual
// files survives editors that replace files on save.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}

	go w.watch()
	return nil
}

func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.registry.LoadFile(event.Name); err != nil {
				w.logger.Warn("theme reload failed", "file", event.Name, "error", err)
				continue
			}
			name := strings.TrimSuffix(filepath.Base(event.Name), ".yaml")
			w.logger.Info("theme reloaded", "name", name)

			w.mu.Lock()
			fn := w.onReload
			w.mu.Unlock()
			if fn != nil {
				fn(name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return nil
	}
	w.running = false
	close(w.done)
	return w.watcher.Close()
}
