package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/romdo/go-debounce"

	"reel.dev/internal/logger"
)

const (
	reloadDebounceWait    = 300 * time.Millisecond
	reloadDebounceMaxWait = 2 * time.Second
)

// Reloader re-reads content
type Reloader interface {
	Reload() error
}

// ContentWatcher reloads content when the content file changes on disk.
// It watches the parent directory so editors that save by rename are seen.
type ContentWatcher struct {
	path     string
	reloader Reloader
	log      logger.Logger

	Wait    time.Duration
	MaxWait time.Duration

	done chan struct{}
}

// NewContentWatcher creates a watcher for the file at path
func NewContentWatcher(path string, reloader Reloader, log logger.Logger) *ContentWatcher {
	return &ContentWatcher{
		path:     filepath.Clean(path),
		reloader: reloader,
		log:      log.With("component", "watcher"),
		Wait:     reloadDebounceWait,
		MaxWait:  reloadDebounceMaxWait,
		done:     make(chan struct{}),
	}
}

// Start begins watching. Events are handled in a goroutine until ctx is done.
func (w *ContentWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	reload, cancel := debounce.NewWithMaxWait(w.Wait, w.MaxWait, func() {
		if err := w.reloader.Reload(); err != nil {
			w.log.Error("reload failed, keeping previous content", "path", w.path, "error", err)
		}
	})

	w.log.Info("watching content", "path", w.path)
	go func() {
		defer close(w.done)
		defer watcher.Close()
		defer cancel()
		w.loop(ctx, watcher, reload)
	}()
	return nil
}

// Done is closed once the watcher has stopped
func (w *ContentWatcher) Done() <-chan struct{} {
	return w.done
}

func (w *ContentWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher, reload func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.log.Debug("content changed", "op", event.Op.String())
				reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}
