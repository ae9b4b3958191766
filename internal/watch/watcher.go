// Package watch re-assembles a site declaration whenever its file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// DefaultDebounce coalesces the burst of events editors emit for one save.
const DefaultDebounce = 500 * time.Millisecond

// Handler receives every load result: a fresh Site or the reason there is none.
type Handler func(*site.Site, error)

// LoadFunc loads and assembles the declaration at path.
type LoadFunc func(path string) (*site.Site, error)

// Watcher monitors one declaration file.
type Watcher struct {
	path     string
	handle   Handler
	load     LoadFunc
	debounce time.Duration
	logger   *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

func WithDebounce(d time.Duration) Option { return func(w *Watcher) { w.debounce = d } }

func WithLoader(load LoadFunc) Option { return func(w *Watcher) { w.load = load } }

func WithLogger(logger *slog.Logger) Option { return func(w *Watcher) { w.logger = logger } }

// New creates a watcher for the declaration at path. Nothing is watched until Run.
func New(path string, handle Handler, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	w := &Watcher{
		path:     absPath,
		handle:   handle,
		load:     config.Load,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run loads the declaration once, then again after every debounced change,
// until ctx is cancelled. The handler is always called from Run's goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	// The directory survives editors that replace the file on save.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}
	w.logger.Info("Watching site configuration", logfields.Path(w.path))

	w.reload()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopped watching site configuration", logfields.Path(w.path))
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Config file change detected", logfields.Path(event.Name), "op", event.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Config watcher error", logfields.Error(err))
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	if event.Has(fsnotify.Remove) {
		w.logger.Warn("Config file removed", logfields.Path(event.Name))
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	s, err := w.load(w.path)
	w.handle(s, err)
}
