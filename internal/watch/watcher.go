// Package watch re-runs a check whenever the session tree changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const (
	DefaultDebounce = 250 * time.Millisecond
	DefaultResync   = 30 * time.Second
)

// Config holds configuration for the watcher
type Config struct {
	// Paths returns the directories to watch. It is called again after
	// every change so directories created later are picked up.
	Paths    func() []string
	Debounce time.Duration
	// Resync is how often Paths is re-read without any event, so a date
	// change or an unobserved new directory still updates the watch set.
	Resync   time.Duration
	OnChange func() error
}

// Watcher watches a set of directories and calls OnChange once per burst
// of filesystem events.
type Watcher struct {
	fs      *fsnotify.Watcher
	cfg     Config
	watched map[string]bool
}

// New creates a watcher and starts watching the paths that exist now.
func New(cfg Config) (*Watcher, error) {
	if cfg.Paths == nil || cfg.OnChange == nil {
		return nil, errors.New("watch: Paths and OnChange are required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Resync <= 0 {
		cfg.Resync = DefaultResync
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fs:      fsw,
		cfg:     cfg,
		watched: make(map[string]bool),
	}
	w.sync()

	return w, nil
}

// Watched returns the number of directories currently watched.
func (w *Watcher) Watched() int {
	return len(w.watched)
}

// Run processes events until ctx is done. An OnChange error stops the
// watcher and is returned.
func (w *Watcher) Run(ctx context.Context) error {
	var fire <-chan time.Time

	resync := time.NewTicker(w.cfg.Resync)
	defer resync.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			log.Debug().
				Str("path", event.Name).
				Str("op", event.Op.String()).
				Msg("Session tree changed")
			fire = time.After(w.cfg.Debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watcher error")

		case <-fire:
			fire = nil
			w.sync()
			if err := w.cfg.OnChange(); err != nil {
				return err
			}

		case <-resync.C:
			if !w.sync() {
				continue
			}
			log.Debug().Int("dirs", len(w.watched)).Msg("Watch set changed")
			if err := w.cfg.OnChange(); err != nil {
				return err
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// sync adds paths that now exist and drops the ones that are gone or no
// longer wanted. It reports whether the watch set changed.
func (w *Watcher) sync() bool {
	changed := false

	wanted := make(map[string]bool)
	for _, path := range w.cfg.Paths() {
		wanted[path] = true
	}

	for path := range w.watched {
		if wanted[path] && isDir(path) {
			continue
		}
		_ = w.fs.Remove(path)
		delete(w.watched, path)
		changed = true
		log.Debug().Str("path", path).Msg("Stopped watching")
	}

	for path := range wanted {
		if w.watched[path] || !isDir(path) {
			continue
		}
		if err := w.fs.Add(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to watch directory")
			continue
		}
		w.watched[path] = true
		changed = true
		log.Debug().Str("path", path).Msg("Watching")
	}

	return changed
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug().Err(err).Str("path", path).Msg("Cannot stat watch path")
		}
		return false
	}
	return info.IsDir()
}
