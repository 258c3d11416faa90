// Package fswatch reports changes to a single file, grouping bursts of writes.
package fswatch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
)

// Watcher watches one file through its parent directory, so a save that
// renames a temporary file over the target is still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	target  string
	delay   time.Duration
	logger  interfaces.Logger
}

// NewWatcher starts watching path. Changes closer together than delay are reported once.
func NewWatcher(path string, delay time.Duration, logger interfaces.Logger) (*Watcher, error) {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		watcher: fw,
		target:  abs,
		delay:   delay,
		logger:  logger,
	}, nil
}

// Run calls onChange after each settled burst of changes to the file.
// It blocks until ctx is done or the watcher is closed; onChange runs on the calling goroutine.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
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

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("recipe file event", interfaces.F("op", event.Op.String()), interfaces.F("path", event.Name))
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", interfaces.F("error", err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
