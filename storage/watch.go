package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"stretchreminder/logger"
	"stretchreminder/models"
)

// Watch calls onChange with freshly loaded settings every time the settings
// file is written, created or replaced. Changes that leave the file empty,
// missing or unparseable are skipped. It blocks until ctx is done.
//
// The parent directory is watched rather than the file itself because
// SaveSettings replaces the file through a rename.
func (m *Manager) Watch(ctx context.Context, onChange func(*models.Settings)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logger.Debug("Watching settings file", "path", m.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != m.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Editors that truncate before writing produce an event for an
			// empty file; wait for the write that follows.
			settings, err := m.readSettings()
			if err != nil {
				logger.Debug("Ignoring unreadable settings change", "path", m.path, "error", err)
				continue
			}
			logger.Debug("Settings file changed", "path", m.path, "op", event.Op.String())
			onChange(settings)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Settings watcher error", "path", m.path, "error", err)
		}
	}
}
