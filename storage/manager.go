package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stretchreminder/logger"
	"stretchreminder/models"
)

// Manager handles settings persistence
type Manager struct {
	path string
}

// NewManager creates a settings manager for the given file path
func NewManager(path string) *Manager {
	return &Manager{
		path: cleanPath(path),
	}
}

// DefaultPath returns config/settings.json next to the running executable
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("config", "settings.json")
	}
	return filepath.Join(filepath.Dir(exe), "config", "settings.json")
}

// Path returns the settings file location
func (m *Manager) Path() string {
	return m.path
}

// LoadSettings loads the settings from disk.
// A missing or unparseable file yields the default settings; keys absent
// from an otherwise valid file are filled with their defaults.
func (m *Manager) LoadSettings() *models.Settings {
	settings, err := m.readSettings()
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("Settings file does not exist, using defaults", "path", m.path)
		} else {
			logger.Warn("Could not load settings, using defaults", "path", m.path, "error", err)
		}
		return models.DefaultSettings()
	}
	return settings
}

// readSettings decodes and normalizes the settings file without falling back
func (m *Manager) readSettings() (*models.Settings, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, err
	}

	var partial models.PartialSettings
	if err := json.Unmarshal(data, &partial); err != nil {
		return nil, fmt.Errorf("settings file is corrupt: %w", err)
	}

	return partial.Normalize(), nil
}

// SaveSettings replaces the settings file with the given record.
// The write goes to a temporary file that is renamed over the target.
func (m *Manager) SaveSettings(settings *models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write settings: %w", err)
	}

	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace settings file: %w", err)
	}

	logger.Info("Settings saved", "path", m.path,
		"interval", settings.ReminderInterval, "timeout", settings.NotificationTimeout)
	return nil
}

// cleanPath cleans and normalizes a file path
func cleanPath(path string) string {
	// Remove surrounding quotes
	path = strings.Trim(path, `"'`)

	// Normalize path separators
	path = filepath.Clean(path)

	return path
}
