package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are user preferences persisted between runs.
type Settings struct {
	Fullscreen bool `yaml:"fullscreen"`
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
}

// DefaultSettings returns the settings used when none were saved.
func DefaultSettings() Settings {
	return Settings{Fullscreen: false, Width: 800, Height: 600}
}

// SettingsPath returns ~/.bricks/settings.yaml, or empty if home is unavailable.
func SettingsPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "settings.yaml")
}

// LoadSettings reads settings from path. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("config: parse settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes settings to path, creating its directory.
func SaveSettings(path string, s Settings) error {
	if path == "" {
		return errors.New("config: no settings path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create settings dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write settings %s: %w", path, err)
	}
	return nil
}
