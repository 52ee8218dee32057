package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings are the user-editable preferences.
type Settings struct {
	SoundEnabled bool   `yaml:"sound_enabled"`
	BallSkin     string `yaml:"ball_skin"`
}

// SettingsFrom seeds the user settings from the runtime configuration.
func SettingsFrom(c Config) Settings {
	return Settings{SoundEnabled: c.Sound, BallSkin: c.Skin}.normalize()
}

func (s Settings) normalize() Settings {
	s.BallSkin = strings.ToLower(strings.TrimSpace(s.BallSkin))
	if s.BallSkin == "" {
		s.BallSkin = "classic"
	}
	return s
}

// LoadSettings reads path over defaults. A missing file yields defaults
// and no error.
func LoadSettings(path string, defaults Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults.normalize(), nil
	}
	if err != nil {
		return defaults.normalize(), fmt.Errorf("config: read %s: %w", path, err)
	}

	s := defaults
	if err := yaml.Unmarshal(data, &s); err != nil {
		return defaults.normalize(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return s.normalize(), nil
}

// SaveSettings writes s to path, creating its directory.
func SaveSettings(path string, s Settings) error {
	data, err := yaml.Marshal(s.normalize())
	if err != nil {
		return fmt.Errorf("config: marshal settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
