package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv unsets the juggler variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDataDir, EnvSound, EnvSkin, EnvDebug} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load("juggler", nil, filepath.Join(t.TempDir(), ".env"), io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Fatalf("expected defaults %+v, got %+v", def, cfg)
	}
	if cfg.Width != 400 || cfg.Height != 750 || !cfg.Sound || cfg.Skin != "classic" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	body := "JUGGLER_SKIN=neon\nJUGGLER_SOUND=false\nJUGGLER_DATA_DIR=/from/dotenv\n"
	if err := os.WriteFile(envFile, []byte(body), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	// a real environment variable beats the .env file
	os.Setenv(EnvDataDir, "/from/env")

	cfg, err := load("juggler", []string{"-skin", " GOLD ", "-width", "320"}, envFile, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DataDir != "/from/env" {
		t.Fatalf("expected env data dir, got %q", cfg.DataDir)
	}
	if cfg.Sound {
		t.Fatalf("expected sound disabled by .env")
	}
	if cfg.Skin != "gold" {
		t.Fatalf("expected flag skin gold, got %q", cfg.Skin)
	}
	if cfg.Width != 320 || cfg.Height != 750 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad_sound_env", map[string]string{EnvSound: "loud"}, nil},
		{"bad_debug_env", map[string]string{EnvDebug: "maybe"}, nil},
		{"unknown_flag", nil, []string{"-volume", "11"}},
		{"bad_width", nil, []string{"-width", "wide"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			if _, err := load("juggler", c.args, filepath.Join(t.TempDir(), ".env"), io.Discard); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", SettingsFile)
	defaults := Settings{SoundEnabled: true, BallSkin: "classic"}

	got, err := LoadSettings(path, defaults)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if got != defaults {
		t.Fatalf("expected defaults, got %+v", got)
	}

	if err := SaveSettings(path, Settings{SoundEnabled: false, BallSkin: "Fire"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = LoadSettings(path, defaults)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := (Settings{SoundEnabled: false, BallSkin: "fire"}); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestLoadSettingsPartialAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	defaults := Settings{SoundEnabled: true, BallSkin: "neon"}

	partial := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(partial, []byte("sound_enabled: false\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadSettings(partial, defaults)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SoundEnabled || got.BallSkin != "neon" {
		t.Fatalf("expected partial override, got %+v", got)
	}

	corrupt := filepath.Join(dir, "corrupt.yaml")
	if err := os.WriteFile(corrupt, []byte("sound_enabled: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = LoadSettings(corrupt, defaults)
	if err == nil {
		t.Fatalf("expected an error for corrupt settings")
	}
	if got != defaults {
		t.Fatalf("corrupt settings should fall back to defaults, got %+v", got)
	}
}

func TestWatcherBatchesMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{".YAML"}, dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, SettingsFile)
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte("sound_enabled: true\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-w.Changed():
	case <-time.After(2 * time.Second):
		t.Fatalf("no change reported for %s", target)
	}

	got := w.Drain()
	if len(got) != 1 || got[0] != target {
		t.Fatalf("expected only %s, got %v", target, got)
	}
	if again := w.Drain(); len(again) != 0 {
		t.Fatalf("drain should empty the batch, got %v", again)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
