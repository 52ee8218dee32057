package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDataDir = "JUGGLER_DATA_DIR"
	EnvSound   = "JUGGLER_SOUND"
	EnvSkin    = "JUGGLER_SKIN"
	EnvDebug   = "JUGGLER_DEBUG"

	SettingsFile = "settings.yaml"
)

// Config is the runtime configuration of a front-end.
type Config struct {
	DataDir string
	Sound   bool
	Skin    string
	Debug   bool
	Width   int
	Height  int
}

// Default returns the built-in configuration.
func Default() Config {
	dir := ".juggler"
	if base, err := os.UserConfigDir(); err == nil && base != "" {
		dir = filepath.Join(base, "juggler")
	}
	return Config{
		DataDir: dir,
		Sound:   true,
		Skin:    "classic",
		Width:   400,
		Height:  750,
	}
}

// SettingsPath is where the user settings live.
func (c Config) SettingsPath() string {
	return filepath.Join(c.DataDir, SettingsFile)
}

// Load merges defaults, a .env file in the working directory, environment
// variables and the command-line flags in args, later sources winning.
func Load(name string, args []string) (Config, error) {
	return load(name, args, ".env", io.Discard)
}

func load(name string, args []string, envFile string, usage io.Writer) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(usage)
	fset.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory for scores and settings")
	fset.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound effects")
	fset.StringVar(&cfg.Skin, "skin", cfg.Skin, "ball skin (classic, gold, neon, fire)")
	fset.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log state transitions and ticks")
	fset.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	fset.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	cfg.Skin = strings.ToLower(strings.TrimSpace(cfg.Skin))
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvSkin); ok && v != "" {
		c.Skin = v
	}
	if v, ok := os.LookupEnv(EnvSound); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSound, v, err)
		}
		c.Sound = b
	}
	if v, ok := os.LookupEnv(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvDebug, v, err)
		}
		c.Debug = b
	}
	return nil
}
