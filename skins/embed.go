package skins

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Names lists the selectable skins in menu order.
var Names = []string{"classic", "gold", "neon", "fire"}

const Default = "classic"

var ErrUnknownSkin = errors.New("skins: unknown skin")

// Known reports whether name is a selectable skin.
func Known(name string) bool {
	return slices.Contains(Names, cleanName(name))
}

// Load returns the script for name. A file <name>.tengo in dir overrides
// the built-in one.
func Load(dir, name string) ([]byte, error) {
	clean := cleanName(name)
	if !slices.Contains(Names, clean) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSkin, name)
	}
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, clean+".tengo")); err == nil {
			return data, nil
		}
	}
	return scriptsFS.ReadFile("scripts/" + clean + ".tengo")
}

// NameOf maps a script path back to its skin name.
func NameOf(path string) string {
	base := filepath.Base(filepath.ToSlash(path))
	return cleanName(strings.TrimSuffix(base, filepath.Ext(base)))
}

func cleanName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
