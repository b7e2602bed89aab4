// Package prefs persists Quill user preferences.
//
// Preferences are cosmetic (currently just the theme name), so every
// load failure degrades to defaults instead of blocking startup: a
// missing file, unreadable contents, and malformed TOML all yield the
// same result as a fresh install.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for Quill.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/quill/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences a fresh install starts with.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from path. It never fails: anything that
// prevents reading a valid file yields Default instead.
func Load(path string) Prefs {
	out := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return out
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return out
	}

	var stored Prefs
	if err := toml.Unmarshal(raw, &stored); err != nil {
		return out
	}
	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		out.Theme = theme
	}
	return out
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	raw, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, raw, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
