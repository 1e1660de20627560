// Package prefs persists the user's theme preference between runs.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Theme is the light/dark display preference.
type Theme string

// Themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

// Valid reports whether t is one of the two themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Store reads and writes the preference file.
type Store struct {
	path string
}

type document struct {
	Theme Theme `yaml:"theme,omitempty"`
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath is prefs.yaml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}

	return filepath.Join(dir, "summarize", "prefs.yaml"), nil
}

// Path returns the file the store uses.
func (s *Store) Path() string {
	return s.path
}

// Theme returns the saved theme. ok is false when nothing valid has been saved yet; a
// missing file is not an error.
func (s *Store) Theme() (theme Theme, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read preferences: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", false, fmt.Errorf("parse preferences %s: %w", s.path, err)
	}

	if !doc.Theme.Valid() {
		return "", false, nil
	}

	return doc.Theme, true, nil
}

// ResolveTheme returns the saved theme, or the hint when nothing is saved:
// dark when prefersDark is true, light otherwise.
func (s *Store) ResolveTheme(prefersDark bool) (Theme, error) {
	theme, ok, err := s.Theme()
	if err != nil || !ok {
		if prefersDark {
			return ThemeDark, err
		}
		return ThemeLight, err
	}

	return theme, nil
}

// SetTheme saves theme, creating the parent directory when needed.
func (s *Store) SetTheme(theme Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("invalid theme: %q", theme)
	}

	data, err := yaml.Marshal(document{Theme: theme})
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}

	return nil
}
