package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const darkModeKey = "renameit:dark"

// ThemeStore persists the dark mode preference.
type ThemeStore interface {
	// Get returns the stored preference; ok is false when nothing is stored.
	Get() (dark bool, ok bool, err error)
	Set(dark bool) error
}

// fileThemeStore keeps preferences as a flat JSON object of string values.
type fileThemeStore struct {
	path string
}

// readPrefs loads the preferences file.
func readPrefs(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil // Return empty prefs if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read prefs file %s: %w", path, err)
	}

	prefs := map[string]string{}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prefs file %s: %w", path, err)
	}
	return prefs, nil
}

// writePrefs saves the preferences file, creating its directory if needed.
func writePrefs(path string, prefs map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create prefs directory for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write prefs file %s: %w", path, err)
	}
	return nil
}

func (s fileThemeStore) Get() (bool, bool, error) {
	prefs, err := readPrefs(s.path)
	if err != nil {
		return false, false, err
	}
	switch prefs[darkModeKey] {
	case "1":
		return true, true, nil
	case "0":
		return false, true, nil
	}
	return false, false, nil
}

func (s fileThemeStore) Set(dark bool) error {
	prefs, err := readPrefs(s.path)
	if err != nil {
		// A corrupt file is replaced rather than blocking the new value
		prefs = map[string]string{}
	}
	prefs[darkModeKey] = "0"
	if dark {
		prefs[darkModeKey] = "1"
	}
	return writePrefs(s.path, prefs)
}

// resolveDarkMode prefers the stored value and otherwise asks the platform.
// Store errors only degrade to the fallback; they are never returned.
func resolveDarkMode(store ThemeStore, fallback func() bool, logger zerolog.Logger) bool {
	dark, ok, err := store.Get()
	if err != nil {
		logger.Debug().Err(err).Msg("Theme preference unavailable, using system default")
		return fallback()
	}
	if !ok {
		return fallback()
	}
	return dark
}

// systemPrefersDark reads the terminal's COLORFGBG hint ("fg;bg").
func systemPrefersDark() bool {
	return colorfgbgIsDark(os.Getenv("COLORFGBG"))
}

func colorfgbgIsDark(v string) bool {
	if v == "" {
		return false
	}
	fields := strings.Split(v, ";")
	bg, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return false
	}
	// Standard palette: 0-6 and 8 are dark backgrounds, 7 and 9-15 light.
	return (bg >= 0 && bg <= 6) || bg == 8
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// ThemeCmd shows or changes the dark mode preference.
type ThemeCmd struct {
	Dark   bool `kong:"name='dark',xor='mode',help='Switch to dark mode.'"`
	Light  bool `kong:"name='light',xor='mode',help='Switch to light mode.'"`
	Toggle bool `kong:"name='toggle',xor='mode',help='Flip the current mode.'"`
}

func (c *ThemeCmd) Run(a *app) error {
	store := a.themeStore()
	current := resolveDarkMode(store, a.systemDark, a.logger)

	next := current
	switch {
	case c.Dark:
		next = true
	case c.Light:
		next = false
	case c.Toggle:
		next = !current
	default:
		_, err := fmt.Fprintln(a.out, themeName(current))
		return err
	}

	if err := store.Set(next); err != nil {
		// Best effort: the choice still applies to this run
		a.logger.Warn().Err(err).Str("path", a.cli.PrefsFile).Msg("Failed to save theme preference")
	} else {
		a.logger.Debug().Str("theme", themeName(next)).Msg("Saved theme preference")
	}
	_, err := fmt.Fprintln(a.out, themeName(next))
	return err
}
