// Package fs provides file-based storage for screenplays.
package fs

import (
	"os"
	"path/filepath"
)

const appName = "fountain"

// DefaultSaveDir returns the directory screenplays are saved to when none is
// configured: the current working directory, or the home directory if the
// working directory cannot be determined.
func DefaultSaveDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return os.TempDir()
}

// DefaultConfigDir returns the configuration directory for fountain.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/fountain,
// or system temp directory if home is unavailable.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".config", appName)
}
