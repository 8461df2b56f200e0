package config

import (
	"os"
	"path/filepath"
)

const appName = "tasbih"

// baseDir resolves an XDG base directory: the env var when set, otherwise the
// given path under the home directory.
func baseDir(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// DefaultDBPath is where the record and daily tallies live.
func DefaultDBPath() string {
	return filepath.Join(baseDir("XDG_DATA_HOME", ".local", "share"), appName, appName+".db")
}

// DefaultConfigPath is the TOML file read on every start.
func DefaultConfigPath() string {
	return filepath.Join(baseDir("XDG_CONFIG_HOME", ".config"), appName, "config.toml")
}

// DefaultLogPath is the log file used while the TUI owns the terminal.
func DefaultLogPath() string {
	return filepath.Join(baseDir("XDG_STATE_HOME", ".local", "state"), appName, appName+".log")
}
