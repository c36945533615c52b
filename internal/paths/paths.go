// Package paths resolves the configuration and state directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user directories.
const AppName = "gadgetstore"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "GADGETSTORE_CONFIG_DIR"
	EnvStateDir  = "GADGETSTORE_STATE_DIR"
)

// LogFileName is the log file created inside the state directory.
const LogFileName = "gadgetstore.log"

// Lookups swapped out by tests.
var (
	userHomeDir   = os.UserHomeDir
	userConfigDir = os.UserConfigDir
)

// DefaultConfigDir returns the directory holding config.yaml. On Linux it
// honors XDG_CONFIG_HOME and falls back to ~/.config.
func DefaultConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// DefaultStateDir returns the directory holding the log file. On Linux it
// honors XDG_STATE_HOME and falls back to ~/.local/state. Elsewhere logs sit
// beside the config.
func DefaultStateDir() (string, error) {
	return appDir("XDG_STATE_HOME", ".local", "state")
}

// appDir joins AppName onto the XDG base named by xdgVar, or onto the home
// directory plus fallback when the variable is unset. Non-Linux systems use
// the OS user config directory.
func appDir(xdgVar string, fallback ...string) (string, error) {
	if runtime.GOOS != "linux" {
		base, err := userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, AppName), nil
	}
	if base := os.Getenv(xdgVar); base != "" {
		return filepath.Join(base, AppName), nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, AppName)...), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > GADGETSTORE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveLogFile returns the log file path following the precedence chain:
// flag > config.yaml value > GADGETSTORE_STATE_DIR env > DefaultStateDir().
func ResolveLogFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvStateDir); env != "" {
		return filepath.Abs(filepath.Join(env, LogFileName))
	}
	dir, err := DefaultStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}
