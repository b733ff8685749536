// Package config provides XDG Base Directory specification compliance utilities.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "loupe"

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	StateHome  string
	RuntimeDir string
}

// GetXDGDirs returns the XDG Base Directory paths for loupe.
// It follows the XDG Base Directory specification:
// - $XDG_CONFIG_HOME/loupe (default: ~/.config/loupe)
// - $XDG_STATE_HOME/loupe (default: ~/.local/state/loupe)
// - $XDG_RUNTIME_DIR/loupe (fallback: /tmp/loupe-$UID)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			StateHome:  devDir,
			RuntimeDir: devDir,
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}
	configHome = filepath.Join(configHome, appName)

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(homeDir, ".local", "state")
	}
	stateHome = filepath.Join(stateHome, appName)

	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d", appName, os.Getuid()))
	} else {
		runtimeDir = filepath.Join(runtimeDir, appName)
	}

	return &XDGDirs{
		ConfigHome: configHome,
		StateHome:  stateHome,
		RuntimeDir: runtimeDir,
	}, nil
}

// GetConfigDir returns the configuration directory for loupe.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path of the default configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetRuntimeDir returns the runtime directory holding sockets and the pidfile.
func GetRuntimeDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.RuntimeDir, nil
}

// ControlSocketPath resolves the control socket path, preferring the
// configured value over the runtime-dir default.
func (c *Config) ControlSocketPath() (string, error) {
	if c.Sockets.Control != "" {
		return c.Sockets.Control, nil
	}
	runtimeDir, err := GetRuntimeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, "control.sock"), nil
}

// MagnifierSocketPath resolves the compositor magnifier engine socket path.
func (c *Config) MagnifierSocketPath() (string, error) {
	if c.Sockets.Magnifier != "" {
		return c.Sockets.Magnifier, nil
	}
	runtimeDir, err := GetRuntimeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, "magnifier.sock"), nil
}

// CaretBridgeSocketPath resolves the screen-reader caret bridge socket path.
func (c *Config) CaretBridgeSocketPath() (string, error) {
	if c.Sockets.CaretBridge != "" {
		return c.Sockets.CaretBridge, nil
	}
	runtimeDir, err := GetRuntimeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, "caret.sock"), nil
}

// PidFilePath returns the single-instance lock file path.
func PidFilePath() (string, error) {
	runtimeDir, err := GetRuntimeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, "loupe.pid"), nil
}

// EnsureDirectories creates the config, state and runtime directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Runtime dir carries sockets, keep it private to the user.
	if err := os.MkdirAll(dirs.RuntimeDir, 0700); err != nil {
		return fmt.Errorf("failed to create runtime directory %s: %w", dirs.RuntimeDir, err)
	}

	return nil
}
