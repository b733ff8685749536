// Package config provides configuration management for loupe with Viper integration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/loupe/internal/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for loupe.
type Config struct {
	Zoom     ZoomConfig     `mapstructure:"zoom" yaml:"zoom" json:"zoom"`
	Tracking TrackingConfig `mapstructure:"tracking" yaml:"tracking" json:"tracking"`
	Sockets  SocketsConfig  `mapstructure:"sockets" yaml:"sockets" json:"sockets"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// ZoomConfig holds the magnification factor limits and step size.
type ZoomConfig struct {
	// Min must stay above 1.0: a 1.0 transform does not disable the
	// magnifier engine, it just renders an unmagnified viewport.
	Min     float64 `mapstructure:"min" yaml:"min" json:"min"`
	Max     float64 `mapstructure:"max" yaml:"max" json:"max"`
	Step    float64 `mapstructure:"step" yaml:"step" json:"step"`
	Initial float64 `mapstructure:"initial" yaml:"initial" json:"initial"`
}

// FollowMode selects how the viewport follows the pointer.
type FollowMode string

const (
	FollowModeCenter FollowMode = "center"
	FollowModeBorder FollowMode = "border"
)

// TrackingConfig holds the polling loop and follow behavior settings.
type TrackingConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval" yaml:"tick_interval" json:"tick_interval"`
	BorderMargin int           `mapstructure:"border_margin" yaml:"border_margin" json:"border_margin"`
	Mode         FollowMode    `mapstructure:"mode" yaml:"mode" json:"mode"`
}

// SocketsConfig holds the unix socket paths loupe talks over.
// Empty values resolve to defaults under the runtime directory.
type SocketsConfig struct {
	Control     string `mapstructure:"control" yaml:"control" json:"control"`
	Magnifier   string `mapstructure:"magnifier" yaml:"magnifier" json:"magnifier"`
	CaretBridge string `mapstructure:"caret_bridge" yaml:"caret_bridge" json:"caret_bridge"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper - supports yaml, json, toml automatically
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Set up environment variable support
	v.SetEnvPrefix("LOUPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"zoom.min":               "ZOOM_MIN",
		"zoom.max":               "ZOOM_MAX",
		"zoom.step":              "ZOOM_STEP",
		"zoom.initial":           "ZOOM_INITIAL",
		"tracking.tick_interval": "TRACKING_TICK_INTERVAL",
		"tracking.border_margin": "TRACKING_BORDER_MARGIN",
		"tracking.mode":          "TRACKING_MODE",
		"sockets.control":        "SOCKETS_CONTROL",
		"sockets.magnifier":      "SOCKETS_MAGNIFIER",
		"sockets.caret_bridge":   "SOCKETS_CARET_BRIDGE",
		"logging.level":          "LOG_LEVEL",
		"logging.format":         "LOG_FORMAT",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "LOUPE_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	// Read config file if it exists
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create default one
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	m.config = config
	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback invoked after each successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(config)
	}
}

// reload re-reads the config file. Caller must hold m.mu for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("zoom.min", defaults.Zoom.Min)
	m.viper.SetDefault("zoom.max", defaults.Zoom.Max)
	m.viper.SetDefault("zoom.step", defaults.Zoom.Step)
	m.viper.SetDefault("zoom.initial", defaults.Zoom.Initial)

	m.viper.SetDefault("tracking.tick_interval", defaults.Tracking.TickInterval)
	m.viper.SetDefault("tracking.border_margin", defaults.Tracking.BorderMargin)
	m.viper.SetDefault("tracking.mode", string(defaults.Tracking.Mode))

	m.viper.SetDefault("sockets.control", defaults.Sockets.Control)
	m.viper.SetDefault("sockets.magnifier", defaults.Sockets.Magnifier)
	m.viper.SetDefault("sockets.caret_bridge", defaults.Sockets.CaretBridge)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaultConfig := DefaultConfig()

	configData, err := json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created default configuration file: %s\n", configFile)
	return nil
}

// ConfigFileUsed returns the path of the configuration file in use, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
