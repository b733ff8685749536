// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

// normalizeConfig clamps recoverable out-of-range values back into their
// working ranges instead of rejecting the whole file.
func normalizeConfig(config *Config) {
	defaults := DefaultConfig()

	if config.Zoom.Min <= 1.0 {
		config.Zoom.Min = defaults.Zoom.Min
	}
	if config.Zoom.Max < config.Zoom.Min {
		config.Zoom.Max = defaults.Zoom.Max
	}
	if config.Zoom.Step <= 0 {
		config.Zoom.Step = defaults.Zoom.Step
	}
	if config.Zoom.Initial < config.Zoom.Min {
		config.Zoom.Initial = config.Zoom.Min
	}
	if config.Zoom.Initial > config.Zoom.Max {
		config.Zoom.Initial = config.Zoom.Max
	}

	if config.Tracking.TickInterval < MinTickInterval {
		config.Tracking.TickInterval = MinTickInterval
	}
	if config.Tracking.TickInterval > MaxTickInterval {
		config.Tracking.TickInterval = MaxTickInterval
	}
	if config.Tracking.BorderMargin < 0 {
		config.Tracking.BorderMargin = defaults.Tracking.BorderMargin
	}

	config.Tracking.Mode = FollowMode(strings.ToLower(string(config.Tracking.Mode)))
	if config.Tracking.Mode == "" {
		config.Tracking.Mode = defaults.Tracking.Mode
	}
}

// validateConfig performs validation of configuration values that cannot be
// normalized away.
func validateConfig(config *Config) error {
	var validationErrors []string

	switch config.Tracking.Mode {
	case FollowModeCenter, FollowModeBorder:
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("tracking.mode must be one of: center, border (got: %s)", config.Tracking.Mode))
	}

	switch config.Logging.Format {
	case "", "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
