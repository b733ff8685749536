// Package config provides default configuration values for loupe.
package config

import (
	"time"
)

// Default configuration constants
const (
	// Zoom defaults. Keep the step a multiple of 0.5 to avoid floating
	// point drift when stepping repeatedly.
	defaultZoomMin     = 1.5
	defaultZoomMax     = 10.0
	defaultZoomStep    = 0.5
	defaultZoomInitial = 2.0

	// Tracking defaults. The tick interval is clamped to [MinTickInterval,
	// MaxTickInterval]: faster means smoother pointer follow but more
	// wakeups per second.
	defaultTickInterval = 25 * time.Millisecond
	defaultBorderMargin = 50 // px

	// MinTickInterval is the fastest allowed polling rate.
	MinTickInterval = 10 * time.Millisecond
	// MaxTickInterval is the slowest allowed polling rate.
	MaxTickInterval = 50 * time.Millisecond
)

// DefaultConfig returns the default configuration values for loupe.
func DefaultConfig() *Config {
	return &Config{
		Zoom: ZoomConfig{
			Min:     defaultZoomMin,
			Max:     defaultZoomMax,
			Step:    defaultZoomStep,
			Initial: defaultZoomInitial,
		},
		Tracking: TrackingConfig{
			TickInterval: defaultTickInterval,
			BorderMargin: defaultBorderMargin,
			Mode:         FollowModeCenter,
		},
		Sockets: SocketsConfig{
			// Empty paths resolve under the runtime directory at startup.
			Control:     "",
			Magnifier:   "",
			CaretBridge: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
