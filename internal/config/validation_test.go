package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeConfig_ClampsTickInterval(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Tracking.TickInterval = time.Millisecond
	normalizeConfig(cfg)
	assert.Equal(t, MinTickInterval, cfg.Tracking.TickInterval)

	cfg.Tracking.TickInterval = time.Second
	normalizeConfig(cfg)
	assert.Equal(t, MaxTickInterval, cfg.Tracking.TickInterval)
}

func TestNormalizeConfig_RepairsZoomRange(t *testing.T) {
	cfg := DefaultConfig()

	// A zoom floor at or below 1.0 would leave the engine stuck rendering
	// an unmagnified transform instead of disabling.
	cfg.Zoom.Min = 1.0
	cfg.Zoom.Max = 0.5
	cfg.Zoom.Step = -1
	cfg.Zoom.Initial = 99
	normalizeConfig(cfg)

	assert.Equal(t, 1.5, cfg.Zoom.Min)
	assert.Equal(t, 10.0, cfg.Zoom.Max)
	assert.Equal(t, 0.5, cfg.Zoom.Step)
	assert.Equal(t, 10.0, cfg.Zoom.Initial)
}

func TestNormalizeConfig_ModeCaseAndDefault(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Tracking.Mode = "BORDER"
	normalizeConfig(cfg)
	assert.Equal(t, FollowModeBorder, cfg.Tracking.Mode)

	cfg.Tracking.Mode = ""
	normalizeConfig(cfg)
	assert.Equal(t, FollowModeCenter, cfg.Tracking.Mode)
}

func TestValidateConfig_RejectsUnknownMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tracking.Mode = "chase"

	err := validateConfig(cfg)
	assert.ErrorContains(t, err, "tracking.mode")
}

func TestValidateConfig_RejectsUnknownLogFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	assert.ErrorContains(t, err, "logging.format")
}
