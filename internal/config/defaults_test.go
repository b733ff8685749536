package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1.5, cfg.Zoom.Min)
	assert.Equal(t, 10.0, cfg.Zoom.Max)
	assert.Equal(t, 0.5, cfg.Zoom.Step)
	assert.Equal(t, 2.0, cfg.Zoom.Initial)

	assert.Equal(t, 25*time.Millisecond, cfg.Tracking.TickInterval)
	assert.Equal(t, 50, cfg.Tracking.BorderMargin)
	assert.Equal(t, FollowModeCenter, cfg.Tracking.Mode)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	normalizeConfig(cfg)
	assert.NoError(t, validateConfig(cfg))
}
