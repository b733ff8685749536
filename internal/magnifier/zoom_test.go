package magnifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoom_StepChangesByExactlyOneStep(t *testing.T) {
	z := NewZoom(1.5, 10.0, 0.5, 2.0)

	assert.Equal(t, 2.5, z.Step(ZoomIn))
	assert.Equal(t, 3.0, z.Step(ZoomIn))
	assert.Equal(t, 2.5, z.Step(ZoomOut))
	assert.Equal(t, 2.5, z.Level())
}

func TestZoom_SaturatesAtMax(t *testing.T) {
	z := NewZoom(1.5, 10.0, 0.5, 2.0)

	for i := 0; i < 50; i++ {
		z.Step(ZoomIn)
	}
	assert.Equal(t, 10.0, z.Level())

	// One more step stays pinned.
	assert.Equal(t, 10.0, z.Step(ZoomIn))
}

func TestZoom_SaturatesAtMin(t *testing.T) {
	z := NewZoom(1.5, 10.0, 0.5, 2.0)

	for i := 0; i < 50; i++ {
		z.Step(ZoomOut)
	}
	assert.Equal(t, 1.5, z.Level())
	assert.Equal(t, 1.5, z.Step(ZoomOut))
}

func TestZoom_InitialClampedToLimits(t *testing.T) {
	assert.Equal(t, 1.5, NewZoom(1.5, 10.0, 0.5, 0.3).Level())
	assert.Equal(t, 10.0, NewZoom(1.5, 10.0, 0.5, 42.0).Level())
}
