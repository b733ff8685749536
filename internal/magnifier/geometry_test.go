package magnifier

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/loupe/internal/application/port"
)

func TestComputeViewport_ScreenCenter(t *testing.T) {
	bounds := port.Bounds{Width: 1920, Height: 1080}

	vp := ComputeViewport(port.Point{X: 960, Y: 540}, 2.0, bounds)

	assert.Equal(t, 960.0, vp.Width)
	assert.Equal(t, 540.0, vp.Height)
	assert.Equal(t, 480, vp.Left)
	assert.Equal(t, 270, vp.Top)
}

func TestComputeViewport_CornerClamp(t *testing.T) {
	bounds := port.Bounds{Width: 1920, Height: 1080}

	// Unclamped left would be -480; the viewport must stay on screen.
	vp := ComputeViewport(port.Point{X: 0, Y: 0}, 2.0, bounds)

	assert.Equal(t, 0, vp.Left)
	assert.Equal(t, 0, vp.Top)

	// Opposite corner pins to the maximum origin.
	vp = ComputeViewport(port.Point{X: 1920, Y: 1080}, 2.0, bounds)

	assert.Equal(t, 960, vp.Left)
	assert.Equal(t, 540, vp.Top)
}

func TestComputeViewport_AlwaysOnScreen(t *testing.T) {
	bounds := port.Bounds{Width: 1920, Height: 1080}
	zooms := []float64{1.5, 2.0, 3.5, 10.0}
	centers := []port.Point{
		{X: -200, Y: -200},
		{X: 0, Y: 0},
		{X: 17, Y: 1060},
		{X: 960, Y: 540},
		{X: 1919, Y: 1079},
		{X: 5000, Y: 5000},
	}

	for _, zoom := range zooms {
		for _, center := range centers {
			t.Run(fmt.Sprintf("zoom=%.1f/center=%d,%d", zoom, center.X, center.Y), func(t *testing.T) {
				vp := ComputeViewport(center, zoom, bounds)

				assert.GreaterOrEqual(t, vp.Left, 0)
				assert.GreaterOrEqual(t, vp.Top, 0)
				assert.LessOrEqual(t, float64(vp.Left)+vp.Width, float64(bounds.Width))
				assert.LessOrEqual(t, float64(vp.Top)+vp.Height, float64(bounds.Height))
			})
		}
	}
}

func TestComputeViewport_CenteringAccuracy(t *testing.T) {
	bounds := port.Bounds{Width: 1920, Height: 1080}
	zoom := 2.0

	// Far enough from every edge that no clamping occurs.
	center := port.Point{X: 700, Y: 500}
	vp := ComputeViewport(center, zoom, bounds)

	// Integer truncation may shift the computed center by at most 1px.
	assert.InDelta(t, float64(center.X), float64(vp.Left)+vp.Width/2, 1.0)
	assert.InDelta(t, float64(center.Y), float64(vp.Top)+vp.Height/2, 1.0)
}

func TestComputeViewport_InvertedClampGuard(t *testing.T) {
	// zoom < 1 makes the visible area larger than the screen, inverting
	// the clamp range. Unreachable through the zoom controller, but the
	// guard must pin the origin instead of producing negative bounds.
	bounds := port.Bounds{Width: 1920, Height: 1080}

	vp := ComputeViewport(port.Point{X: 960, Y: 540}, 0.5, bounds)

	assert.Equal(t, 0, vp.Left)
	assert.Equal(t, 0, vp.Top)
}
