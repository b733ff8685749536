// Package magnifier implements the viewport tracking core: geometry,
// zoom stepping, border dead-zone follow, focus arbitration and the
// polling session driver. It is compositor-agnostic; all OS interaction
// goes through the interfaces in internal/application/port.
package magnifier

import (
	"github.com/bnema/loupe/internal/application/port"
)

// Viewport is the source rectangle the magnification engine scales to fill
// the screen. Width and Height stay real-valued; only the origin is
// truncated to device pixels.
type Viewport struct {
	Left   int
	Top    int
	Width  float64
	Height float64
}

// ComputeViewport derives the viewport centered on center at the given zoom,
// clamped so the visible area stays fully on screen.
func ComputeViewport(center port.Point, zoom float64, bounds port.Bounds) Viewport {
	visibleWidth := float64(bounds.Width) / zoom
	visibleHeight := float64(bounds.Height) / zoom

	// Truncate toward zero first, clamp after: a negative unclamped origin
	// still lands on 0.
	left := int(float64(center.X) - visibleWidth/2)
	top := int(float64(center.Y) - visibleHeight/2)

	maxLeft := int(float64(bounds.Width) - visibleWidth)
	maxTop := int(float64(bounds.Height) - visibleHeight)

	// zoom < 1 would make the visible area larger than the screen and
	// invert the clamp range. Unreachable while the zoom floor stays above
	// 1, but pin to the origin rather than leave it undefined.
	if maxLeft < 0 {
		maxLeft = 0
	}
	if maxTop < 0 {
		maxTop = 0
	}

	return Viewport{
		Left:   clampInt(left, 0, maxLeft),
		Top:    clampInt(top, 0, maxTop),
		Width:  visibleWidth,
		Height: visibleHeight,
	}
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
