package magnifier

import (
	"github.com/bnema/loupe/internal/application/port"
)

// FollowBorder implements border-follow mode: instead of re-centering on the
// pointer, the anchor only shifts by however far the pointer sits outside the
// viewport's inner margin. A pointer inside the dead zone leaves the anchor
// untouched.
//
// The viewport passed in is the one committed on the previous tick, so the
// dead zone lags the anchor by one tick. That lag is what makes the follow
// feel like a camera instead of a rigid lock.
func FollowBorder(anchor port.Point, viewport Viewport, pointer port.Point, margin int) port.Point {
	minX := viewport.Left + margin
	maxX := viewport.Left + int(viewport.Width) - margin
	minY := viewport.Top + margin
	maxY := viewport.Top + int(viewport.Height) - margin

	// A margin wider than half the viewport inverts the inner bounds
	// (margin too large for the current zoom). Collapse the dead zone to
	// the viewport center instead of crashing on the inversion.
	if maxX < minX {
		mid := viewport.Left + int(viewport.Width)/2
		minX, maxX = mid, mid
	}
	if maxY < minY {
		mid := viewport.Top + int(viewport.Height)/2
		minY, maxY = mid, mid
	}

	dx := 0
	if pointer.X < minX {
		dx = pointer.X - minX
	} else if pointer.X > maxX {
		dx = pointer.X - maxX
	}

	dy := 0
	if pointer.Y < minY {
		dy = pointer.Y - minY
	} else if pointer.Y > maxY {
		dy = pointer.Y - maxY
	}

	return port.Point{X: anchor.X + dx, Y: anchor.Y + dy}
}
