package magnifier

import (
	"github.com/bnema/loupe/internal/application/port"
)

// Mode selects how pointer movement drives the viewport.
type Mode string

const (
	// ModeCenter re-centers the viewport on every pointer position.
	ModeCenter Mode = "center"
	// ModeBorder only scrolls when the pointer nears the viewport edge.
	ModeBorder Mode = "border"
)

// Tracker arbitrates between the two position sources for the lifetime of
// one tracking session. The accessibility caret always preempts the pointer:
// caret movement is deliberate keyboard navigation and must never be masked
// by incidental pointer drift.
type Tracker struct {
	pointer port.PointerDevice
	margin  int
	mode    Mode

	lastCaret   port.Point
	lastPointer port.Point
	anchor      port.Point
	viewport    Viewport
	hasViewport bool
}

// NewTracker creates a tracker seeded with the current caret and pointer
// readings, so the first tick sees no deltas and does nothing.
func NewTracker(pointer port.PointerDevice, mode Mode, margin int, caret, pointerPos port.Point) *Tracker {
	return &Tracker{
		pointer:     pointer,
		margin:      margin,
		mode:        mode,
		lastCaret:   caret,
		lastPointer: pointerPos,
		anchor:      pointerPos,
	}
}

// Mode returns the current follow mode.
func (t *Tracker) Mode() Mode {
	return t.mode
}

// SetMode switches between center and border follow.
func (t *Tracker) SetMode(m Mode) {
	t.mode = m
}

// Anchor returns the last committed center point.
func (t *Tracker) Anchor() port.Point {
	return t.anchor
}

// ObserveViewport records the viewport committed this tick. Border follow on
// the next tick measures the pointer against it.
func (t *Tracker) ObserveViewport(vp Viewport) {
	t.viewport = vp
	t.hasViewport = true
}

// Tick compares fresh readings against the last-seen ones and returns the
// target center point for this tick. The second return is false when neither
// source moved, meaning no re-centering is needed.
//
// When the caret wins, the pointer is warped to it so both sources stay
// visually co-located inside the new viewport. The warp echoes back through
// the pointer reading on the following tick; that tick re-emits the same
// point and leaves the anchor where it is.
func (t *Tracker) Tick(caret, pointer port.Point) (port.Point, bool) {
	if caret != t.lastCaret {
		t.lastCaret = caret
		t.anchor = caret
		t.pointer.WarpTo(caret)
		return caret, true
	}

	if pointer != t.lastPointer {
		t.lastPointer = pointer
		if t.mode == ModeBorder && t.hasViewport {
			target := FollowBorder(t.anchor, t.viewport, pointer, t.margin)
			t.anchor = target
			return target, true
		}
		t.anchor = pointer
		return pointer, true
	}

	return port.Point{}, false
}
