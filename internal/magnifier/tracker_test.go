package magnifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bnema/loupe/internal/application/port"
	"github.com/bnema/loupe/internal/application/port/mocks"
)

func newTestTracker(t *testing.T, mode Mode) (*Tracker, *mocks.MockPointerDevice) {
	t.Helper()
	ctrl := gomock.NewController(t)
	pointer := mocks.NewMockPointerDevice(ctrl)
	tracker := NewTracker(pointer, mode, 50, port.Point{X: 10, Y: 10}, port.Point{X: 20, Y: 20})
	return tracker, pointer
}

func TestTracker_IdleWhenNothingMoved(t *testing.T) {
	tracker, _ := newTestTracker(t, ModeCenter)

	_, moved := tracker.Tick(port.Point{X: 10, Y: 10}, port.Point{X: 20, Y: 20})

	assert.False(t, moved)
	assert.Equal(t, port.Point{X: 20, Y: 20}, tracker.Anchor())
}

func TestTracker_CaretMovePreemptsPointerAndWarps(t *testing.T) {
	tracker, pointer := newTestTracker(t, ModeCenter)

	caret := port.Point{X: 400, Y: 300}
	pointer.EXPECT().WarpTo(caret)

	// Both sources moved this tick; the caret must win.
	target, moved := tracker.Tick(caret, port.Point{X: 999, Y: 999})

	assert.True(t, moved)
	assert.Equal(t, caret, target)
	assert.Equal(t, caret, tracker.Anchor())
}

func TestTracker_WarpEchoLeavesAnchorInPlace(t *testing.T) {
	tracker, pointer := newTestTracker(t, ModeCenter)

	caret := port.Point{X: 400, Y: 300}
	pointer.EXPECT().WarpTo(caret)

	_, moved := tracker.Tick(caret, port.Point{X: 20, Y: 20})
	assert.True(t, moved)

	// Next tick the pointer reading echoes the warp. The pointer branch
	// fires once, re-emitting the same point without moving the anchor.
	target, moved := tracker.Tick(caret, caret)
	assert.True(t, moved)
	assert.Equal(t, caret, target)
	assert.Equal(t, caret, tracker.Anchor())

	// After the echo settles, the loop goes idle.
	_, moved = tracker.Tick(caret, caret)
	assert.False(t, moved)
}

func TestTracker_CenterModeFollowsPointerExactly(t *testing.T) {
	tracker, _ := newTestTracker(t, ModeCenter)

	target, moved := tracker.Tick(port.Point{X: 10, Y: 10}, port.Point{X: 640, Y: 480})

	assert.True(t, moved)
	assert.Equal(t, port.Point{X: 640, Y: 480}, target)
	assert.Equal(t, port.Point{X: 640, Y: 480}, tracker.Anchor())
}

func TestTracker_BorderModeUsesDeadZone(t *testing.T) {
	tracker, _ := newTestTracker(t, ModeBorder)
	tracker.ObserveViewport(Viewport{Left: 0, Top: 0, Width: 500, Height: 400})

	// Inside the dead zone: anchor sticks, but the move still re-renders.
	anchorBefore := tracker.Anchor()
	target, moved := tracker.Tick(port.Point{X: 10, Y: 10}, port.Point{X: 300, Y: 200})
	assert.True(t, moved)
	assert.Equal(t, anchorBefore, target)

	// Outside the dead zone on the left: anchor shifts by the overshoot.
	target, moved = tracker.Tick(port.Point{X: 10, Y: 10}, port.Point{X: 10, Y: 200})
	assert.True(t, moved)
	assert.Equal(t, port.Point{X: anchorBefore.X - 40, Y: anchorBefore.Y}, target)
	assert.Equal(t, target, tracker.Anchor())
}

func TestTracker_BorderModeBeforeFirstViewportCenters(t *testing.T) {
	// Until a viewport has been committed there is no dead zone to
	// measure against; border mode degrades to centering.
	tracker, _ := newTestTracker(t, ModeBorder)

	target, moved := tracker.Tick(port.Point{X: 10, Y: 10}, port.Point{X: 640, Y: 480})

	assert.True(t, moved)
	assert.Equal(t, port.Point{X: 640, Y: 480}, target)
}

func TestTracker_SetModeSwitchesFollowBehavior(t *testing.T) {
	tracker, _ := newTestTracker(t, ModeCenter)
	tracker.ObserveViewport(Viewport{Left: 0, Top: 0, Width: 500, Height: 400})

	tracker.SetMode(ModeBorder)
	assert.Equal(t, ModeBorder, tracker.Mode())

	anchorBefore := tracker.Anchor()
	target, moved := tracker.Tick(port.Point{X: 10, Y: 10}, port.Point{X: 300, Y: 200})
	assert.True(t, moved)
	assert.Equal(t, anchorBefore, target)
}
