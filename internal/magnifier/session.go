package magnifier

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/loupe/internal/application/port"
)

// ErrNotTracking reports an operation that needs an active tracking session.
// It is a normal rejected-precondition outcome, surfaced to the user as
// guidance rather than a failure.
var ErrNotTracking = errors.New("tracking is not active")

// Options configures a Session.
type Options struct {
	ZoomMin     float64
	ZoomMax     float64
	ZoomStep    float64
	ZoomInitial float64

	TickInterval time.Duration
	BorderMargin int
	Mode         Mode
}

// Session owns the polling loop and the session lifecycle. All methods must
// be called from a single goroutine; the scheduler hands tick callbacks back
// to that same goroutine, so ticks and commands never interleave.
//
// Zoom level and follow mode survive across activations; the tracking state
// is rebuilt from fresh readings on every activation.
type Session struct {
	renderer port.Renderer
	caret    port.AccessibilityReader
	pointer  port.PointerDevice
	screen   port.ScreenInfo
	sched    port.Scheduler
	log      zerolog.Logger

	opts    Options
	zoom    *Zoom
	mode    Mode
	active  bool
	tracker *Tracker
}

// NewSession creates an inactive session.
func NewSession(renderer port.Renderer, caret port.AccessibilityReader, pointer port.PointerDevice, screen port.ScreenInfo, sched port.Scheduler, log zerolog.Logger, opts Options) *Session {
	mode := opts.Mode
	if mode != ModeBorder {
		mode = ModeCenter
	}
	return &Session{
		renderer: renderer,
		caret:    caret,
		pointer:  pointer,
		screen:   screen,
		sched:    sched,
		log:      log,
		opts:     opts,
		zoom:     NewZoom(opts.ZoomMin, opts.ZoomMax, opts.ZoomStep, opts.ZoomInitial),
		mode:     mode,
	}
}

// Active reports whether a tracking session is running.
func (s *Session) Active() bool {
	return s.active
}

// Mode returns the current follow mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// ZoomLevel returns the current magnification factor.
func (s *Session) ZoomLevel() float64 {
	return s.zoom.Level()
}

// Toggle flips the session on or off and returns the new active state.
// Deactivation cancels the pending tick and resets the engine transform
// exactly once.
func (s *Session) Toggle() bool {
	if s.active {
		s.active = false
		s.sched.Cancel()
		s.tracker = nil
		s.resetRenderer()
		s.log.Info().Msg("magnifier stopped")
		return false
	}

	s.active = true
	s.tracker = NewTracker(s.pointer, s.mode, s.opts.BorderMargin, s.caret.CaretPosition(), s.pointer.Position())
	s.sched.ScheduleAfter(s.opts.TickInterval, s.tick)
	s.log.Info().Str("mode", string(s.mode)).Float64("zoom", s.zoom.Level()).Msg("magnifier started")
	return true
}

// StepZoom changes the zoom by one step and re-renders immediately at the
// current anchor, without waiting for the next movement delta. Rejected with
// ErrNotTracking while no session is active.
func (s *Session) StepZoom(d Direction) (float64, error) {
	if !s.active {
		return 0, ErrNotTracking
	}
	level := s.zoom.Step(d)
	s.render(s.tracker.Anchor())
	return level, nil
}

// ToggleMode switches between center and border follow. Rejected with
// ErrNotTracking while no session is active.
func (s *Session) ToggleMode() (Mode, error) {
	if !s.active {
		return "", ErrNotTracking
	}
	if s.mode == ModeCenter {
		s.mode = ModeBorder
	} else {
		s.mode = ModeCenter
	}
	s.tracker.SetMode(s.mode)
	return s.mode, nil
}

// tick runs one poll: arbitrate, render if a source moved, re-arm. A tick
// that fires after deactivation (stale timer) is a no-op.
func (s *Session) tick() {
	if !s.active {
		return
	}

	target, moved := s.tracker.Tick(s.caret.CaretPosition(), s.pointer.Position())
	if moved {
		s.render(target)
	}

	// Re-arm only after the tick's work is done; deactivation during the
	// tick already performed its own teardown.
	if s.active {
		s.sched.ScheduleAfter(s.opts.TickInterval, s.tick)
	}
}

// render computes the viewport for center against fresh screen bounds and
// pushes it to the engine. Render failures are logged and swallowed: a
// magnifier that fails to draw must not corrupt tracking state.
func (s *Session) render(center port.Point) {
	bounds := s.screen.Bounds()
	vp := ComputeViewport(center, s.zoom.Level(), bounds)
	s.tracker.ObserveViewport(vp)
	if !s.renderer.ApplyTransform(s.zoom.Level(), vp.Left, vp.Top) {
		s.log.Warn().Float64("zoom", s.zoom.Level()).Int("left", vp.Left).Int("top", vp.Top).Msg("failed to apply magnifier transform")
	}
}

func (s *Session) resetRenderer() {
	if !s.renderer.Reset() {
		s.log.Warn().Msg("failed to reset magnifier transform")
	}
}
