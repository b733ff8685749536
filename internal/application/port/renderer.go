package port

// Renderer drives the external magnification engine. Both calls report
// success as a bool: a failing engine is logged and tolerated, never fatal to
// the tracking loop.
type Renderer interface {
	// ApplyTransform sets the fullscreen magnification transform: the zoom
	// factor and the top-left origin of the source rectangle.
	ApplyTransform(zoom float64, left, top int) bool

	// Reset restores the unmagnified screen, equivalent to
	// ApplyTransform(1.0, 0, 0).
	Reset() bool
}
