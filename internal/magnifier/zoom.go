package magnifier

// Direction is a zoom step direction.
type Direction int

const (
	ZoomIn Direction = iota
	ZoomOut
)

// Zoom holds the current magnification factor and applies bounded step
// changes to it. The limits and step size come from configuration.
type Zoom struct {
	level float64
	min   float64
	max   float64
	step  float64
}

// NewZoom creates a Zoom clamped to [min, max] starting at initial.
func NewZoom(min, max, step, initial float64) *Zoom {
	if initial < min {
		initial = min
	}
	if initial > max {
		initial = max
	}
	return &Zoom{level: initial, min: min, max: max, step: step}
}

// Step moves the level one step in the given direction, saturating at the
// limits, and returns the new level.
func (z *Zoom) Step(d Direction) float64 {
	switch d {
	case ZoomIn:
		z.level = minFloat(z.level+z.step, z.max)
	case ZoomOut:
		z.level = maxFloat(z.level-z.step, z.min)
	}
	return z.level
}

// Level returns the current magnification factor.
func (z *Zoom) Level() float64 {
	return z.level
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
