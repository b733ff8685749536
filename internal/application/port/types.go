// Package port defines the collaborator contracts the magnifier core depends
// on. Concrete compositor and screen-reader bindings live under
// internal/infrastructure and implement these interfaces.
package port

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/bnema/loupe/internal/application/port Renderer,PointerDevice,AccessibilityReader,ScreenInfo,Scheduler

// Point is a position in screen pixel coordinates.
type Point struct {
	X int
	Y int
}

// Bounds describes the pixel size of the tracked screen. It is queried fresh
// on every viewport computation and never cached across ticks, so a
// resolution change simply shows up as new input.
type Bounds struct {
	Width  int
	Height int
}
