package port

// ScreenInfo reports the bounds of the screen being magnified.
type ScreenInfo interface {
	Bounds() Bounds
}
