package port

// AccessibilityReader reports the screen reader's current point of interest:
// the caret/review position when one exists, otherwise the center of the
// focused object's bounding box. When nothing is focused it returns (0,0),
// which the tracker treats as a position like any other.
type AccessibilityReader interface {
	CaretPosition() Point
}
