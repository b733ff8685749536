package port

// PointerDevice reads and moves the device cursor.
type PointerDevice interface {
	// Position returns the current cursor position. Lookup faults degrade
	// to (0,0) at the adapter boundary.
	Position() Point

	// WarpTo forcibly moves the cursor. Best effort; failures are logged
	// by the adapter.
	WarpTo(p Point)
}
