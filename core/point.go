package core

// Cursor is a pointer position in screen pixels with origin at bottom-left
// Valid is false when the pointer is outside the tracked surface
type Cursor struct {
	X, Y  float32
	Valid bool
}
