package graphics

// Canvas is the drawing and measuring backend handed to every view during
// the process, draw, layout and hit-test passes. Implementations wrap a GPU
// or vector renderer; views treat it as opaque.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawText draws a single line of text with its top-left corner at position.
	DrawText(text string, position Offset, style TextStyle)

	// MeasureText returns the size a single line of text occupies.
	MeasureText(text string, style TextStyle) Size

	// Size returns the canvas dimensions.
	Size() Size
}
