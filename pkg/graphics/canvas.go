package graphics

import "image"

// Canvas is the drawing capability the toolkit calls into. Implementations
// live outside the engine (a GPU backend, the software rasterizer in
// pkg/raster, or the recording canvas in this package).
//
// All coordinates arriving at a Canvas are already translated to screen
// space by the widget tree; implementations never need to know about tree
// origins or widget bounds. Angles are degrees, measured clockwise from
// 3 o'clock for arcs.
//
// Canvas calls are infallible by contract. A backend whose underlying
// surface fails should report through pkg/errors and drop the remainder of
// the frame rather than returning per-call errors into the draw pass.
type Canvas interface {
	// Save pushes the current translation state.
	Save()

	// Restore pops the most recent translation state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawRect draws a rectangle with the provided paint. A positive
	// cornerRadius rounds the corners.
	DrawRect(rect Rect, cornerRadius float64, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawArc draws a circular arc from startDeg sweeping sweepDeg degrees
	// clockwise. Fill paints close the arc through the center (a pie slice).
	DrawArc(center Offset, radius, startDeg, sweepDeg float64, paint Paint)

	// DrawText draws a single line of text at the given baseline position.
	DrawText(text string, pos Offset, anchor TextAnchor, font FontRef, color Color)

	// DrawImage draws an image scaled into the destination rectangle.
	DrawImage(img image.Image, dst Rect)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
