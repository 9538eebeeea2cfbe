package core

// Canvas is the draw contract scenes render against. Every coordinate is in
// design space (DesignWidth x DesignHeight); implementations map it to
// physical output and clip whatever falls outside.
type Canvas interface {
	// Fill covers the whole canvas, used as a background clear.
	Fill(r rune, c Color)

	// FillRect covers a design-space rectangle.
	FillRect(rect Rect, r rune, c Color)

	// Box outlines a design-space rectangle.
	Box(rect Rect, c Color)

	// Text writes a string whose left edge starts at design-space (x, y).
	Text(x, y float64, text string, c Color)

	// TextCentered writes a string centered horizontally at design-space y.
	TextCentered(y float64, text string, c Color)
}
