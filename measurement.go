package gocert

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextMetrics is the ink bounding box of a string drawn with its dot at the
// origin. Width and Height are whole pixels; Bounds keeps the exact
// sub-pixel box needed to place the ink at a given top-left corner.
type TextMetrics struct {
	Width  int
	Height int
	Bounds fixed.Rectangle26_6
}

// Measure returns the glyph bounding box of text rendered with face.
// Empty text measures zero.
func Measure(face font.Face, text string) TextMetrics {
	if text == "" {
		return TextMetrics{}
	}
	b, _ := font.BoundString(face, text)
	return TextMetrics{
		Width:  (b.Max.X - b.Min.X).Ceil(),
		Height: (b.Max.Y - b.Min.Y).Ceil(),
		Bounds: b,
	}
}

// dotForInk returns the drawer origin that puts the ink box of m with its
// top-left corner at (x, y).
func dotForInk(m TextMetrics, x, y int) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.I(x) - m.Bounds.Min.X,
		Y: fixed.I(y) - m.Bounds.Min.Y,
	}
}

// dotForAscent returns the drawer origin that puts the top of the face's
// ascent at y and the pen at x.
func dotForAscent(face font.Face, x, y int) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.I(x),
		Y: fixed.I(y) + face.Metrics().Ascent,
	}
}
