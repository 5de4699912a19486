package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
//
// The zero value is an opaque-black fill with a 1px stroke width should the
// style be switched to stroke.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64 // Width of stroke in pixels; 0 defaults to 1
}

// Fill returns a fill paint with the given color.
func Fill(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}

// Stroke returns a stroke paint with the given color and width.
func Stroke(c Color, width float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: width}
}

// EffectiveStrokeWidth returns the stroke width, substituting the 1px
// default when unset.
func (p Paint) EffectiveStrokeWidth() float64 {
	if p.StrokeWidth <= 0 {
		return 1
	}
	return p.StrokeWidth
}
