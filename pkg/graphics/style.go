package graphics

// Style is the visual configuration attached to a widget at construction.
// It is treated as immutable by the toolkit: widgets read it every draw pass
// and never write it; replacing a widget's style wholesale is the only
// supported mutation.
type Style struct {
	// Fill is the interior color for filled shapes.
	Fill Color
	// Stroke is the outline color for stroked shapes.
	Stroke Color
	// StrokeWidth is the outline width in pixels; 0 defaults to 1.
	StrokeWidth float64
	// Font identifies the typeface used for any text the widget draws.
	Font FontRef
	// CornerRadius rounds rectangular outlines where a widget supports it.
	CornerRadius float64
}

// FillPaint returns a fill paint carrying the style's fill color.
func (s Style) FillPaint() Paint {
	return Fill(s.Fill)
}

// StrokePaint returns a stroke paint carrying the style's stroke color
// and width.
func (s Style) StrokePaint() Paint {
	return Stroke(s.Stroke, s.StrokeWidth)
}
