// Package theme provides the shared color palette and per-widget style
// defaults for instrument panels.
//
// A Theme is an explicit value threaded into scene.Config at tree
// construction; there is no process-wide theme state.
package theme

import "github.com/go-cockpit/cockpit/pkg/graphics"

// Instrument panel palette.
var (
	ColorPanelBackground = graphics.RGB(10, 20, 30)
	ColorCyberCoolBlue   = graphics.RGB(128, 128, 179)
	ColorWarning         = graphics.ColorYellow
	ColorDanger          = graphics.ColorRed
	ColorOK              = graphics.ColorGreen
	ColorText            = graphics.RGB(204, 204, 204)
	ColorSky             = graphics.RGB(70, 130, 180)
	ColorGround          = graphics.RGB(139, 90, 43)
	ColorGrey20          = graphics.RGB(51, 51, 51)
	ColorGrey50          = graphics.RGB(128, 128, 128)
	ColorGrey80          = graphics.RGB(204, 204, 204)
)

// Theme bundles the palette and the default widget style. Widgets inserted
// into a tree without an explicit style receive WidgetStyle.
type Theme struct {
	// Background is the panel clear color.
	Background graphics.Color
	// Accent is the primary instrument color.
	Accent graphics.Color
	// Warning marks degraded readings (low battery, weak link).
	Warning graphics.Color
	// Danger marks critical readings.
	Danger graphics.Color
	// Text is the readout text color.
	Text graphics.Color
	// WidgetStyle is the default style for unstyled widgets.
	WidgetStyle graphics.Style
	// Font is the default instrument font.
	Font graphics.FontRef
}

// Default returns the dark cockpit theme.
func Default() Theme {
	font := graphics.FontRef{Family: "mono", Size: 12}
	return Theme{
		Background: ColorPanelBackground,
		Accent:     ColorCyberCoolBlue,
		Warning:    ColorWarning,
		Danger:     ColorDanger,
		Text:       ColorText,
		Font:       font,
		WidgetStyle: graphics.Style{
			Fill:        ColorPanelBackground,
			Stroke:      ColorCyberCoolBlue,
			StrokeWidth: 1,
			Font:        font,
		},
	}
}

// Style returns a copy of the default widget style with the given fill and
// stroke colors.
func (t Theme) Style(fill, stroke graphics.Color) graphics.Style {
	s := t.WidgetStyle
	s.Fill = fill
	s.Stroke = stroke
	return s
}
