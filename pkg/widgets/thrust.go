package widgets

import (
	"math"

	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

const thrustStrips = 10

// Thrust is a vertical bar for values in [-1, 1]: positive thrust fills
// strips upward from the center line, negative thrust downward. Strip
// color ramps from LowColor at the center to HighColor at full
// deflection.
type Thrust struct {
	scene.WidgetBase

	LowColor  graphics.Color
	HighColor graphics.Color

	value float64
}

// NewThrust creates a thrust bar at zero.
func NewThrust(bounds graphics.Rect, style graphics.Style) *Thrust {
	t := &Thrust{
		LowColor:  graphics.ColorGreen,
		HighColor: graphics.ColorRed,
	}
	t.InitBase(bounds, style)
	return t
}

// SetValue stores the thrust value, clamped to [-1, 1].
func (t *Thrust) SetValue(v float64) {
	t.value = graphics.Clamp(v, -1, 1)
}

// Value returns the current thrust value.
func (t *Thrust) Value() float64 { return t.value }

func (t *Thrust) Layout(bounds graphics.Rect) {}

func (t *Thrust) Draw(canvas graphics.Canvas) {
	style := t.Style()
	bounds := t.Bounds()

	canvas.DrawRect(bounds, style.CornerRadius, style.FillPaint())
	canvas.DrawRect(bounds, style.CornerRadius, style.StrokePaint())

	inner := bounds.Inset(3)
	midY := inner.Center().Y
	half := inner.Height / 2
	gap := 2.0
	stripH := (half - gap*thrustStrips) / thrustStrips

	lit := int(math.Round(math.Abs(t.value) * thrustStrips))
	down := t.value < 0
	for i := 0; i < lit; i++ {
		frac := float64(i+1) / thrustStrips
		color := t.LowColor.Lerp(t.HighColor, frac)
		y := midY - float64(i+1)*(stripH+gap)
		if down {
			y = midY + gap + float64(i)*(stripH+gap)
		}
		canvas.DrawRect(graphics.Rect{
			X: inner.X, Y: y,
			Width: inner.Width, Height: stripH,
		}, 0, graphics.Fill(color))
	}

	canvas.DrawLine(
		graphics.Offset{X: inner.X, Y: midY},
		graphics.Offset{X: inner.Right(), Y: midY},
		graphics.Stroke(style.Stroke, 1),
	)
}

// HandleInput is a no-op: the thrust bar is a read-only telemetry mirror.
func (t *Thrust) HandleInput(ev input.Event) bool { return false }
