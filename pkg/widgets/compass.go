package widgets

import (
	"math"

	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

// Compass is a display-only heading dial. Headings are degrees clockwise
// from north and wrap into [0, 360) on every set.
type Compass struct {
	scene.WidgetBase

	heading float64

	// geometry cached by Layout
	center graphics.Offset
	radius float64
}

// NewCompass creates a compass with heading 0 (north).
func NewCompass(bounds graphics.Rect, style graphics.Style) *Compass {
	c := &Compass{}
	c.InitBase(bounds, style)
	c.Layout(c.Bounds())
	return c
}

// SetHeading stores the heading wrapped into [0, 360):
// 370 becomes 10, -10 becomes 350.
func (c *Compass) SetHeading(deg float64) {
	c.heading = wrapDegrees(deg)
}

// Heading returns the wrapped heading in [0, 360).
func (c *Compass) Heading() float64 { return c.heading }

// wrapDegrees reduces an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	wrapped := math.Mod(deg, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped
}

func (c *Compass) Layout(bounds graphics.Rect) {
	c.center = bounds.Center()
	c.radius = math.Min(bounds.Width, bounds.Height) / 2 * 0.9
}

func (c *Compass) Draw(canvas graphics.Canvas) {
	style := c.Style()
	canvas.DrawCircle(c.center, c.radius, style.FillPaint())
	canvas.DrawCircle(c.center, c.radius, style.StrokePaint())

	// Tick every 30 degrees, longer on the cardinals.
	for deg := 0.0; deg < 360; deg += 30 {
		rad := (deg - 90) * math.Pi / 180
		dir := graphics.Offset{X: math.Cos(rad), Y: math.Sin(rad)}
		length := 0.12
		if math.Mod(deg, 90) == 0 {
			length = 0.2
		}
		outer := graphics.Offset{X: c.center.X + dir.X*c.radius, Y: c.center.Y + dir.Y*c.radius}
		inner := graphics.Offset{
			X: c.center.X + dir.X*c.radius*(1-length),
			Y: c.center.Y + dir.Y*c.radius*(1-length),
		}
		canvas.DrawLine(inner, outer, graphics.Stroke(style.Stroke, 1))
	}

	labels := []struct {
		text string
		deg  float64
	}{{"N", 0}, {"E", 90}, {"S", 180}, {"W", 270}}
	for _, l := range labels {
		rad := (l.deg - 90) * math.Pi / 180
		pos := graphics.Offset{
			X: c.center.X + math.Cos(rad)*c.radius*0.65,
			Y: c.center.Y + math.Sin(rad)*c.radius*0.65 + style.Font.Size*0.35,
		}
		canvas.DrawText(l.text, pos, graphics.AnchorMiddle, style.Font, style.Stroke)
	}

	// Needle points at the current heading; north is up.
	rad := (c.heading - 90) * math.Pi / 180
	tip := graphics.Offset{
		X: c.center.X + math.Cos(rad)*c.radius*0.8,
		Y: c.center.Y + math.Sin(rad)*c.radius*0.8,
	}
	tail := graphics.Offset{
		X: c.center.X - math.Cos(rad)*c.radius*0.25,
		Y: c.center.Y - math.Sin(rad)*c.radius*0.25,
	}
	canvas.DrawLine(tail, tip, graphics.Stroke(style.Fill, style.StrokeWidth+1))
	canvas.DrawCircle(c.center, 2, style.FillPaint())
}

// HandleInput is a no-op: the compass is display-only.
func (c *Compass) HandleInput(ev input.Event) bool { return false }
