package widgets

import (
	"math"
	"strconv"

	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

// Gauge dial geometry: the arc opens downward, sweeping clockwise from
// 7 o'clock around to 5 o'clock.
const (
	gaugeStartDeg = 135.0
	gaugeSweepDeg = 270.0
	gaugeTicks    = 10
)

// Gauge is a read-only arc dial displaying a telemetry value within a
// fixed range. Values outside the range are clamped on every set.
type Gauge struct {
	scene.WidgetBase
	ranged

	// Label is drawn under the dial when non-empty.
	Label string

	// geometry cached by Layout
	center graphics.Offset
	radius float64
}

// NewGauge creates a gauge over [min, max]. The initial value is min.
// A reversed range is rejected with the InvalidRange kind.
func NewGauge(bounds graphics.Rect, style graphics.Style, min, max float64) (*Gauge, error) {
	r, err := newRanged("widgets.NewGauge", min, max)
	if err != nil {
		return nil, err
	}
	g := &Gauge{ranged: r}
	g.InitBase(bounds, style)
	g.Layout(g.Bounds())
	return g, nil
}

// SetValue updates the reading, clamped to [min, max].
func (g *Gauge) SetValue(v float64) { g.set(v) }

// Value returns the current (clamped) reading.
func (g *Gauge) Value() float64 { return g.value }

// Range returns the configured bounds of the dial.
func (g *Gauge) Range() (min, max float64) { return g.min, g.max }

func (g *Gauge) Layout(bounds graphics.Rect) {
	g.center = bounds.Center()
	g.radius = math.Min(bounds.Width, bounds.Height) / 2 * 0.85
}

func (g *Gauge) Draw(canvas graphics.Canvas) {
	style := g.Style()

	canvas.DrawArc(g.center, g.radius, gaugeStartDeg, gaugeSweepDeg, style.StrokePaint())

	for i := 0; i <= gaugeTicks; i++ {
		deg := gaugeStartDeg + gaugeSweepDeg*float64(i)/gaugeTicks
		rad := deg * math.Pi / 180
		dir := graphics.Offset{X: math.Cos(rad), Y: math.Sin(rad)}
		outer := graphics.Offset{X: g.center.X + dir.X*g.radius, Y: g.center.Y + dir.Y*g.radius}
		inner := graphics.Offset{X: g.center.X + dir.X*g.radius*0.9, Y: g.center.Y + dir.Y*g.radius*0.9}
		canvas.DrawLine(inner, outer, graphics.Stroke(style.Stroke, 1))
	}

	needleDeg := gaugeStartDeg + gaugeSweepDeg*g.frac()
	needleRad := needleDeg * math.Pi / 180
	tip := graphics.Offset{
		X: g.center.X + math.Cos(needleRad)*g.radius*0.8,
		Y: g.center.Y + math.Sin(needleRad)*g.radius*0.8,
	}
	canvas.DrawLine(g.center, tip, graphics.Stroke(style.Fill, style.StrokeWidth+1))
	canvas.DrawCircle(g.center, 2, style.FillPaint())

	readout := strconv.FormatFloat(g.value, 'f', 1, 64)
	textPos := graphics.Offset{X: g.center.X, Y: g.Bounds().Bottom() - 2}
	canvas.DrawText(readout, textPos, graphics.AnchorMiddle, style.Font, style.Stroke)
	if g.Label != "" {
		labelPos := graphics.Offset{X: g.center.X, Y: g.center.Y + g.radius*0.5}
		canvas.DrawText(g.Label, labelPos, graphics.AnchorMiddle, style.Font, style.Stroke)
	}
}

// HandleInput is a no-op: gauges are display-only.
func (g *Gauge) HandleInput(ev input.Event) bool { return false }
