package widgets

import (
	"math"

	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

// Horizon is an attitude indicator. It mirrors pitch and roll telemetry
// read-only: the stored values are exactly what the caller set, and the
// display envelope (MaxPitch/MaxRoll) clamps only what is drawn.
type Horizon struct {
	scene.WidgetBase

	// MaxPitch is the display envelope for pitch in degrees (default 40,
	// matching a ±40° instrument face).
	MaxPitch float64
	// MaxRoll is the display envelope for roll in degrees (default 180).
	MaxRoll float64

	pitch float64
	roll  float64

	// geometry cached by Layout
	center graphics.Offset
	radius float64
}

// NewHorizon creates an attitude indicator with the given display
// envelope. Non-positive envelope values fall back to the defaults.
func NewHorizon(bounds graphics.Rect, style graphics.Style, maxPitch, maxRoll float64) *Horizon {
	if maxPitch <= 0 {
		maxPitch = 40
	}
	if maxRoll <= 0 {
		maxRoll = 180
	}
	h := &Horizon{MaxPitch: maxPitch, MaxRoll: maxRoll}
	h.InitBase(bounds, style)
	h.Layout(h.Bounds())
	return h
}

// SetAttitude stores pitch and roll in degrees. Values are kept raw;
// clamping to the display envelope happens at draw time only.
func (h *Horizon) SetAttitude(pitchDeg, rollDeg float64) {
	h.pitch = pitchDeg
	h.roll = rollDeg
}

// Attitude returns the raw pitch and roll as last set.
func (h *Horizon) Attitude() (pitchDeg, rollDeg float64) {
	return h.pitch, h.roll
}

func (h *Horizon) Layout(bounds graphics.Rect) {
	h.center = bounds.Center()
	h.radius = math.Min(bounds.Width, bounds.Height) / 2 * 0.9
}

func (h *Horizon) Draw(canvas graphics.Canvas) {
	style := h.Style()

	canvas.DrawCircle(h.center, h.radius, style.FillPaint())

	pitch := graphics.Clamp(h.pitch, -h.MaxPitch, h.MaxPitch)
	roll := graphics.Clamp(h.roll, -h.MaxRoll, h.MaxRoll)
	rollRad := roll * math.Pi / 180

	// The horizon line spans the face perpendicular to the roll axis,
	// displaced along the roll axis by the pitch fraction.
	lineRadius := h.radius * 0.85
	displacement := lineRadius * pitch / h.MaxPitch
	dx := displacement * math.Sin(rollRad)
	dy := displacement * math.Cos(rollRad)

	leftRad := (roll - 90) * math.Pi / 180
	rightRad := (roll + 90) * math.Pi / 180
	p1 := graphics.Offset{
		X: h.center.X + lineRadius*math.Sin(leftRad) + dx,
		Y: h.center.Y - lineRadius*math.Cos(leftRad) - dy,
	}
	p2 := graphics.Offset{
		X: h.center.X + lineRadius*math.Sin(rightRad) + dx,
		Y: h.center.Y - lineRadius*math.Cos(rightRad) - dy,
	}
	canvas.DrawLine(p1, p2, graphics.Stroke(style.Stroke, style.StrokeWidth+1))

	// Fixed aircraft reference.
	ref := h.radius * 0.3
	canvas.DrawLine(
		graphics.Offset{X: h.center.X - ref, Y: h.center.Y},
		graphics.Offset{X: h.center.X - ref*0.4, Y: h.center.Y},
		graphics.Stroke(style.Stroke, 2),
	)
	canvas.DrawLine(
		graphics.Offset{X: h.center.X + ref*0.4, Y: h.center.Y},
		graphics.Offset{X: h.center.X + ref, Y: h.center.Y},
		graphics.Stroke(style.Stroke, 2),
	)
	canvas.DrawCircle(h.center, 2, graphics.Fill(style.Stroke))

	canvas.DrawCircle(h.center, h.radius, style.StrokePaint())
}

// HandleInput is a no-op: the horizon is a read-only telemetry mirror.
func (h *Horizon) HandleInput(ev input.Event) bool { return false }
