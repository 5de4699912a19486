package widgets

import (
	"math"

	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

// Joystick is a virtual stick pad. The stick position is normalized to
// [-1, 1] on both axes, with (0, 0) at the pad center, +x right and
// +y down. Dragging moves the stick; releasing snaps it back to center
// unless Sticky is set.
type Joystick struct {
	scene.WidgetBase

	// Sticky keeps the stick where it was released instead of
	// recentering it.
	Sticky bool
	// OnChange fires whenever the stick position changes, including the
	// recenter on release.
	OnChange func(x, y float64)

	x, y     float64
	dragging bool

	// geometry cached by Layout
	center      graphics.Offset
	padRadius   float64
	stickRadius float64
}

// NewJoystick creates a stick pad centered in bounds.
func NewJoystick(bounds graphics.Rect, style graphics.Style) *Joystick {
	j := &Joystick{}
	j.InitBase(bounds, style)
	j.Layout(j.Bounds())
	return j
}

// SetStick positions the stick from telemetry, clamped to [-1, 1] per
// axis. OnChange does not fire for programmatic moves.
func (j *Joystick) SetStick(x, y float64) {
	j.x = graphics.Clamp(x, -1, 1)
	j.y = graphics.Clamp(y, -1, 1)
}

// Stick returns the current normalized stick position.
func (j *Joystick) Stick() (x, y float64) { return j.x, j.y }

func (j *Joystick) Layout(bounds graphics.Rect) {
	j.center = bounds.Center()
	j.padRadius = math.Min(bounds.Width, bounds.Height) / 2 * 0.9
	j.stickRadius = graphics.Clamp(j.padRadius*0.25, 4, 24)
}

func (j *Joystick) Draw(canvas graphics.Canvas) {
	style := j.Style()

	canvas.DrawCircle(j.center, j.padRadius, style.FillPaint())
	canvas.DrawCircle(j.center, j.padRadius, style.StrokePaint())

	// Crosshair through the rest position.
	dim := style.Stroke.WithAlphaF(0.35)
	canvas.DrawLine(
		graphics.Offset{X: j.center.X - j.padRadius, Y: j.center.Y},
		graphics.Offset{X: j.center.X + j.padRadius, Y: j.center.Y},
		graphics.Stroke(dim, 1),
	)
	canvas.DrawLine(
		graphics.Offset{X: j.center.X, Y: j.center.Y - j.padRadius},
		graphics.Offset{X: j.center.X, Y: j.center.Y + j.padRadius},
		graphics.Stroke(dim, 1),
	)

	knob := j.knobCenter()
	canvas.DrawCircle(knob, j.stickRadius, graphics.Fill(style.Stroke))
	canvas.DrawCircle(knob, j.stickRadius, graphics.Stroke(style.Fill, 1))
}

func (j *Joystick) knobCenter() graphics.Offset {
	travel := j.padRadius - j.stickRadius
	return graphics.Offset{
		X: j.center.X + j.x*travel,
		Y: j.center.Y + j.y*travel,
	}
}

func (j *Joystick) HandleInput(ev input.Event) bool {
	switch ev.Kind {
	case input.Press:
		if !j.Bounds().Contains(ev.Position) {
			return false
		}
		j.dragging = true
		j.applyPointer(ev.Position)
		return true
	case input.Move:
		if !j.dragging {
			return false
		}
		j.applyPointer(ev.Position)
		return true
	case input.Release:
		if !j.dragging {
			return false
		}
		j.dragging = false
		if !j.Sticky {
			j.setAndNotify(0, 0)
		}
		return true
	}
	return false
}

func (j *Joystick) applyPointer(p graphics.Offset) {
	travel := j.padRadius - j.stickRadius
	if travel <= 0 {
		return
	}
	x := graphics.Clamp((p.X-j.center.X)/travel, -1, 1)
	y := graphics.Clamp((p.Y-j.center.Y)/travel, -1, 1)
	j.setAndNotify(x, y)
}

func (j *Joystick) setAndNotify(x, y float64) {
	if x == j.x && y == j.y {
		return
	}
	j.x, j.y = x, y
	if j.OnChange != nil {
		j.OnChange(x, y)
	}
}
