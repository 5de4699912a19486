package widgets

import (
	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

// defaultSliderSteps is the step count used by Inc/Dec when none is set.
const defaultSliderSteps = 10

// Slider is a horizontal ranged control. The thumb position and the value
// are linked by linear interpolation across the track:
//
//	value = min + (pointerX - track.X) / track.Width * (max - min)
//
// clamped to [min, max], with the inverse mapping placing the thumb.
// Dragging starts with a press inside the bounds and, thanks to pointer
// capture in the tree, survives the pointer leaving them.
type Slider struct {
	scene.WidgetBase
	ranged

	// Steps is the number of Inc/Dec increments across the range.
	// Zero means the default of 10.
	Steps int

	// OnChange, when set, is invoked after every pointer-driven value
	// change. Telemetry setters do not fire it.
	OnChange func(value float64)

	dragging bool

	// geometry cached by Layout
	track       graphics.Rect
	thumbRadius float64
}

// NewSlider creates a slider over [min, max]. The initial value is min.
// A reversed range is rejected with the InvalidRange kind.
func NewSlider(bounds graphics.Rect, style graphics.Style, min, max float64) (*Slider, error) {
	r, err := newRanged("widgets.NewSlider", min, max)
	if err != nil {
		return nil, err
	}
	s := &Slider{ranged: r}
	s.InitBase(bounds, style)
	s.Layout(s.Bounds())
	return s, nil
}

// SetValue updates the value, clamped to [min, max].
func (s *Slider) SetValue(v float64) { s.set(v) }

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// Dragging reports whether a drag gesture is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

// Inc raises the value by one step.
func (s *Slider) Inc() { s.step(1) }

// Dec lowers the value by one step.
func (s *Slider) Dec() { s.step(-1) }

func (s *Slider) step(dir float64) {
	steps := s.Steps
	if steps <= 0 {
		steps = defaultSliderSteps
	}
	s.set(s.value + dir*(s.max-s.min)/float64(steps))
}

func (s *Slider) Layout(bounds graphics.Rect) {
	s.thumbRadius = graphics.Clamp(bounds.Height*0.4, 3, 12)
	trackH := graphics.Clamp(bounds.Height*0.15, 2, 6)
	s.track = graphics.Rect{
		X:      bounds.X + s.thumbRadius,
		Y:      bounds.Center().Y - trackH/2,
		Width:  bounds.Width - 2*s.thumbRadius,
		Height: trackH,
	}
	if s.track.Width < 0 {
		s.track.Width = 0
	}
}

func (s *Slider) Draw(canvas graphics.Canvas) {
	style := s.Style()
	canvas.DrawRect(s.track, style.CornerRadius, style.FillPaint())
	canvas.DrawRect(s.track, style.CornerRadius, style.StrokePaint())

	thumb := s.thumbCenter()
	canvas.DrawCircle(thumb, s.thumbRadius, graphics.Fill(style.Stroke))
}

// thumbCenter maps the current value back to track coordinates, the
// inverse of the drag mapping.
func (s *Slider) thumbCenter() graphics.Offset {
	return graphics.Offset{
		X: s.track.X + s.frac()*s.track.Width,
		Y: s.track.Y + s.track.Height/2,
	}
}

func (s *Slider) HandleInput(ev input.Event) bool {
	switch ev.Kind {
	case input.Press:
		if !s.Bounds().Contains(ev.Position) {
			return false
		}
		s.dragging = true
		s.applyPointer(ev.Position.X)
		return true
	case input.Move:
		if !s.dragging {
			return false
		}
		s.applyPointer(ev.Position.X)
		return true
	case input.Release:
		if !s.dragging {
			return false
		}
		s.applyPointer(ev.Position.X)
		s.dragging = false
		return true
	}
	return false
}

func (s *Slider) applyPointer(x float64) {
	if s.track.Width <= 0 {
		return
	}
	s.fromFrac((x - s.track.X) / s.track.Width)
	if s.OnChange != nil {
		s.OnChange(s.value)
	}
}
