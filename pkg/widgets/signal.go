package widgets

import (
	"math"
	"time"

	"github.com/go-cockpit/cockpit/pkg/animation"
	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

const signalArcs = 4

// Signal shows link strength in [0, 1] as stacked arcs above an antenna
// dot. Below WeakLevel the lit arcs blink.
type Signal struct {
	scene.WidgetBase

	WeakLevel float64

	strength float64
	blinker  *animation.Blinker
}

// NewSignal creates a signal indicator with no link.
func NewSignal(bounds graphics.Rect, style graphics.Style) *Signal {
	s := &Signal{
		WeakLevel: 0.45,
		blinker:   animation.NewBlinker(500 * time.Millisecond),
	}
	s.InitBase(bounds, style)
	return s
}

// SetStrength stores the link strength, clamped to [0, 1].
func (s *Signal) SetStrength(v float64) {
	s.strength = graphics.Clamp(v, 0, 1)
}

// Strength returns the current link strength.
func (s *Signal) Strength() float64 { return s.strength }

func (s *Signal) Layout(bounds graphics.Rect) {}

func (s *Signal) Draw(canvas graphics.Canvas) {
	style := s.Style()
	bounds := s.Bounds()

	canvas.DrawRect(bounds, style.CornerRadius, style.FillPaint())

	// Arcs fan out from a point near the bottom center.
	origin := graphics.Offset{X: bounds.Center().X, Y: bounds.Bottom() - bounds.Height*0.15}
	maxRadius := math.Min(bounds.Width, bounds.Height) * 0.75

	lit := int(math.Round(s.strength * signalArcs))
	hide := s.strength < s.WeakLevel && !s.blinker.Blink()

	canvas.DrawCircle(origin, 2, graphics.Fill(style.Stroke))
	for i := 1; i <= signalArcs; i++ {
		r := maxRadius * float64(i) / signalArcs
		color := style.Stroke.WithAlphaF(0.25)
		if i <= lit && !hide {
			color = style.Stroke
		}
		canvas.DrawArc(origin, r, 225, 90, graphics.Stroke(color, style.StrokeWidth+1))
	}
}

// HandleInput is a no-op: the signal bars are a read-only telemetry mirror.
func (s *Signal) HandleInput(ev input.Event) bool { return false }
