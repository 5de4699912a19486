package widgets

import (
	"math"
	"time"

	"github.com/go-cockpit/cockpit/pkg/animation"
	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

// Beacon is a heartbeat light. Trigger records that a signal arrived;
// the light stays solid while signals are fresh and starts blinking
// once StaleAfter has elapsed without one.
type Beacon struct {
	scene.WidgetBase

	// StaleAfter is how long after the last Trigger the beacon is
	// considered stale. Default one second.
	StaleAfter time.Duration
	ColorFresh graphics.Color
	ColorStale graphics.Color

	last    time.Time
	blinker *animation.Blinker
}

// NewBeacon creates a beacon that has never been triggered, so it
// starts out stale.
func NewBeacon(bounds graphics.Rect, style graphics.Style) *Beacon {
	b := &Beacon{
		StaleAfter: time.Second,
		ColorFresh: graphics.ColorGreen,
		ColorStale: graphics.ColorRed,
		blinker:    animation.NewBlinker(300 * time.Millisecond),
	}
	b.InitBase(bounds, style)
	return b
}

// Trigger records a heartbeat at the current clock time.
func (b *Beacon) Trigger() {
	b.last = animation.Now()
}

// Stale reports whether more than StaleAfter has passed since the last
// Trigger.
func (b *Beacon) Stale() bool {
	return b.last.IsZero() || animation.Now().Sub(b.last) > b.StaleAfter
}

func (b *Beacon) Layout(bounds graphics.Rect) {}

func (b *Beacon) Draw(canvas graphics.Canvas) {
	style := b.Style()
	bounds := b.Bounds()
	center := bounds.Center()
	radius := math.Min(bounds.Width, bounds.Height) / 2 * 0.8

	canvas.DrawCircle(center, radius, style.StrokePaint())

	if b.Stale() {
		if b.blinker.Blink() {
			canvas.DrawCircle(center, radius*0.7, graphics.Fill(b.ColorStale))
		}
		return
	}
	canvas.DrawCircle(center, radius*0.7, graphics.Fill(b.ColorFresh))
}

// HandleInput is a no-op: the beacon is a read-only telemetry mirror.
func (b *Beacon) HandleInput(ev input.Event) bool { return false }
