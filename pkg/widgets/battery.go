package widgets

import (
	"strconv"
	"time"

	"github.com/go-cockpit/cockpit/pkg/animation"
	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

const batteryCells = 5

// Battery shows a charge level in [0, 1] as a segmented cell. Below
// WarnLevel the fill turns to WarnColor, below CriticalLevel it blinks.
type Battery struct {
	scene.WidgetBase

	WarnLevel     float64
	CriticalLevel float64
	OKColor       graphics.Color
	WarnColor     graphics.Color

	level   float64
	blinker *animation.Blinker
}

// NewBattery creates a battery indicator at full charge.
func NewBattery(bounds graphics.Rect, style graphics.Style) *Battery {
	b := &Battery{
		WarnLevel:     0.3,
		CriticalLevel: 0.1,
		OKColor:       graphics.ColorGreen,
		WarnColor:     graphics.ColorRed,
		level:         1,
		blinker:       animation.NewBlinker(400 * time.Millisecond),
	}
	b.InitBase(bounds, style)
	return b
}

// SetLevel stores the charge level, clamped to [0, 1].
func (b *Battery) SetLevel(level float64) {
	b.level = graphics.Clamp(level, 0, 1)
}

// Level returns the current charge level.
func (b *Battery) Level() float64 { return b.level }

func (b *Battery) Layout(bounds graphics.Rect) {}

func (b *Battery) Draw(canvas graphics.Canvas) {
	style := b.Style()
	bounds := b.Bounds()

	// Body outline with a terminal nub on the right edge.
	nubW := bounds.Width * 0.06
	body := graphics.Rect{
		X: bounds.X, Y: bounds.Y,
		Width: bounds.Width - nubW, Height: bounds.Height,
	}
	nub := graphics.Rect{
		X: body.Right(), Y: bounds.Y + bounds.Height*0.3,
		Width: nubW, Height: bounds.Height * 0.4,
	}
	canvas.DrawRect(body, style.CornerRadius, style.FillPaint())
	canvas.DrawRect(body, style.CornerRadius, style.StrokePaint())
	canvas.DrawRect(nub, 0, graphics.Fill(style.Stroke))

	fill := b.OKColor
	if b.level < b.WarnLevel {
		fill = b.WarnColor
	}
	if b.level >= b.CriticalLevel || b.blinker.Blink() {
		inner := body.Inset(3)
		cellGap := 2.0
		cellW := (inner.Width - cellGap*(batteryCells-1)) / batteryCells
		lit := int(b.level * batteryCells)
		if b.level > 0 && lit == 0 {
			lit = 1
		}
		for i := 0; i < lit; i++ {
			cell := graphics.Rect{
				X:     inner.X + float64(i)*(cellW+cellGap),
				Y:     inner.Y,
				Width: cellW, Height: inner.Height,
			}
			canvas.DrawRect(cell, 0, graphics.Fill(fill))
		}
	}

	pct := strconv.Itoa(int(b.level*100)) + "%"
	canvas.DrawText(pct, graphics.Offset{
		X: body.Center().X,
		Y: body.Center().Y + style.Font.Size*0.35,
	}, graphics.AnchorMiddle, style.Font, style.Stroke)
}

// HandleInput is a no-op: the battery is a read-only telemetry mirror.
func (b *Battery) HandleInput(ev input.Event) bool { return false }
