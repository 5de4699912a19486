package widgets

import (
	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

// Button is a momentary push button. It renders pressed state with an
// inverted fill and fires OnTap when a press completes with the release
// inside the bounds; releasing outside cancels the tap. Pointer capture in
// the tree guarantees the button always sees its matching release.
type Button struct {
	scene.WidgetBase

	// Label is the button caption.
	Label string
	// OnTap is called on a completed tap, after the pressed state clears.
	OnTap func()

	pressed bool
}

// NewButton creates a button with the given caption.
func NewButton(bounds graphics.Rect, style graphics.Style, label string) *Button {
	b := &Button{Label: label}
	b.InitBase(bounds, style)
	return b
}

// Pressed reports whether the button is currently held down.
func (b *Button) Pressed() bool { return b.pressed }

// Layout has no derived geometry; the button draws straight from bounds.
func (b *Button) Layout(bounds graphics.Rect) {}

func (b *Button) Draw(canvas graphics.Canvas) {
	style := b.Style()
	bounds := b.Bounds()

	fill, text := style.Fill, style.Stroke
	if b.pressed {
		fill, text = style.Stroke, style.Fill
	}
	canvas.DrawRect(bounds, style.CornerRadius, graphics.Fill(fill))
	canvas.DrawRect(bounds, style.CornerRadius, style.StrokePaint())

	center := bounds.Center()
	baseline := graphics.Offset{X: center.X, Y: center.Y + style.Font.Size*0.35}
	canvas.DrawText(b.Label, baseline, graphics.AnchorMiddle, style.Font, text)
}

func (b *Button) HandleInput(ev input.Event) bool {
	switch ev.Kind {
	case input.Press:
		if !b.Bounds().Contains(ev.Position) {
			return false
		}
		b.pressed = true
		return true
	case input.Release:
		if !b.pressed {
			return false
		}
		b.pressed = false
		if b.Bounds().Contains(ev.Position) && b.OnTap != nil {
			b.OnTap()
		}
		return true
	}
	return false
}
