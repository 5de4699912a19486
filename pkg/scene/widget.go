// Package scene owns the widget tree: z-ordered drawing, input routing with
// pointer capture, and deferred structural mutation so the iteration set
// stays stable for the duration of a pass.
package scene

import (
	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
)

// WidgetID identifies a widget within a Tree. Ids are unique for the life
// of the tree and never reused.
type WidgetID int64

// NoWidget is the zero WidgetID, returned when no widget was hit.
const NoWidget WidgetID = 0

// Widget is the capability set every concrete widget implements. A widget
// owns its kind-specific state; it never holds a reference to another
// widget. Cross-widget communication goes through telemetry setters or
// tree-level coordination.
type Widget interface {
	// Base returns the embedded common state (bounds, style, z, flags).
	Base() *WidgetBase

	// Layout recomputes internal geometry from the given bounds. The tree
	// calls it on insertion and whenever bounds change, never per frame.
	Layout(bounds graphics.Rect)

	// Draw issues primitive calls against the canvas. Draw must not
	// mutate value state.
	Draw(canvas graphics.Canvas)

	// HandleInput reacts to a tree-local pointer event and reports whether
	// it was consumed.
	HandleInput(ev input.Event) bool
}

// WidgetBase holds the state common to all widgets. Concrete widgets embed
// it and the tree manipulates it through the Widget interface.
//
// The zero value is visible and enabled with empty bounds.
type WidgetBase struct {
	bounds   graphics.Rect
	style    graphics.Style
	z        int
	hidden   bool
	disabled bool
}

// Base returns the widget base itself, satisfying the Widget interface for
// embedders.
func (b *WidgetBase) Base() *WidgetBase { return b }

// Bounds returns the widget's tree-local bounds.
func (b *WidgetBase) Bounds() graphics.Rect { return b.bounds }

// Style returns the widget's style.
func (b *WidgetBase) Style() graphics.Style { return b.style }

// SetStyle replaces the widget's style wholesale.
func (b *WidgetBase) SetStyle(s graphics.Style) { b.style = s }

// Z returns the widget's z-order. Higher z draws later and hit-tests first.
func (b *WidgetBase) Z() int { return b.z }

// Visible reports whether the widget is drawn.
func (b *WidgetBase) Visible() bool { return !b.hidden }

// SetVisible shows or hides the widget. A hidden widget is skipped
// entirely during the draw pass and during hit testing.
func (b *WidgetBase) SetVisible(v bool) { b.hidden = !v }

// Enabled reports whether the widget receives input.
func (b *WidgetBase) Enabled() bool { return !b.disabled }

// SetEnabled toggles input delivery. A disabled widget still draws but is
// skipped during hit testing.
func (b *WidgetBase) SetEnabled(v bool) { b.disabled = !v }

// setBounds stores new bounds, clamping negative dimensions to zero.
// Only the tree and widget constructors call this; layout follows.
func (b *WidgetBase) setBounds(r graphics.Rect) {
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	b.bounds = r
}

// setZ stores a new z-order value.
func (b *WidgetBase) setZ(z int) { b.z = z }

// InitBase seeds bounds and style at construction time, before the widget
// joins a tree. Concrete widget constructors call this.
func (b *WidgetBase) InitBase(bounds graphics.Rect, style graphics.Style) {
	b.setBounds(bounds)
	b.style = style
}
