package scene

import (
	"testing"

	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
)

// probe is a minimal widget that records every call made to it.
type probe struct {
	WidgetBase
	layouts int
	draws   int
	events  []input.Event
	onInput func(ev input.Event) bool
}

func newProbe(bounds graphics.Rect) *probe {
	p := &probe{}
	p.InitBase(bounds, graphics.Style{})
	return p
}

func (p *probe) Layout(bounds graphics.Rect) { p.layouts++ }

func (p *probe) Draw(canvas graphics.Canvas) {
	p.draws++
	canvas.DrawRect(p.Bounds(), 0, graphics.Fill(graphics.ColorWhite))
}

func (p *probe) HandleInput(ev input.Event) bool {
	p.events = append(p.events, ev)
	if p.onInput != nil {
		return p.onInput(ev)
	}
	return true
}

func pressAt(x, y float64) input.Event {
	return input.Event{Kind: input.Press, Position: graphics.Offset{X: x, Y: y}}
}

func moveTo(x, y float64) input.Event {
	return input.Event{Kind: input.Move, Position: graphics.Offset{X: x, Y: y}}
}

func releaseAt(x, y float64) input.Event {
	return input.Event{Kind: input.Release, Position: graphics.Offset{X: x, Y: y}}
}

func drawOps(t *Tree) []graphics.Op {
	var rec graphics.PictureRecorder
	canvas := rec.BeginRecording(graphics.Size{Width: 800, Height: 600})
	t.DrawFrame(canvas)
	return rec.EndRecording().Ops()
}

func TestInsertAssignsUniqueIDsAndLaysOut(t *testing.T) {
	tree := NewTree(Config{})
	a := newProbe(graphics.Rect{Width: 10, Height: 10})
	b := newProbe(graphics.Rect{Width: 10, Height: 10})

	idA := tree.Insert(a)
	idB := tree.Insert(b)
	if idA == idB || idA == NoWidget || idB == NoWidget {
		t.Fatalf("ids not unique: %v %v", idA, idB)
	}
	if a.layouts != 1 || b.layouts != 1 {
		t.Fatalf("layout should run once on insert, got %d and %d", a.layouts, b.layouts)
	}
}

func TestLayoutRunsOnlyOnBoundsChange(t *testing.T) {
	tree := NewTree(Config{})
	p := newProbe(graphics.Rect{Width: 10, Height: 10})
	id := tree.Insert(p)

	for i := 0; i < 3; i++ {
		drawOps(tree)
	}
	if p.layouts != 1 {
		t.Fatalf("draw frames must not re-run layout, got %d", p.layouts)
	}

	tree.SetBounds(id, graphics.Rect{X: 5, Y: 5, Width: 20, Height: 20})
	if p.layouts != 2 {
		t.Fatalf("bounds change should re-run layout, got %d", p.layouts)
	}
}

func TestSetBoundsClampsNegativeDimensions(t *testing.T) {
	tree := NewTree(Config{})
	p := newProbe(graphics.Rect{Width: 10, Height: 10})
	id := tree.Insert(p)

	tree.SetBounds(id, graphics.Rect{X: 1, Y: 2, Width: -5, Height: -5})
	b := p.Bounds()
	if b.Width != 0 || b.Height != 0 {
		t.Fatalf("negative dimensions must clamp to zero, got %+v", b)
	}
}

func TestDrawFrameSkipsInvisible(t *testing.T) {
	tree := NewTree(Config{})
	shown := newProbe(graphics.Rect{Width: 10, Height: 10})
	hidden := newProbe(graphics.Rect{Width: 10, Height: 10})
	hidden.SetVisible(false)
	tree.Insert(shown)
	tree.Insert(hidden)

	drawOps(tree)
	if shown.draws != 1 {
		t.Fatalf("visible widget not drawn")
	}
	if hidden.draws != 0 {
		t.Fatalf("invisible widget must be skipped entirely")
	}
}

func TestDrawOrderAscendingZStable(t *testing.T) {
	tree := NewTree(Config{})
	first := newProbe(graphics.Rect{Width: 10, Height: 10})
	second := newProbe(graphics.Rect{Width: 10, Height: 10})
	top := newProbe(graphics.Rect{Width: 10, Height: 10})
	idFirst := tree.Insert(first)
	tree.Insert(second)
	idTop := tree.Insert(top)
	tree.SetZ(idTop, 5)

	var orderSeen []*probe
	for _, e := range tree.drawOrder() {
		orderSeen = append(orderSeen, e.w.(*probe))
	}
	if orderSeen[0] != first || orderSeen[1] != second || orderSeen[2] != top {
		t.Fatalf("wrong draw order")
	}

	// Raising first above everything reorders; second keeps its slot by
	// insertion order among equal z.
	tree.SetZ(idFirst, 9)
	order := tree.drawOrder()
	if order[len(order)-1].w.(*probe) != first {
		t.Fatalf("widget with highest z must draw last")
	}
}

func TestDispatchHitsTopmost(t *testing.T) {
	tree := NewTree(Config{})
	bottom := newProbe(graphics.Rect{Width: 100, Height: 100})
	top := newProbe(graphics.Rect{Width: 100, Height: 100})
	tree.Insert(bottom)
	idTop := tree.Insert(top)
	tree.SetZ(idTop, 1)

	got := tree.Dispatch(pressAt(50, 50))
	if got != idTop {
		t.Fatalf("press went to %v, want topmost %v", got, idTop)
	}
	if len(bottom.events) != 0 {
		t.Fatalf("occluded widget must not receive the event")
	}
	if len(top.events) != 1 {
		t.Fatalf("topmost widget should receive exactly one event")
	}
}

func TestDispatchMissIsDropped(t *testing.T) {
	tree := NewTree(Config{})
	p := newProbe(graphics.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	tree.Insert(p)

	if got := tree.Dispatch(pressAt(500, 500)); got != NoWidget {
		t.Fatalf("miss should return NoWidget, got %v", got)
	}
	if len(p.events) != 0 {
		t.Fatalf("missed widget received an event")
	}
}

func TestDisabledWidgetDrawsButNeverReceivesInput(t *testing.T) {
	tree := NewTree(Config{})
	under := newProbe(graphics.Rect{Width: 100, Height: 100})
	over := newProbe(graphics.Rect{Width: 100, Height: 100})
	tree.Insert(under)
	idOver := tree.Insert(over)
	tree.SetZ(idOver, 1)
	over.SetEnabled(false)

	drawOps(tree)
	if over.draws != 1 {
		t.Fatalf("disabled widget must still draw")
	}

	got := tree.Dispatch(pressAt(50, 50))
	if len(over.events) != 0 {
		t.Fatalf("disabled widget received input")
	}
	if got == idOver {
		t.Fatalf("dispatch targeted the disabled widget")
	}
	if len(under.events) != 1 {
		t.Fatalf("event should fall through to the widget underneath")
	}
}

func TestDragCaptureFollowsPressTarget(t *testing.T) {
	tree := NewTree(Config{})
	w := newProbe(graphics.Rect{X: 0, Y: 0, Width: 50, Height: 50})
	other := newProbe(graphics.Rect{X: 100, Y: 0, Width: 50, Height: 50})
	idW := tree.Insert(w)
	tree.Insert(other)

	tree.Dispatch(pressAt(25, 25))
	if tree.Captured() != idW {
		t.Fatalf("press should establish capture")
	}

	// Pointer leaves w and crosses over 'other'.
	if got := tree.Dispatch(moveTo(120, 25)); got != idW {
		t.Fatalf("captured move went to %v", got)
	}
	if got := tree.Dispatch(releaseAt(120, 25)); got != idW {
		t.Fatalf("captured release went to %v", got)
	}
	if tree.Captured() != NoWidget {
		t.Fatalf("release must end capture")
	}

	if len(other.events) != 0 {
		t.Fatalf("no other widget may receive captured events")
	}
	if len(w.events) != 3 {
		t.Fatalf("capture target received %d events, want 3", len(w.events))
	}

	// After release, moves route normally again.
	tree.Dispatch(moveTo(120, 25))
	if len(other.events) != 1 {
		t.Fatalf("post-release move should hit the widget under the pointer")
	}
}

func TestSelfRemovalDuringDispatchIsDeferred(t *testing.T) {
	tree := NewTree(Config{})
	var id WidgetID
	w := newProbe(graphics.Rect{Width: 50, Height: 50})
	w.onInput = func(ev input.Event) bool {
		tree.Remove(id) // removing the widget currently handling the event
		return true
	}
	id = tree.Insert(w)

	tree.Dispatch(pressAt(10, 10))

	if _, ok := tree.Widget(id); ok {
		t.Fatalf("widget should be gone once the pass returned")
	}
	drawOps(tree)
	if w.draws != 0 {
		t.Fatalf("removed widget must be absent from the next frame")
	}
	if tree.Captured() != NoWidget {
		t.Fatalf("removing the press target must release capture")
	}
}

func TestInsertDuringDrawIsDeferred(t *testing.T) {
	tree := NewTree(Config{})
	late := newProbe(graphics.Rect{Width: 10, Height: 10})
	var lateID WidgetID
	w := &insertingWidget{tree: tree, late: late, lateID: &lateID}
	w.InitBase(graphics.Rect{Width: 10, Height: 10}, graphics.Style{})
	tree.Insert(w)

	drawOps(tree)
	if late.draws != 0 {
		t.Fatalf("widget inserted mid-frame must not draw this frame")
	}
	if _, ok := tree.Widget(lateID); !ok {
		t.Fatalf("deferred insert should have been applied after the pass")
	}
	drawOps(tree)
	if late.draws != 1 {
		t.Fatalf("deferred widget should draw on the following frame")
	}
}

type insertingWidget struct {
	WidgetBase
	tree     *Tree
	late     Widget
	lateID   *WidgetID
	inserted bool
}

func (w *insertingWidget) Layout(bounds graphics.Rect) {}

func (w *insertingWidget) Draw(canvas graphics.Canvas) {
	if !w.inserted {
		*w.lateID = w.tree.Insert(w.late)
		w.inserted = true
	}
}

func (w *insertingWidget) HandleInput(ev input.Event) bool { return false }

func TestDanglingIDsAreNoOps(t *testing.T) {
	tree := NewTree(Config{})
	if tree.Remove(WidgetID(42)) {
		t.Fatalf("Remove of unknown id should report false")
	}
	if tree.SetBounds(WidgetID(42), graphics.Rect{Width: 1, Height: 1}) {
		t.Fatalf("SetBounds of unknown id should report false")
	}
	if tree.SetZ(WidgetID(42), 3) {
		t.Fatalf("SetZ of unknown id should report false")
	}
}

func TestDispatchNormalizesAgainstTreeOrigin(t *testing.T) {
	tree := NewTree(Config{Origin: graphics.Offset{X: 100, Y: 50}})
	w := newProbe(graphics.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	id := tree.Insert(w)

	// Screen position (105, 55) is tree-local (5, 5).
	if got := tree.Dispatch(pressAt(105, 55)); got != id {
		t.Fatalf("event at the tree origin offset missed")
	}
	if w.events[0].Position.X != 5 || w.events[0].Position.Y != 5 {
		t.Fatalf("delivered position = %+v, want tree-local (5, 5)", w.events[0].Position)
	}
}

func TestDrawFrameTranslatesByOrigin(t *testing.T) {
	tree := NewTree(Config{Origin: graphics.Offset{X: 30, Y: 40}})
	tree.Insert(newProbe(graphics.Rect{Width: 10, Height: 10}))

	ops := drawOps(tree)
	if len(ops) < 2 {
		t.Fatalf("expected save+translate prologue, got %d ops", len(ops))
	}
	tr, ok := ops[1].(graphics.OpTranslate)
	if !ok || tr.Dx != 30 || tr.Dy != 40 {
		t.Fatalf("second op should translate by the origin, got %+v", ops[1])
	}
}

func TestDefaultStyleAppliedToUnstyledWidgets(t *testing.T) {
	def := graphics.Style{Fill: graphics.ColorRed, StrokeWidth: 2}
	tree := NewTree(Config{DefaultStyle: def})

	unstyled := newProbe(graphics.Rect{Width: 10, Height: 10})
	tree.Insert(unstyled)
	if unstyled.Style() != def {
		t.Fatalf("zero-style widget should pick up the tree default")
	}

	own := graphics.Style{Fill: graphics.ColorBlue}
	styled := &probe{}
	styled.InitBase(graphics.Rect{Width: 10, Height: 10}, own)
	tree.Insert(styled)
	if styled.Style() != own {
		t.Fatalf("explicit style must survive insertion")
	}
}

func TestPanickingWidgetDoesNotBreakTheFrame(t *testing.T) {
	tree := NewTree(Config{})
	bad := newProbe(graphics.Rect{Width: 50, Height: 50})
	bad.onInput = func(ev input.Event) bool { panic("bad widget") }
	good := newProbe(graphics.Rect{X: 60, Y: 0, Width: 50, Height: 50})
	tree.Insert(bad)
	tree.Insert(good)

	tree.Dispatch(pressAt(10, 10)) // must not propagate the panic
	if got := tree.Dispatch(releaseAt(10, 10)); got == NoWidget {
		t.Fatalf("dispatch should keep working after a widget panic")
	}
	drawOps(tree)
}
