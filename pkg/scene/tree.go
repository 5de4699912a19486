package scene

import (
	"sort"

	"github.com/go-cockpit/cockpit/pkg/errors"
	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
)

// Config carries tree-construction options. DefaultStyle is applied to any
// widget inserted with a zero-value style, replacing the process-wide style
// singleton some toolkits keep.
type Config struct {
	// Origin is the tree's top-left corner in screen coordinates. The tree
	// subtracts it from incoming events and translates the canvas by it
	// once per frame; widgets never see it.
	Origin graphics.Offset
	// DefaultStyle is the style given to widgets inserted without one.
	DefaultStyle graphics.Style
}

type entry struct {
	id  WidgetID
	seq uint64
	w   Widget
}

// Tree owns the set of top-level widgets and drives the per-frame draw pass
// and input routing. It is single-threaded by contract: the driving loop
// calls Dispatch for each pending event and DrawFrame once per frame from
// the same goroutine, and telemetry setters run between frames on that
// goroutine too.
type Tree struct {
	origin       graphics.Offset
	defaultStyle graphics.Style

	entries []entry            // insertion order
	byID    map[WidgetID]Widget
	order   []entry // ascending z, ties by insertion; rebuilt when dirty
	dirty   bool

	nextID  WidgetID
	nextSeq uint64

	// locked is true while a draw or dispatch pass iterates the widget
	// set; structural mutations are deferred until the pass returns.
	locked   bool
	deferred []func()

	// captured receives Move/Release events after a Press hit it,
	// regardless of pointer position, until the Release arrives.
	captured WidgetID
}

// NewTree creates an empty widget tree.
func NewTree(cfg Config) *Tree {
	return &Tree{
		origin:       cfg.Origin,
		defaultStyle: cfg.DefaultStyle,
		byID:         map[WidgetID]Widget{},
	}
}

// Len returns the number of widgets currently in the tree.
func (t *Tree) Len() int { return len(t.entries) }

// Widget returns the widget with the given id, if present.
func (t *Tree) Widget(id WidgetID) (Widget, bool) {
	w, ok := t.byID[id]
	return w, ok
}

// Insert adds a widget and returns its id. The id is assigned immediately
// even when the insertion itself is deferred because a pass is active, so
// callers can always hold on to it. Default z equals insertion order
// behavior: all-zero z values draw in insertion order.
func (t *Tree) Insert(w Widget) WidgetID {
	t.nextID++
	id := t.nextID
	if t.locked {
		t.deferred = append(t.deferred, func() { t.insert(id, w) })
		return id
	}
	t.insert(id, w)
	return id
}

func (t *Tree) insert(id WidgetID, w Widget) {
	base := w.Base()
	if base.style == (graphics.Style{}) {
		base.style = t.defaultStyle
	}
	t.nextSeq++
	t.entries = append(t.entries, entry{id: id, seq: t.nextSeq, w: w})
	t.byID[id] = w
	t.dirty = true
	w.Layout(base.bounds)
}

// Remove takes a widget out of the tree. It reports whether the id was
// present; a dangling id is a no-op, never an error, so stale ids cannot
// interrupt the frame loop. During an active pass the removal is deferred
// to the end of the pass.
func (t *Tree) Remove(id WidgetID) bool {
	_, ok := t.byID[id]
	if !ok {
		return false
	}
	if t.locked {
		t.deferred = append(t.deferred, func() { t.remove(id) })
		return true
	}
	t.remove(id)
	return true
}

func (t *Tree) remove(id WidgetID) {
	if _, ok := t.byID[id]; !ok {
		return
	}
	delete(t.byID, id)
	for i := range t.entries {
		if t.entries[i].id == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			break
		}
	}
	t.dirty = true
	if t.captured == id {
		t.captured = NoWidget
	}
}

// SetBounds moves or resizes a widget and re-runs its layout. Negative
// dimensions are clamped to zero. Reports whether the id was present.
func (t *Tree) SetBounds(id WidgetID, bounds graphics.Rect) bool {
	w, ok := t.byID[id]
	if !ok {
		return false
	}
	base := w.Base()
	base.setBounds(bounds)
	w.Layout(base.bounds)
	return true
}

// SetZ changes a widget's z-order. Reports whether the id was present.
func (t *Tree) SetZ(id WidgetID, z int) bool {
	w, ok := t.byID[id]
	if !ok {
		return false
	}
	w.Base().setZ(z)
	t.dirty = true
	return true
}

// drawOrder returns the entries sorted ascending by z, ties broken by
// insertion order. The sort is recomputed only after structural or z
// changes, not per frame.
func (t *Tree) drawOrder() []entry {
	if t.dirty {
		t.order = append(t.order[:0], t.entries...)
		sort.SliceStable(t.order, func(i, j int) bool {
			return t.order[i].w.Base().z < t.order[j].w.Base().z
		})
		t.dirty = false
	}
	return t.order
}

// DrawFrame draws every visible widget in ascending z-order onto the
// canvas. The canvas is translated by the tree's screen origin for the
// whole pass, so widgets draw in tree-local coordinates. Invisible widgets
// are skipped entirely.
func (t *Tree) DrawFrame(canvas graphics.Canvas) {
	t.locked = true
	defer t.unlock()

	canvas.Save()
	canvas.Translate(t.origin.X, t.origin.Y)
	for _, e := range t.drawOrder() {
		if !e.w.Base().Visible() {
			continue
		}
		drawWidget(e.w, canvas)
	}
	canvas.Restore()
}

func drawWidget(w Widget, canvas graphics.Canvas) {
	defer errors.Recover("scene.DrawFrame")
	w.Draw(canvas)
}

// Dispatch normalizes a raw event to tree-local coordinates and routes it.
// While a press is captured, Move and Release events go to the capturing
// widget regardless of position; otherwise the topmost visible, enabled
// widget containing the position receives the event (first hit wins, at
// most one widget per event). A miss is dropped silently. The id of the
// receiving widget is returned, NoWidget on a drop.
func (t *Tree) Dispatch(raw input.Event) WidgetID {
	ev := input.Normalize(raw, t.origin)

	t.locked = true
	defer t.unlock()

	if t.captured != NoWidget && (ev.Kind == input.Move || ev.Kind == input.Release) {
		id := t.captured
		w, ok := t.byID[id]
		if !ok {
			t.captured = NoWidget
			return NoWidget
		}
		if ev.Kind == input.Release {
			t.captured = NoWidget
		}
		handleInput(w, ev)
		return id
	}

	order := t.drawOrder()
	for i := len(order) - 1; i >= 0; i-- {
		e := order[i]
		base := e.w.Base()
		if !base.Visible() || !base.Enabled() {
			continue
		}
		if !base.bounds.Contains(ev.Position) {
			continue
		}
		if ev.Kind == input.Press {
			t.captured = e.id
		}
		handleInput(e.w, ev)
		return e.id
	}
	return NoWidget
}

func handleInput(w Widget, ev input.Event) bool {
	defer errors.Recover("scene.Dispatch")
	return w.HandleInput(ev)
}

// Captured returns the id of the widget currently holding pointer capture,
// or NoWidget.
func (t *Tree) Captured() WidgetID { return t.captured }

// unlock ends a pass and applies the mutations queued during it.
func (t *Tree) unlock() {
	t.locked = false
	if len(t.deferred) == 0 {
		return
	}
	ops := t.deferred
	t.deferred = nil
	for _, op := range ops {
		op()
	}
}
