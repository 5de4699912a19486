package graphics

import "image"

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation or inspected directly,
// which is how tests observe a draw pass without a real backend.
type DisplayList struct {
	ops  []Op
	size Size
}

// Replay executes the recorded operations onto the provided canvas.
func (d *DisplayList) Replay(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Ops returns the recorded operations in order.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []Op
	recording bool
	size      Size
}

// BeginRecording starts a new recording session and returns the canvas to
// draw into.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

func (r *PictureRecorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

// Op is a single recorded drawing operation.
type Op interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save()    { c.recorder.append(OpSave{}) }
func (c *recordingCanvas) Restore() { c.recorder.append(OpRestore{}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(OpTranslate{Dx: dx, Dy: dy})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(OpClear{Color: color})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.append(OpLine{Start: start, End: end, Paint: paint})
}

func (c *recordingCanvas) DrawRect(rect Rect, cornerRadius float64, paint Paint) {
	c.recorder.append(OpRect{Rect: rect, CornerRadius: cornerRadius, Paint: paint})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.append(OpCircle{Center: center, Radius: radius, Paint: paint})
}

func (c *recordingCanvas) DrawArc(center Offset, radius, startDeg, sweepDeg float64, paint Paint) {
	c.recorder.append(OpArc{Center: center, Radius: radius, StartDeg: startDeg, SweepDeg: sweepDeg, Paint: paint})
}

func (c *recordingCanvas) DrawText(text string, pos Offset, anchor TextAnchor, font FontRef, color Color) {
	c.recorder.append(OpText{Text: text, Pos: pos, Anchor: anchor, Font: font, Color: color})
}

func (c *recordingCanvas) DrawImage(img image.Image, dst Rect) {
	c.recorder.append(OpImage{Image: img, Dst: dst})
}

func (c *recordingCanvas) Size() Size { return c.size }

// OpSave records a Save call.
type OpSave struct{}

func (o OpSave) execute(canvas Canvas) { canvas.Save() }

// OpRestore records a Restore call.
type OpRestore struct{}

func (o OpRestore) execute(canvas Canvas) { canvas.Restore() }

// OpTranslate records a Translate call.
type OpTranslate struct {
	Dx, Dy float64
}

func (o OpTranslate) execute(canvas Canvas) { canvas.Translate(o.Dx, o.Dy) }

// OpClear records a Clear call.
type OpClear struct {
	Color Color
}

func (o OpClear) execute(canvas Canvas) { canvas.Clear(o.Color) }

// OpLine records a DrawLine call.
type OpLine struct {
	Start, End Offset
	Paint      Paint
}

func (o OpLine) execute(canvas Canvas) { canvas.DrawLine(o.Start, o.End, o.Paint) }

// OpRect records a DrawRect call.
type OpRect struct {
	Rect         Rect
	CornerRadius float64
	Paint        Paint
}

func (o OpRect) execute(canvas Canvas) { canvas.DrawRect(o.Rect, o.CornerRadius, o.Paint) }

// OpCircle records a DrawCircle call.
type OpCircle struct {
	Center Offset
	Radius float64
	Paint  Paint
}

func (o OpCircle) execute(canvas Canvas) { canvas.DrawCircle(o.Center, o.Radius, o.Paint) }

// OpArc records a DrawArc call.
type OpArc struct {
	Center             Offset
	Radius             float64
	StartDeg, SweepDeg float64
	Paint              Paint
}

func (o OpArc) execute(canvas Canvas) {
	canvas.DrawArc(o.Center, o.Radius, o.StartDeg, o.SweepDeg, o.Paint)
}

// OpText records a DrawText call.
type OpText struct {
	Text   string
	Pos    Offset
	Anchor TextAnchor
	Font   FontRef
	Color  Color
}

func (o OpText) execute(canvas Canvas) {
	canvas.DrawText(o.Text, o.Pos, o.Anchor, o.Font, o.Color)
}

// OpImage records a DrawImage call.
type OpImage struct {
	Image image.Image
	Dst   Rect
}

func (o OpImage) execute(canvas Canvas) { canvas.DrawImage(o.Image, o.Dst) }
