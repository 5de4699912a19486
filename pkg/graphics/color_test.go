package graphics

import "testing"

func TestColorComponents(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	r, g, b, a := c.Components()
	if r != 0x12 || g != 0x34 || b != 0x56 || a != 0x78 {
		t.Fatalf("Components() = %x %x %x %x", r, g, b, a)
	}
}

func TestColorWithAlphaF(t *testing.T) {
	c := ColorWhite.WithAlphaF(0.5)
	_, _, _, a := c.Components()
	if a != 127 {
		t.Fatalf("alpha = %d, want 127", a)
	}
	if _, _, _, a := ColorRed.WithAlphaF(2.0).Components(); a != 255 {
		t.Fatalf("alpha should clamp high, got %d", a)
	}
	if _, _, _, a := ColorRed.WithAlphaF(-1.0).Components(); a != 0 {
		t.Fatalf("alpha should clamp low, got %d", a)
	}
}

func TestColorLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"at zero", 0, ColorBlack},
		{"at one", 1, ColorWhite},
		{"clamped below", -1, ColorBlack},
		{"clamped above", 2, ColorWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorBlack.Lerp(ColorWhite, tt.t); got != tt.want {
				t.Fatalf("Lerp(%v) = %08x, want %08x", tt.t, uint32(got), uint32(tt.want))
			}
		})
	}

	mid := ColorBlack.Lerp(ColorWhite, 0.5)
	r, g, b, _ := mid.Components()
	if r != 127 || g != 127 || b != 127 {
		t.Fatalf("midpoint = %08x", uint32(mid))
	}
}

func TestDisplayListRecordsAndReplays(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 100, Height: 100})
	canvas.Clear(ColorBlack)
	canvas.DrawLine(Offset{}, Offset{X: 10, Y: 10}, Stroke(ColorWhite, 2))
	canvas.DrawCircle(Offset{X: 50, Y: 50}, 10, Fill(ColorRed))
	list := rec.EndRecording()

	if len(list.Ops()) != 3 {
		t.Fatalf("recorded %d ops, want 3", len(list.Ops()))
	}

	var replay PictureRecorder
	target := replay.BeginRecording(list.Size())
	list.Replay(target)
	if got := len(replay.EndRecording().Ops()); got != 3 {
		t.Fatalf("replayed %d ops, want 3", got)
	}
}
