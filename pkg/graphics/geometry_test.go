package graphics

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"center", Offset{X: 25, Y: 40}, true},
		{"top-left edge inclusive", Offset{X: 10, Y: 20}, true},
		{"right edge exclusive", Offset{X: 40, Y: 40}, false},
		{"bottom edge exclusive", Offset{X: 25, Y: 60}, false},
		{"outside left", Offset{X: 9, Y: 40}, false},
		{"outside above", Offset{X: 25, Y: 19}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Fatalf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(Offset{X: 50, Y: 50}, 20, 10)
	if r.X != 40 || r.Y != 45 || r.Width != 20 || r.Height != 10 {
		t.Fatalf("unexpected rect: %+v", r)
	}
	if c := r.Center(); !floatEqual(c.X, 50) || !floatEqual(c.Y, 50) {
		t.Fatalf("center moved: %+v", c)
	}
}

func TestRectInsetClampsToEmpty(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	inset := r.Inset(20)
	if !inset.IsEmpty() {
		t.Fatalf("expected empty rect, got %+v", inset)
	}
	if c := inset.Center(); !floatEqual(c.X, 5) || !floatEqual(c.Y, 5) {
		t.Fatalf("inset should stay centered, got %+v", c)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got := a.Intersect(b)
	want := Rect{X: 5, Y: 5, Width: 5, Height: 5}
	if got != want {
		t.Fatalf("Intersect = %+v, want %+v", got, want)
	}

	c := Rect{X: 20, Y: 20, Width: 5, Height: 5}
	if !a.Intersect(c).IsEmpty() {
		t.Fatalf("disjoint rects should intersect to empty")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
