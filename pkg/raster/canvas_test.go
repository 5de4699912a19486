package raster

import (
	"image"
	"testing"

	"github.com/go-cockpit/cockpit/pkg/graphics"
)

func pixel(c *Canvas, x, y int) (r, g, b, a uint8) {
	px := c.Image().RGBAAt(x, y)
	return px.R, px.G, px.B, px.A
}

func TestClearFillsImage(t *testing.T) {
	c := New(10, 10)
	c.Clear(graphics.ColorRed)
	r, _, _, a := pixel(c, 5, 5)
	if r != 255 || a != 255 {
		t.Errorf("center pixel after clear: r=%d a=%d, want opaque red", r, a)
	}
	r, _, _, _ = pixel(c, 0, 0)
	if r != 255 {
		t.Error("corner pixel not cleared")
	}
}

func TestDrawRectFill(t *testing.T) {
	c := New(20, 20)
	c.Clear(graphics.ColorBlack)
	c.DrawRect(graphics.Rect{X: 5, Y: 5, Width: 10, Height: 10}, 0, graphics.Fill(graphics.ColorGreen))

	_, g, _, _ := pixel(c, 10, 10)
	if g != 255 {
		t.Errorf("inside pixel: g=%d, want 255", g)
	}
	_, g, _, _ = pixel(c, 2, 2)
	if g != 0 {
		t.Errorf("outside pixel: g=%d, want 0", g)
	}
}

func TestDrawRectStrokeLeavesInterior(t *testing.T) {
	c := New(30, 30)
	c.Clear(graphics.ColorBlack)
	c.DrawRect(graphics.Rect{X: 5, Y: 5, Width: 20, Height: 20}, 0, graphics.Stroke(graphics.ColorWhite, 2))

	r, _, _, _ := pixel(c, 15, 15)
	if r != 0 {
		t.Errorf("interior pixel: r=%d, want 0", r)
	}
	r, _, _, _ = pixel(c, 15, 5)
	if r == 0 {
		t.Error("edge pixel not stroked")
	}
}

func TestDrawCircleFill(t *testing.T) {
	c := New(40, 40)
	c.Clear(graphics.ColorBlack)
	c.DrawCircle(graphics.Offset{X: 20, Y: 20}, 10, graphics.Fill(graphics.ColorBlue))

	_, _, b, _ := pixel(c, 20, 20)
	if b != 255 {
		t.Errorf("center pixel: b=%d, want 255", b)
	}
	_, _, b, _ = pixel(c, 2, 2)
	if b != 0 {
		t.Errorf("far corner pixel: b=%d, want 0", b)
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := New(20, 20)
	c.Clear(graphics.ColorBlack)
	c.DrawLine(graphics.Offset{X: 2, Y: 10}, graphics.Offset{X: 18, Y: 10}, graphics.Stroke(graphics.ColorWhite, 2))

	r, _, _, _ := pixel(c, 10, 10)
	if r == 0 {
		t.Error("pixel on the line not drawn")
	}
	r, _, _, _ = pixel(c, 10, 2)
	if r != 0 {
		t.Error("pixel far from the line was drawn")
	}
}

func TestTranslateOffsetsDrawing(t *testing.T) {
	c := New(20, 20)
	c.Clear(graphics.ColorBlack)

	c.Save()
	c.Translate(10, 10)
	c.DrawRect(graphics.Rect{X: 0, Y: 0, Width: 5, Height: 5}, 0, graphics.Fill(graphics.ColorWhite))
	c.Restore()

	r, _, _, _ := pixel(c, 12, 12)
	if r != 255 {
		t.Errorf("translated pixel: r=%d, want 255", r)
	}
	r, _, _, _ = pixel(c, 2, 2)
	if r != 0 {
		t.Error("untranslated position was drawn")
	}

	// After Restore the offset is gone.
	c.DrawRect(graphics.Rect{X: 0, Y: 0, Width: 2, Height: 2}, 0, graphics.Fill(graphics.ColorWhite))
	r, _, _, _ = pixel(c, 0, 0)
	if r != 255 {
		t.Error("offset survived Restore")
	}
}

func TestDrawImageScales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}

	c := New(20, 20)
	c.Clear(graphics.ColorBlack)
	c.DrawImage(src, graphics.Rect{X: 4, Y: 4, Width: 10, Height: 10})

	r, _, _, _ := pixel(c, 9, 9)
	if r != 255 {
		t.Errorf("scaled image pixel: r=%d, want 255", r)
	}
}

func TestDrawTextRenders(t *testing.T) {
	c := New(100, 30)
	c.Clear(graphics.ColorBlack)
	c.DrawText("N", graphics.Offset{X: 50, Y: 20}, graphics.AnchorMiddle,
		graphics.FontRef{Family: "mono", Size: 12}, graphics.ColorWhite)

	// Some pixel near the baseline must be lit.
	found := false
	for y := 5; y < 25 && !found; y++ {
		for x := 40; x < 60; x++ {
			if r, _, _, _ := pixel(c, x, y); r != 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no pixels drawn for text")
	}
}

func TestCanvasSize(t *testing.T) {
	c := New(64, 48)
	size := c.Size()
	if size.Width != 64 || size.Height != 48 {
		t.Errorf("size: got %+v, want 64x48", size)
	}
}
