package widgets

import (
	"image"

	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
)

// VideoFeed displays the latest camera frame scaled to its bounds. With
// no frame yet it draws a "NO SIGNAL" placeholder.
type VideoFeed struct {
	scene.WidgetBase

	frame *image.RGBA
}

// NewVideoFeed creates a feed with no frame.
func NewVideoFeed(bounds graphics.Rect, style graphics.Style) *VideoFeed {
	v := &VideoFeed{}
	v.InitBase(bounds, style)
	return v
}

// SetFrameRGB replaces the current frame with packed 24-bit RGB pixel
// data, row-major, width*height*3 bytes. Short buffers leave the
// remaining pixels black. The data is copied, so the caller may reuse
// the buffer.
func (v *VideoFeed) SetFrameRGB(data []byte, width, height int) {
	if width <= 0 || height <= 0 {
		v.frame = nil
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	n := len(data) / 3
	if max := width * height; n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		o := i * 4
		img.Pix[o+0] = data[i*3+0]
		img.Pix[o+1] = data[i*3+1]
		img.Pix[o+2] = data[i*3+2]
		img.Pix[o+3] = 0xFF
	}
	v.frame = img
}

// SetFrame replaces the current frame. Nil clears it.
func (v *VideoFeed) SetFrame(img *image.RGBA) { v.frame = img }

// Frame returns the current frame, which may be nil.
func (v *VideoFeed) Frame() *image.RGBA { return v.frame }

func (v *VideoFeed) Layout(bounds graphics.Rect) {}

func (v *VideoFeed) Draw(canvas graphics.Canvas) {
	style := v.Style()
	bounds := v.Bounds()

	if v.frame == nil {
		canvas.DrawRect(bounds, style.CornerRadius, graphics.Fill(graphics.ColorBlack))
		canvas.DrawRect(bounds, style.CornerRadius, style.StrokePaint())
		canvas.DrawText("NO SIGNAL", graphics.Offset{
			X: bounds.Center().X,
			Y: bounds.Center().Y + style.Font.Size*0.35,
		}, graphics.AnchorMiddle, style.Font, style.Stroke)
		return
	}
	canvas.DrawImage(v.frame, bounds)
	canvas.DrawRect(bounds, style.CornerRadius, style.StrokePaint())
}

// HandleInput is a no-op: the feed is display only.
func (v *VideoFeed) HandleInput(ev input.Event) bool { return false }
