package widgets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-cockpit/cockpit/pkg/errors"
	"github.com/go-cockpit/cockpit/pkg/graphics"
	"github.com/go-cockpit/cockpit/pkg/input"
	"github.com/go-cockpit/cockpit/pkg/scene"
	"github.com/go-cockpit/cockpit/pkg/texcache"
)

const carouselThumbs = 3

// Carousel browses the images in a directory as a filmstrip of
// thumbnails with one selected entry. ToggleZoom swaps the strip for a
// full-size view of the selection. Decoded thumbnails come from a
// shared texture cache.
type Carousel struct {
	scene.WidgetBase

	cache    *texcache.Cache
	dir      string
	paths    []string
	selected int
	zoomed   bool
}

// NewCarousel creates a carousel over the PNG and JPEG files in dir,
// newest first. An unreadable directory yields an empty carousel and an
// error; the widget still draws its frame.
func NewCarousel(bounds graphics.Rect, style graphics.Style, cache *texcache.Cache, dir string) (*Carousel, error) {
	c := &Carousel{cache: cache, dir: dir}
	c.InitBase(bounds, style)
	err := c.Refresh()
	return c, err
}

// Refresh rescans the directory. The selection is preserved by index
// where possible.
func (c *Carousel) Refresh() error {
	const op = "widgets.Carousel.Refresh"
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		c.paths = nil
		c.selected = 0
		return errors.E(op, errors.KindDecode, err)
	}

	type file struct {
		path string
		mod  int64
	}
	var files []file
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
		default:
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, file{
			path: filepath.Join(c.dir, e.Name()),
			mod:  info.ModTime().UnixNano(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mod > files[j].mod })

	c.paths = c.paths[:0]
	for _, f := range files {
		c.paths = append(c.paths, f.path)
	}
	if c.selected >= len(c.paths) {
		c.selected = 0
	}
	return nil
}

// TurnLeft moves the selection one entry back, wrapping around.
func (c *Carousel) TurnLeft() {
	if len(c.paths) == 0 {
		return
	}
	c.selected = (c.selected - 1 + len(c.paths)) % len(c.paths)
}

// TurnRight moves the selection one entry forward, wrapping around.
func (c *Carousel) TurnRight() {
	if len(c.paths) == 0 {
		return
	}
	c.selected = (c.selected + 1) % len(c.paths)
}

// ToggleZoom switches between the filmstrip and the full-size view.
func (c *Carousel) ToggleZoom() {
	c.zoomed = !c.zoomed
}

// Selected returns the path of the selected image, or "" when the
// carousel is empty.
func (c *Carousel) Selected() string {
	if len(c.paths) == 0 {
		return ""
	}
	return c.paths[c.selected]
}

// Len returns the number of images in the carousel.
func (c *Carousel) Len() int { return len(c.paths) }

// Zoomed reports whether the full-size view is active.
func (c *Carousel) Zoomed() bool { return c.zoomed }

func (c *Carousel) Layout(bounds graphics.Rect) {}

func (c *Carousel) Draw(canvas graphics.Canvas) {
	style := c.Style()
	bounds := c.Bounds()

	canvas.DrawRect(bounds, style.CornerRadius, style.FillPaint())
	canvas.DrawRect(bounds, style.CornerRadius, style.StrokePaint())

	if len(c.paths) == 0 {
		canvas.DrawText("NO IMAGES", graphics.Offset{
			X: bounds.Center().X,
			Y: bounds.Center().Y + style.Font.Size*0.35,
		}, graphics.AnchorMiddle, style.Font, style.Stroke)
		return
	}

	if c.zoomed {
		c.drawImage(canvas, c.paths[c.selected], bounds.Inset(2), style)
		return
	}

	// Filmstrip: selected entry centered, neighbors beside it.
	inner := bounds.Inset(4)
	gap := 4.0
	thumbW := (inner.Width - gap*(carouselThumbs-1)) / carouselThumbs
	for i := 0; i < carouselThumbs; i++ {
		idx := (c.selected + i - carouselThumbs/2 + len(c.paths)) % len(c.paths)
		cell := graphics.Rect{
			X: inner.X + float64(i)*(thumbW+gap), Y: inner.Y,
			Width: thumbW, Height: inner.Height,
		}
		c.drawImage(canvas, c.paths[idx], cell, style)
		if i == carouselThumbs/2 {
			canvas.DrawRect(cell, 0, graphics.Stroke(style.Stroke, style.StrokeWidth+1))
		}
	}
}

func (c *Carousel) drawImage(canvas graphics.Canvas, path string, dst graphics.Rect, style graphics.Style) {
	img, err := c.cache.Load(path, int(dst.Width), int(dst.Height))
	if err != nil {
		canvas.DrawRect(dst, 0, graphics.Stroke(style.Stroke.WithAlphaF(0.4), 1))
		return
	}
	canvas.DrawImage(img, dst)
}

func (c *Carousel) HandleInput(ev input.Event) bool {
	if ev.Kind != input.Press || !c.Bounds().Contains(ev.Position) {
		return false
	}
	// Left third pages back, right third forward, the middle zooms.
	bounds := c.Bounds()
	third := bounds.Width / 3
	switch {
	case ev.Position.X < bounds.X+third:
		c.TurnLeft()
	case ev.Position.X > bounds.Right()-third:
		c.TurnRight()
	default:
		c.ToggleZoom()
	}
	return true
}
