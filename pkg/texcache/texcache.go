// Package texcache caches decoded images scaled to a target size, so a
// widget redrawing every frame does not decode and rescale the same
// file each time. Entries are invalidated when the file's modification
// time changes.
package texcache

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/go-cockpit/cockpit/pkg/errors"
)

type key struct {
	path string
	w, h int
}

type entry struct {
	img     *image.RGBA
	modTime time.Time
}

// Cache is a concurrency-safe scaled-image cache. The zero value is not
// usable; call New.
type Cache struct {
	mu      sync.Mutex
	entries map[key]entry
}

func New() *Cache {
	return &Cache{entries: make(map[key]entry)}
}

// Load returns the image at path scaled to w by h pixels, decoding and
// scaling only when the cache has no fresh entry.
func (c *Cache) Load(path string, w, h int) (*image.RGBA, error) {
	const op = "texcache.Load"
	if w <= 0 || h <= 0 {
		return nil, errors.E(op, errors.KindDecode, fmt.Errorf("invalid target size %dx%d", w, h))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.E(op, errors.KindDecode, err)
	}

	k := key{path: path, w: w, h: h}
	c.mu.Lock()
	if e, ok := c.entries[k]; ok && e.modTime.Equal(info.ModTime()) {
		c.mu.Unlock()
		return e.img, nil
	}
	c.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.E(op, errors.KindDecode, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.E(op, errors.KindDecode, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	c.mu.Lock()
	c.entries[k] = entry{img: dst, modTime: info.ModTime()}
	c.mu.Unlock()
	return dst, nil
}

// Purge drops all cached entries.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.entries = make(map[key]entry)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
