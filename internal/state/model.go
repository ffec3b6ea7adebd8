package state

import (
	"image"
)

const (
	DefaultStickerX      = 50
	DefaultStickerY      = 50
	DefaultStickerWidth  = 100
	DefaultStickerHeight = 100

	// DefaultSurfaceWidth and DefaultSurfaceHeight size the surface until a
	// base image is loaded.
	DefaultSurfaceWidth  = 300
	DefaultSurfaceHeight = 150
)

// Sticker is a decorative image placed on top of the base image. X and Y are
// the top-left corner in surface pixels; Width and Height are the display
// size and may differ from the bitmap's own size (or be negative).
type Sticker struct {
	ID     string
	Image  image.Image
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bounds is the sticker's hit-test box.
func (s Sticker) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// Style is shared by both captions. Values are kept as entered; the renderer
// decides how to fall back on empty or invalid ones.
type Style struct {
	FontSize   int    // 0 means unset
	FontColor  string // empty means unset
	Background string // empty means unset
}

// Frame is an immutable copy of everything the renderer needs.
type Frame struct {
	Base     image.Image
	Width    int
	Height   int
	Top      string
	Bottom   string
	Style    Style
	Stickers []Sticker
}
