package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas is a Surface backed by an RGBA buffer and a gg context.
type Canvas struct {
	img   *image.RGBA
	dc    *gg.Context
	face  font.Face
	faces faceCache
}

var _ Surface = (*Canvas)(nil)

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{faces: make(faceCache)}
	c.Resize(width, height)
	return c
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the buffer; its content is lost.
func (c *Canvas) Resize(width, height int) {
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.dc = gg.NewContextForRGBA(c.img)
	if c.face != nil {
		c.dc.SetFontFace(c.face)
	}
}

// Clear makes every pixel transparent.
func (c *Canvas) Clear() {
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
}

// DrawImage scales img onto the box at (x, y). Negative sizes mirror the
// image around x or y; a zero size paints nothing.
func (c *Canvas) DrawImage(img image.Image, x, y, width, height float64) {
	b := img.Bounds()
	if b.Empty() || width == 0 || height == 0 {
		return
	}

	if width == float64(b.Dx()) && height == float64(b.Dy()) && x == math.Trunc(x) && y == math.Trunc(y) {
		c.dc.DrawImage(img, int(x), int(y))
		return
	}

	c.dc.Push()
	c.dc.Translate(x, y)
	c.dc.Scale(width/float64(b.Dx()), height/float64(b.Dy()))
	c.dc.DrawImage(img, 0, 0)
	c.dc.Pop()
}

func (c *Canvas) FillRect(col color.Color, x, y, width, height float64) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, width, height)
	c.dc.Fill()
}

func (c *Canvas) SetFont(size float64) error {
	face, err := c.faces.get(size)
	if err != nil {
		return err
	}
	c.face = face
	c.dc.SetFontFace(face)
	return nil
}

func (c *Canvas) MeasureText(s string) float64 {
	w, _ := c.dc.MeasureString(s)
	return w
}

func (c *Canvas) FillText(s string, col color.Color, x, y float64) {
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, 0.5, 0)
}

// StrokeText paints an outline of lineWidth pixels centered on the glyph
// edges, half inside and half outside, on top of whatever is below.
func (c *Canvas) StrokeText(s string, col color.Color, lineWidth, x, y float64) {
	if s == "" || c.face == nil {
		return
	}
	radius := int(math.Round(lineWidth / 2))
	if radius < 1 {
		radius = 1
	}

	textWidth := c.MeasureText(s)
	metrics := c.face.Metrics()
	pad := radius + 2
	box := image.Rect(
		int(math.Floor(x-textWidth/2))-pad,
		int(math.Floor(y))-metrics.Ascent.Ceil()-pad,
		int(math.Ceil(x+textWidth/2))+pad,
		int(math.Ceil(y))+metrics.Descent.Ceil()+pad,
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	glyphs := c.glyphMask(s, x, y, box)
	ring := image.NewAlpha(box)
	for py := box.Min.Y; py < box.Max.Y; py++ {
		for px := box.Min.X; px < box.Max.X; px++ {
			lo, hi := uint8(255), uint8(0)
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if dx*dx+dy*dy > radius*radius {
						continue
					}
					a := glyphs.RGBAAt(px+dx-box.Min.X, py+dy-box.Min.Y).A
					if a < lo {
						lo = a
					}
					if a > hi {
						hi = a
					}
				}
			}
			ring.SetAlpha(px, py, color.Alpha{A: hi - lo})
		}
	}

	draw.DrawMask(c.img, box, image.NewUniform(col), image.Point{}, ring, box.Min, draw.Over)
}

// glyphMask renders s in opaque white onto a scratch buffer covering box,
// translated so that box.Min is the buffer origin.
func (c *Canvas) glyphMask(s string, x, y float64, box image.Rectangle) *image.RGBA {
	scratch := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	mc := gg.NewContextForRGBA(scratch)
	mc.SetFontFace(c.face)
	mc.SetColor(color.White)
	mc.DrawStringAnchored(s, x-float64(box.Min.X), y-float64(box.Min.Y), 0.5, 0)
	return scratch
}

// Image returns the live buffer. Callers must not keep it across renders.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}
