package render

import (
	"image"
	"image/color"
)

type op struct {
	kind  string
	text  string
	color color.Color
	x, y  float64
	w, h  float64
	img   image.Image
}

// recorder is a Surface that logs calls. Text is measured as 10px per byte.
type recorder struct {
	width, height int
	fontSize      float64
	ops           []op
}

func (r *recorder) Size() (int, int) { return r.width, r.height }

func (r *recorder) Resize(w, h int) {
	r.width, r.height = w, h
	r.ops = append(r.ops, op{kind: "resize", w: float64(w), h: float64(h)})
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{kind: "clear"}) }

func (r *recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "image", img: img, x: x, y: y, w: w, h: h})
}

func (r *recorder) FillRect(c color.Color, x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "rect", color: c, x: x, y: y, w: w, h: h})
}

func (r *recorder) SetFont(size float64) error {
	r.fontSize = size
	r.ops = append(r.ops, op{kind: "font", h: size})
	return nil
}

func (r *recorder) MeasureText(s string) float64 { return float64(len(s) * 10) }

func (r *recorder) FillText(s string, c color.Color, x, y float64) {
	r.ops = append(r.ops, op{kind: "fill", text: s, color: c, x: x, y: y})
}

func (r *recorder) StrokeText(s string, c color.Color, lw, x, y float64) {
	r.ops = append(r.ops, op{kind: "stroke", text: s, color: c, w: lw, x: x, y: y})
}

func (r *recorder) kinds() []string {
	out := make([]string, 0, len(r.ops))
	for _, o := range r.ops {
		out = append(out, o.kind)
	}
	return out
}

func (r *recorder) find(kind string) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}
