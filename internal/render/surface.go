package render

import (
	"image"
	"image/color"
)

// Surface is the pixel target the Renderer paints on. Text calls use the
// font set by the last SetFont; FillText and StrokeText center the string
// horizontally on x with its baseline at y.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int)
	Clear()
	DrawImage(img image.Image, x, y, width, height float64)
	FillRect(c color.Color, x, y, width, height float64)
	SetFont(size float64) error
	MeasureText(s string) float64
	FillText(s string, c color.Color, x, y float64)
	StrokeText(s string, c color.Color, lineWidth, x, y float64)
}
