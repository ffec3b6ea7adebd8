package ui

import (
	"fyne.io/fyne/v2"
)

// viewport maps the surface into the widget: scaled down to fit (never up)
// and centered.
type viewport struct {
	scale  float32
	offset fyne.Position
	size   fyne.Size
}

func fitViewport(area fyne.Size, surfaceWidth, surfaceHeight int) viewport {
	if surfaceWidth <= 0 || surfaceHeight <= 0 || area.Width <= 0 || area.Height <= 0 {
		return viewport{scale: 1}
	}

	sw, sh := float32(surfaceWidth), float32(surfaceHeight)
	scale := min(1, area.Width/sw, area.Height/sh)
	size := fyne.NewSize(sw*scale, sh*scale)
	return viewport{
		scale:  scale,
		offset: fyne.NewPos((area.Width-size.Width)/2, (area.Height-size.Height)/2),
		size:   size,
	}
}

// toSurface converts a widget-local position into surface pixels.
func (v viewport) toSurface(pos fyne.Position) (float64, float64) {
	return float64((pos.X - v.offset.X) / v.scale), float64((pos.Y - v.offset.Y) / v.scale)
}
