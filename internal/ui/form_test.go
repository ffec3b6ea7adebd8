package ui

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"MemeBoard/internal/editor"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptionForm_PickedAlphaReachesCanvas(t *testing.T) {
	test.NewTempApp(t)

	ed := editor.New(nil, nil)
	base := image.NewNRGBA(image.Rect(0, 0, 200, 120))
	draw.Draw(base, base.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	ed.SetBase(base)

	form := newCaptionForm(ed)
	// A blank caption paints its background and no glyphs.
	ed.SetTopText(" ")
	form.SetBackground(color.NRGBA{A: 128})
	assert.Equal(t, "#00000080", form.style.Background)

	img, ok := ed.Image().(*image.RGBA)
	require.True(t, ok)
	px := img.RGBAAt(100, 40)
	assert.Equal(t, uint8(255), px.A)
	assert.InDelta(t, 127, int(px.R), 1, "half-transparent black over white")
	assert.Equal(t, px.R, px.G)
}
