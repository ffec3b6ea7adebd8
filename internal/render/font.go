package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// displayFont is the fixed caption typeface.
var displayFont *opentype.Font

func init() {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("render: parse display font: %v", err))
	}
	displayFont = f
}

// maxCachedFaces bounds faceCache; once full it is emptied.
const maxCachedFaces = 16

// faceCache keeps one face per pixel size.
type faceCache map[float64]font.Face

func (fc faceCache) get(size float64) (font.Face, error) {
	if face, ok := fc[size]; ok {
		return face, nil
	}
	if len(fc) >= maxCachedFaces {
		clear(fc)
	}
	// At 72 DPI one point is one pixel, so Size is the em height in pixels.
	face, err := opentype.NewFace(displayFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.1fpx: %w", size, err)
	}
	fc[size] = face
	return face, nil
}
