package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	return img
}

func TestPNGBytes_RoundTripsDimensions(t *testing.T) {
	data, err := PNGBytes(testImage(37, 21))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 37, decoded.Bounds().Dx())
	assert.Equal(t, 21, decoded.Bounds().Dy())

	r, g, b, a := decoded.At(1, 1).RGBA()
	assert.Equal(t, []uint32{200, 10, 10, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, testImage(120, 80)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "/MediaBox [0 0 120.00 80.00]")
}
