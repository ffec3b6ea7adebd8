package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"MemeBoard/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type trackingCloser struct {
	io.Reader
	closed chan struct{}
}

func (c *trackingCloser) Close() error {
	close(c.closed)
	return nil
}

func TestDecode(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t, 7, 3)))
	require.NoError(t, err)
	assert.Equal(t, 7, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	_, err = Decode(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestLoad_DispatchesDecodedImage(t *testing.T) {
	dispatched := 0
	l := NewLoader(func(fn func()) {
		dispatched++
		fn()
	}, logger.Discard())

	got := make(chan image.Image, 1)
	rc := &trackingCloser{Reader: bytes.NewReader(encodePNG(t, 12, 9)), closed: make(chan struct{})}
	l.Load("base.png", rc, func(img image.Image) { got <- img })

	select {
	case img := <-got:
		assert.Equal(t, image.Rect(0, 0, 12, 9), img.Bounds())
	case <-time.After(5 * time.Second):
		t.Fatal("load never completed")
	}
	<-rc.closed
	assert.Equal(t, 1, dispatched)
}

func TestLoad_UndecodableNeverCompletes(t *testing.T) {
	var logs bytes.Buffer
	l := NewLoader(nil, logger.NewWriter(&logs, false))

	called := make(chan struct{}, 1)
	rc := &trackingCloser{Reader: strings.NewReader("garbage"), closed: make(chan struct{})}
	l.Load("broken.png", rc, func(image.Image) { called <- struct{}{} })

	select {
	case <-rc.closed:
	case <-time.After(5 * time.Second):
		t.Fatal("reader was never closed")
	}
	assert.Contains(t, logs.String(), "Could not load broken.png")

	select {
	case <-called:
		t.Fatal("done must not run for undecodable input")
	case <-time.After(50 * time.Millisecond):
	}
}
