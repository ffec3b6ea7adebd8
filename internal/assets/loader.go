package assets

import (
	"fmt"
	"image"
	"io"

	"MemeBoard/internal/logger"

	"github.com/disintegration/imaging"
)

// Decode reads a PNG, JPEG, GIF, BMP or TIFF image, applying the EXIF
// orientation when present.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Loader decodes files off the UI goroutine and hands the result back
// through Dispatch.
type Loader struct {
	dispatch func(func())
	log      *logger.Logger
}

// NewLoader returns a Loader. dispatch must run the callback on the goroutine
// that owns the scene; nil runs it on the decoding goroutine.
func NewLoader(dispatch func(func()), log *logger.Logger) *Loader {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Loader{dispatch: dispatch, log: log}
}

// Load decodes rc in the background and calls done with the image. rc is
// closed once read. When decoding fails the failure is logged and done is
// never called.
func (l *Loader) Load(name string, rc io.ReadCloser, done func(image.Image)) {
	go func() {
		defer func() {
			if err := rc.Close(); err != nil {
				l.log.Warning("[ASSETS] Error closing %s: %v", name, err)
			}
		}()

		img, err := Decode(rc)
		if err != nil {
			l.log.Warning("[ASSETS] Could not load %s: %v", name, err)
			return
		}

		b := img.Bounds()
		l.log.Info("[ASSETS] Loaded %s (%dx%d)", name, b.Dx(), b.Dy())
		l.dispatch(func() { done(img) })
	}()
}
