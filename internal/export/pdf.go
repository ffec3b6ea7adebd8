package export

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDF writes a single-page PDF whose page is the image's size, one pixel per
// point, with the image embedded as PNG.
func PDF(w io.Writer, img image.Image) error {
	data, err := PNGBytes(img)
	if err != nil {
		return err
	}

	b := img.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("meme", opts, bytes.NewReader(data))
	p.ImageOptions("meme", 0, 0, width, height, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
