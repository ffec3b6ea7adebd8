package ui

import (
	"image"
	"image/color"

	"MemeBoard/internal/editor"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// MemeWidget shows the editor surface and feeds pointer events back to it.
// Primary press drags a sticker; secondary or shift+primary press resizes it.
type MemeWidget struct {
	widget.BaseWidget
	editor  *editor.Editor
	image   *canvas.Image
	dragged bool
}

var _ fyne.Widget = (*MemeWidget)(nil)
var _ fyne.Draggable = (*MemeWidget)(nil)
var _ desktop.Mouseable = (*MemeWidget)(nil)
var _ desktop.Hoverable = (*MemeWidget)(nil)

func NewMemeWidget(e *editor.Editor) *MemeWidget {
	m := &MemeWidget{
		editor: e,
		image:  canvas.NewImageFromImage(e.Image()),
	}
	m.image.FillMode = canvas.ImageFillStretch
	m.image.ScaleMode = canvas.ImageScaleSmooth
	m.ExtendBaseWidget(m)
	return m
}

// SetSurface shows a freshly rendered surface.
func (m *MemeWidget) SetSurface(img image.Image) {
	m.image.Image = img
	m.Refresh()
}

func (m *MemeWidget) viewport(size fyne.Size) viewport {
	w, h := m.editor.SurfaceSize()
	return fitViewport(size, w, h)
}

func (m *MemeWidget) toSurface(pos fyne.Position) (float64, float64) {
	return m.viewport(m.Size()).toSurface(pos)
}

func (m *MemeWidget) MouseDown(e *desktop.MouseEvent) {
	x, y := m.toSurface(e.Position)
	switch {
	case e.Button == desktop.MouseButtonSecondary,
		e.Button == desktop.MouseButtonPrimary && e.Modifier&fyne.KeyModifierShift != 0:
		m.editor.PressResize(x, y)
	case e.Button == desktop.MouseButtonPrimary:
		m.editor.Press(x, y)
	}
}

func (m *MemeWidget) MouseUp(*desktop.MouseEvent) {
	m.release()
}

// MouseMoved covers moves the driver does not report as drags.
func (m *MemeWidget) MouseMoved(e *desktop.MouseEvent) {
	if m.dragged {
		return
	}
	m.editor.Move(m.toSurface(e.Position))
}

func (m *MemeWidget) Dragged(e *fyne.DragEvent) {
	m.dragged = true
	m.editor.Move(m.toSurface(e.Position))
}

func (m *MemeWidget) DragEnd() {
	m.release()
}

func (m *MemeWidget) release() {
	m.dragged = false
	m.editor.Release()
}

func (m *MemeWidget) MouseIn(*desktop.MouseEvent) {}
func (m *MemeWidget) MouseOut()                   {}

func (m *MemeWidget) CreateRenderer() fyne.WidgetRenderer {
	return &memeWidgetRenderer{
		meme:       m,
		background: canvas.NewRectangle(color.NRGBA{R: 245, G: 246, B: 248, A: 255}),
	}
}

type memeWidgetRenderer struct {
	meme       *MemeWidget
	background *canvas.Rectangle
}

func (r *memeWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	vp := r.meme.viewport(size)
	r.meme.image.Move(vp.offset)
	r.meme.image.Resize(vp.size)
}

func (r *memeWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 150)
}

func (r *memeWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.meme.image}
}

func (r *memeWidgetRenderer) Refresh() {
	r.Layout(r.meme.Size())
	r.background.Refresh()
	r.meme.image.Refresh()
}

func (r *memeWidgetRenderer) Destroy() {}
