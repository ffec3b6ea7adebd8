package editor

import (
	"fmt"
	"image"
	"io"

	"MemeBoard/internal/assets"
	"MemeBoard/internal/export"
	"MemeBoard/internal/logger"
	"MemeBoard/internal/render"
	"MemeBoard/internal/state"
)

// Editor ties the scene, pointer controller, renderer, surface and loader
// together. All methods except the loader's decode run on the UI goroutine.
type Editor struct {
	scene      *state.Scene
	controller *state.Controller
	renderer   *render.Renderer
	canvas     *render.Canvas
	loader     *assets.Loader
	log        *logger.Logger

	// OnRendered receives the surface after every repaint.
	OnRendered func(img image.Image)
}

// New builds an Editor. dispatch is how decode completions get back onto the
// UI goroutine (fyne.Do in the app).
func New(dispatch func(func()), log *logger.Logger) *Editor {
	if log == nil {
		log = logger.Discard()
	}
	scene := state.NewScene(log)
	e := &Editor{
		scene:      scene,
		controller: state.NewController(scene, state.NewInteraction()),
		renderer:   render.New(log),
		canvas:     render.NewCanvas(scene.SurfaceSize()),
		loader:     assets.NewLoader(dispatch, log),
		log:        log,
	}
	e.controller.OnChange = e.Render
	return e
}

func (e *Editor) Scene() *state.Scene {
	return e.scene
}

func (e *Editor) Interaction() state.Interaction {
	return e.controller.Interaction()
}

// LoadBase decodes a base image in the background and installs it.
func (e *Editor) LoadBase(name string, rc io.ReadCloser) {
	e.loader.Load(name, rc, e.SetBase)
}

// LoadSticker decodes a sticker image in the background and appends it.
func (e *Editor) LoadSticker(name string, rc io.ReadCloser) {
	e.loader.Load(name, rc, e.AddSticker)
}

// SetBase replaces the base image; the next render resizes the surface to it.
func (e *Editor) SetBase(img image.Image) {
	e.scene.SetBase(img)
	e.Render()
}

func (e *Editor) AddSticker(img image.Image) {
	e.scene.AddSticker(img)
	e.Render()
}

// RemoveLastSticker drops the most recently added sticker and ends any drag,
// since the selected index may no longer exist.
func (e *Editor) RemoveLastSticker() bool {
	n := e.scene.StickerCount()
	if n == 0 {
		return false
	}
	e.controller.Release()
	e.scene.RemoveSticker(n - 1)
	e.Render()
	return true
}

func (e *Editor) SetTopText(text string) {
	e.scene.SetTopText(text)
	e.Render()
}

func (e *Editor) SetBottomText(text string) {
	e.scene.SetBottomText(text)
	e.Render()
}

func (e *Editor) SetStyle(style state.Style) {
	e.scene.SetStyle(style)
	e.Render()
}

// Render repaints the surface from the current scene.
func (e *Editor) Render() {
	e.renderer.Render(e.canvas, e.scene.Snapshot())
	if e.OnRendered != nil {
		e.OnRendered(e.canvas.Image())
	}
}

func (e *Editor) Press(x, y float64) {
	e.controller.Press(x, y)
}

func (e *Editor) PressResize(x, y float64) {
	e.controller.PressResize(x, y)
}

func (e *Editor) Move(x, y float64) bool {
	return e.controller.Move(x, y)
}

func (e *Editor) Release() {
	e.controller.Release()
}

// Image is the current surface buffer.
func (e *Editor) Image() image.Image {
	return e.canvas.Image()
}

// SurfaceSize is the size of the pixel buffer as last rendered.
func (e *Editor) SurfaceSize() (int, int) {
	return e.canvas.Size()
}

// ExportPNG encodes the surface as it is now.
func (e *Editor) ExportPNG() ([]byte, error) {
	data, err := export.PNGBytes(e.canvas.Image())
	if err != nil {
		return nil, fmt.Errorf("export meme: %w", err)
	}
	return data, nil
}

func (e *Editor) WritePNG(w io.Writer) error {
	if err := export.PNG(w, e.canvas.Image()); err != nil {
		return fmt.Errorf("export meme: %w", err)
	}
	return nil
}

func (e *Editor) WritePDF(w io.Writer) error {
	if err := export.PDF(w, e.canvas.Image()); err != nil {
		return fmt.Errorf("export meme pdf: %w", err)
	}
	return nil
}
