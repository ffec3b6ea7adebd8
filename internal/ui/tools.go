package ui

import (
	"fmt"
	"image/color"
	"io"

	"MemeBoard/internal/config"
	"MemeBoard/internal/editor"
	"MemeBoard/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}

// --- Color swatch that opens a picker ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func()
	rect     *canvas.Rectangle
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c
		s.rect.Refresh()
	}
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// toolbar wires the editor actions to buttons and dialogs.
type toolbar struct {
	window fyne.Window
	editor *editor.Editor
	form   *captionForm
	cfg    *config.Config
	log    *logger.Logger
	status *widget.Label
}

func newToolbar(w fyne.Window, e *editor.Editor, form *captionForm, cfg *config.Config, log *logger.Logger, status *widget.Label) fyne.CanvasObject {
	t := &toolbar{window: w, editor: e, form: form, cfg: cfg, log: log, status: status}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			t.openImage("Loading image", e.LoadBase)
		}), // Base image
		widget.NewToolbarAction(theme.ContentAddIcon(), func() {
			t.openImage("Loading sticker", e.LoadSticker)
		}), // Sticker
		widget.NewToolbarAction(theme.ContentRemoveIcon(), func() {
			if e.RemoveLastSticker() {
				t.setStatus("Removed last sticker")
			}
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), e.Render), // Generate
		widget.NewToolbarAction(theme.DownloadIcon(), func() {
			t.save(cfg.ExportName, e.WritePNG)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			t.save(cfg.PDFName(), e.WritePDF)
		}),
	)

	var fontSwatch, bgSwatch *colorSwatch
	fontSwatch = newColorSwatch(color.White, func() {
		t.pickColor("Font color", func(c color.Color) {
			fontSwatch.SetColor(c)
			form.SetFontColor(c)
		})
	})
	bgSwatch = newColorSwatch(color.Transparent, func() {
		t.pickColor("Caption background", func(c color.Color) {
			bgSwatch.SetColor(c)
			form.SetBackground(c)
		})
	})

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Font:"),
		fontSwatch,
		widget.NewLabel("Background:"),
		bgSwatch,
		layout.NewSpacer(),
	)
}

func (t *toolbar) setStatus(text string) {
	t.status.SetText(text)
}

func (t *toolbar) openImage(what string, load func(name string, rc io.ReadCloser)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			t.log.Error("[UI] Open dialog: %v", err)
			dialog.ShowError(err, t.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		name := reader.URI().Name()
		t.setStatus(fmt.Sprintf("%s %s...", what, name))
		load(name, reader)
	}, t.window)
	fd.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	fd.Show()
}

func (t *toolbar) save(name string, write func(io.Writer) error) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			t.log.Error("[UI] Save dialog: %v", err)
			dialog.ShowError(err, t.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if err := writer.Close(); err != nil {
				t.log.Error("[EXPORT] Error closing %s: %v", writer.URI().Name(), err)
			}
		}()

		if err := write(writer); err != nil {
			t.log.Error("[EXPORT] %v", err)
			dialog.ShowError(err, t.window)
			return
		}
		t.log.Info("[EXPORT] Saved %s", writer.URI().Path())
		t.setStatus("Saved " + writer.URI().Name())
	}, t.window)
	fd.SetFileName(name)
	fd.Show()
}

func (t *toolbar) pickColor(title string, picked func(color.Color)) {
	picker := dialog.NewColorPicker(title, "", picked, t.window)
	picker.Advanced = true
	picker.Show()
}
