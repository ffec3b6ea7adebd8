package ui

import (
	"MemeBoard/internal/config"
	"MemeBoard/internal/editor"
	"MemeBoard/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func RunApp(cfg *config.Config, log *logger.Logger) {
	myApp := app.NewWithID(cfg.AppID)
	myWindow := myApp.NewWindow("MemeBoard")
	myWindow.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	// Decode completions come back on the main goroutine.
	ed := editor.New(fyne.Do, log)
	board := NewMemeWidget(ed)
	ed.OnRendered = board.SetSurface

	form := newCaptionForm(ed)
	status := widget.NewLabel("Open an image to start")
	toolbar := newToolbar(myWindow, ed, form, cfg, log, status)

	content := container.NewBorder(
		container.NewVBox(toolbar, form.Object()),
		status, nil, nil,
		board,
	)
	myWindow.SetContent(content)
	ed.Render()
	myWindow.ShowAndRun()
}
