package ui

import (
	"image"
	"image/color"
	"testing"

	"MemeBoard/internal/editor"
	"MemeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) (*editor.Editor, *MemeWidget) {
	t.Helper()
	test.NewTempApp(t)

	ed := editor.New(nil, nil)
	board := NewMemeWidget(ed)
	ed.OnRendered = board.SetSurface

	ed.SetBase(image.NewNRGBA(image.Rect(0, 0, 400, 300)))
	ed.AddSticker(image.NewNRGBA(image.Rect(0, 0, 8, 8)))
	// Half scale, no letterboxing.
	board.Resize(fyne.NewSize(200, 150))
	return ed, board
}

func press(pos fyne.Position, button desktop.MouseButton, mod fyne.KeyModifier) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:     button,
		Modifier:   mod,
	}
}

func TestMemeWidget_DragMapsToSurface(t *testing.T) {
	ed, board := newTestBoard(t)

	board.MouseDown(press(fyne.NewPos(30, 30), desktop.MouseButtonPrimary, 0))
	require.Equal(t, state.ModeDragging, ed.Interaction().Mode)

	board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 75)}})
	board.DragEnd()

	st, _ := ed.Scene().Sticker(0)
	assert.Equal(t, float64(190), st.X)
	assert.Equal(t, float64(140), st.Y)
	assert.Equal(t, state.NoSelection, ed.Interaction().Selected)
}

func TestMemeWidget_ResizeButtons(t *testing.T) {
	tests := []struct {
		name   string
		button desktop.MouseButton
		mod    fyne.KeyModifier
	}{
		{"secondary", desktop.MouseButtonSecondary, 0},
		{"shift primary", desktop.MouseButtonPrimary, fyne.KeyModifierShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed, board := newTestBoard(t)

			board.MouseDown(press(fyne.NewPos(40, 40), tt.button, tt.mod))
			require.Equal(t, state.ModeResizing, ed.Interaction().Mode)

			board.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 40)}})
			board.MouseUp(&desktop.MouseEvent{})

			st, _ := ed.Scene().Sticker(0)
			assert.Equal(t, float64(70), st.Width)
			assert.Equal(t, float64(30), st.Height)
			assert.Equal(t, state.ModeIdle, ed.Interaction().Mode)
		})
	}
}

func TestMemeWidget_MissDoesNothing(t *testing.T) {
	ed, board := newTestBoard(t)
	before := ed.Scene().Revision()

	board.MouseDown(press(fyne.NewPos(150, 120), desktop.MouseButtonPrimary, 0))
	board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)}})
	board.DragEnd()

	assert.Equal(t, before, ed.Scene().Revision())
}

func TestMemeWidget_ShowsLatestSurface(t *testing.T) {
	ed, board := newTestBoard(t)
	ed.SetBase(image.NewNRGBA(image.Rect(0, 0, 40, 20)))

	assert.Equal(t, ed.Image(), board.image.Image)
	assert.Equal(t, color.RGBA{}, board.image.Image.At(0, 0))
}
