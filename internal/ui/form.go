package ui

import (
	"image/color"
	"strconv"
	"strings"

	"MemeBoard/internal/editor"
	"MemeBoard/internal/render"
	"MemeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// captionForm holds the caption and font size inputs. Every edit is pushed
// into the scene straight away.
type captionForm struct {
	editor   *editor.Editor
	top      *widget.Entry
	bottom   *widget.Entry
	fontSize *widget.Entry
	style    state.Style
}

func newCaptionForm(e *editor.Editor) *captionForm {
	f := &captionForm{
		editor:   e,
		top:      widget.NewEntry(),
		bottom:   widget.NewEntry(),
		fontSize: widget.NewEntry(),
	}
	f.top.SetPlaceHolder("Top text")
	f.bottom.SetPlaceHolder("Bottom text")
	f.fontSize.SetPlaceHolder(strconv.Itoa(render.DefaultFontSize))

	f.top.OnChanged = e.SetTopText
	f.bottom.OnChanged = e.SetBottomText
	f.fontSize.OnChanged = func(s string) {
		f.style.FontSize = parseFontSize(s)
		f.editor.SetStyle(f.style)
	}
	return f
}

func (f *captionForm) SetFontColor(c color.Color) {
	f.style.FontColor = render.FormatColor(c)
	f.editor.SetStyle(f.style)
}

func (f *captionForm) SetBackground(c color.Color) {
	f.style.Background = render.FormatColor(c)
	f.editor.SetStyle(f.style)
}

func (f *captionForm) Object() fyne.CanvasObject {
	return widget.NewForm(
		widget.NewFormItem("Top", f.top),
		widget.NewFormItem("Bottom", f.bottom),
		widget.NewFormItem("Font size", f.fontSize),
	)
}

// parseFontSize returns 0 (unset) for anything that is not a positive integer.
func parseFontSize(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
