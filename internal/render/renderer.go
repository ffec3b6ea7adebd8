package render

import (
	"image/color"

	"MemeBoard/internal/logger"
	"MemeBoard/internal/state"
)

const (
	DefaultFontSize = 40
	// MaxFontSize bounds the caption face; larger requests are clamped.
	MaxFontSize = 1000

	topBaseline    = 50
	bottomMargin   = 20 // bottom baseline sits this far above the surface edge
	captionPadding = 5
	captionLift    = 10
	strokeWidth    = 2
)

var (
	defaultFontColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	strokeColor      = color.NRGBA{A: 255}
)

// captionStyle is a state.Style with fallbacks applied.
type captionStyle struct {
	fontSize   float64
	fontColor  color.Color
	background color.Color // nil: no background
}

func resolveStyle(s state.Style) captionStyle {
	cs := captionStyle{
		fontSize:  DefaultFontSize,
		fontColor: defaultFontColor,
	}
	if s.FontSize > 0 {
		cs.fontSize = float64(min(s.FontSize, MaxFontSize))
	}
	if c, ok := ParseColor(s.FontColor); ok {
		cs.fontColor = c
	}
	if c, ok := ParseColor(s.Background); ok {
		cs.background = c
	}
	return cs
}

// backgroundTop returns the y of a caption background rectangle for the
// given baseline.
type backgroundTop func(baseline, fontSize float64) float64

func topCaptionBackground(baseline, fontSize float64) float64 {
	return baseline - fontSize + captionLift
}

func bottomCaptionBackground(baseline, fontSize float64) float64 {
	return baseline - fontSize - captionLift
}

// Renderer repaints a surface from a scene frame.
type Renderer struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Renderer {
	if log == nil {
		log = logger.Discard()
	}
	return &Renderer{log: log}
}

// Render repaints s from scratch: base image, top caption, bottom caption,
// then stickers in order. Rendering the same frame twice yields the same
// pixels.
func (r *Renderer) Render(s Surface, f state.Frame) {
	if w, h := s.Size(); w != f.Width || h != f.Height {
		s.Resize(f.Width, f.Height)
	}
	s.Clear()

	if f.Base != nil {
		b := f.Base.Bounds()
		s.DrawImage(f.Base, 0, 0, float64(b.Dx()), float64(b.Dy()))
	}

	style := resolveStyle(f.Style)
	if err := s.SetFont(style.fontSize); err != nil {
		r.log.Error("[RENDER] %v", err)
	} else {
		width := float64(f.Width)
		r.drawCaption(s, f.Top, width, topBaseline, style, topCaptionBackground)
		r.drawCaption(s, f.Bottom, width, float64(f.Height-bottomMargin), style, bottomCaptionBackground)
	}

	for _, st := range f.Stickers {
		if st.Image == nil {
			continue
		}
		s.DrawImage(st.Image, st.X, st.Y, st.Width, st.Height)
	}
	r.log.Debug("[RENDER] %dx%d, %d stickers", f.Width, f.Height, len(f.Stickers))
}

func (r *Renderer) drawCaption(s Surface, text string, surfaceWidth, baseline float64, style captionStyle, bgTop backgroundTop) {
	if text == "" {
		return
	}

	textWidth := s.MeasureText(text)
	textX := (surfaceWidth - textWidth) / 2
	if style.background != nil {
		s.FillRect(style.background,
			textX-captionPadding, bgTop(baseline, style.fontSize),
			textWidth+2*captionPadding, style.fontSize)
	}

	centerX := surfaceWidth / 2
	s.FillText(text, style.fontColor, centerX, baseline)
	s.StrokeText(text, strokeColor, strokeWidth, centerX, baseline)
}
