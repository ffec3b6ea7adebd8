package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.NRGBA{
	"black":       {A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"red":         {R: 255, A: 255},
	"green":       {G: 128, A: 255},
	"lime":        {G: 255, A: 255},
	"blue":        {B: 255, A: 255},
	"yellow":      {R: 255, G: 255, A: 255},
	"orange":      {R: 255, G: 165, A: 255},
	"purple":      {R: 128, B: 128, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"transparent": {},
}

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" and a few CSS color
// names.
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return nil, false
	}
	alpha := uint8(255)
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, false
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return nil, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, true
}

// FormatColor renders c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
// Fully transparent colors have no hex form and yield "".
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return ""
	}
	hex := colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}.Hex()
	if n.A < 255 {
		hex += fmt.Sprintf("%02x", n.A)
	}
	return hex
}
