package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
		ok   bool
	}{
		{"#ffffff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, true},
		{"#FF0000", color.NRGBA{R: 255, A: 255}, true},
		{"#0f0", color.NRGBA{G: 255, A: 255}, true},
		{"#FF000080", color.NRGBA{R: 255, A: 128}, true},
		{"#00000000", color.NRGBA{}, true},
		{"#ff0000zz", nil, false},
		{"#ff00008", nil, false},
		{" black ", color.NRGBA{A: 255}, true},
		{"Yellow", color.NRGBA{R: 255, G: 255, A: 255}, true},
		{"transparent", color.NRGBA{}, true},
		{"", nil, false},
		{"#12", nil, false},
		{"ff0000", nil, false},
		{"#gggggg", nil, false},
		{"chartreuse-ish", nil, false},
	}

	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#ff8000", FormatColor(color.NRGBA{R: 255, G: 128, A: 255}))
	assert.Equal(t, "", FormatColor(color.Transparent))

	c, ok := ParseColor(FormatColor(color.RGBA{R: 12, G: 34, B: 56, A: 255}))
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 12, G: 34, B: 56, A: 255}, c)
}

func TestFormatColor_KeepsAlpha(t *testing.T) {
	half := color.NRGBA{R: 255, G: 128, A: 128}
	assert.Equal(t, "#ff800080", FormatColor(half))

	c, ok := ParseColor(FormatColor(half))
	assert.True(t, ok)
	assert.Equal(t, half, c)

	// Premultiplied input comes back straight.
	assert.Equal(t, "#ff000080", FormatColor(color.RGBA{R: 128, A: 128}))
}
