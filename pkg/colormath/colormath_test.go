package colormath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor_Hex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
		hex   string
	}{
		{"six digit", "#25C9D0", RGB{R: 37, G: 201, B: 208, A: 1}, "#25c9d0"},
		{"three digit", "#fff", RGB{R: 255, G: 255, B: 255, A: 1}, "#ffffff"},
		{"eight digit", "#25C9D080", RGB{R: 37, G: 201, B: 208, A: 0.5}, "#25c9d080"},
		{"leading space", "  #000000", RGB{R: 0, G: 0, B: 0, A: 1}, "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.RGB)
			assert.Equal(t, tt.hex, c.Hex)
			assert.False(t, c.Fallback)
		})
	}
}

func TestParseColor_RGBFunctions(t *testing.T) {
	c, err := ParseColor("rgb(85, 85, 85)")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 85, G: 85, B: 85, A: 1}, c.RGB)
	assert.Equal(t, "#555555", c.Hex)

	c, err = ParseColor("rgba(255, 0, 0, 0.5)")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 0, B: 0, A: 0.5}, c.RGB)
	assert.Equal(t, "#ff000080", c.Hex)

	// Modern space-separated syntax.
	c, err = ParseColor("rgb(0 128 255)")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0, G: 128, B: 255, A: 1}, c.RGB)
}

func TestParseColor_HSL(t *testing.T) {
	c, err := ParseColor("hsl(0, 0%, 100%)")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", c.Hex)

	c, err = ParseColor("hsl(120, 100%, 50%)")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0, G: 255, B: 0, A: 1}, c.RGB)

	c, err = ParseColor("hsla(240, 100%, 50%, 0.25)")
	require.NoError(t, err)
	assert.Equal(t, 0.25, c.RGB.A)
}

func TestParseColor_OKLCH(t *testing.T) {
	// Achromatic values convert exactly through the approximation.
	c, err := ParseColor("oklch(1 0 0)")
	require.NoError(t, err)
	require.NotNil(t, c.OKLCH)
	assert.Equal(t, "#ffffff", c.Hex)
	assert.Equal(t, 1.0, c.OKLCH.L)

	c, err = ParseColor("oklch(0 0 0)")
	require.NoError(t, err)
	assert.Equal(t, "#000000", c.Hex)

	// Percentage lightness normalizes to a fraction.
	c, err = ParseColor("oklch(76.21% 0.1238 199.53)")
	require.NoError(t, err)
	require.NotNil(t, c.OKLCH)
	assert.InDelta(t, 0.7621, c.OKLCH.L, 1e-9)
	assert.Equal(t, 0.1238, c.OKLCH.C)
	assert.Equal(t, 199.53, c.OKLCH.H)

	// Alpha as fourth component.
	c, err = ParseColor("oklch(0.5 0.1 180 / 0.5)")
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.OKLCH.A)
}

func TestParseColor_MalformedOKLCH(t *testing.T) {
	_, err := ParseColor("oklch(abc 0 0)")
	assert.Error(t, err)

	_, err = ParseColor("oklch(1 0)")
	assert.Error(t, err)
}

func TestParseColor_UnrecognizedFallsBackToBlack(t *testing.T) {
	c, err := ParseColor("var(--primary)")
	require.NoError(t, err)
	assert.True(t, c.Fallback)
	assert.Equal(t, "#000000", c.Hex)
	assert.Equal(t, RGB{R: 0, G: 0, B: 0, A: 1}, c.RGB)
}

func TestHexRGBRoundTrip(t *testing.T) {
	triples := []RGB{
		{R: 0, G: 0, B: 0, A: 1},
		{R: 255, G: 255, B: 255, A: 1},
		{R: 37, G: 201, B: 208, A: 1},
		{R: 85, G: 85, B: 85, A: 1},
		{R: 1, G: 2, B: 3, A: 1},
		{R: 254, G: 128, B: 0, A: 1},
	}
	for _, want := range triples {
		got, err := HexToRGB(RGBToHex(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRGBToHSL_Known(t *testing.T) {
	assert.Equal(t, HSL{H: 0, S: 0, L: 100, A: 1}, RGBToHSL(RGB{R: 255, G: 255, B: 255, A: 1}))
	assert.Equal(t, HSL{H: 0, S: 100, L: 50, A: 1}, RGBToHSL(RGB{R: 255, G: 0, B: 0, A: 1}))
	assert.Equal(t, HSL{H: 240, S: 100, L: 50, A: 1}, RGBToHSL(RGB{R: 0, G: 0, B: 255, A: 1}))
}

func TestDistance(t *testing.T) {
	a := RGB{R: 37, G: 201, B: 208, A: 1}
	b := RGB{R: 40, G: 200, B: 210, A: 1}

	assert.Zero(t, Distance(a, a))
	assert.Equal(t, Distance(a, b), Distance(b, a))

	// Opposite corners of the cube are maximally distant.
	black := RGB{R: 0, G: 0, B: 0, A: 1}
	white := RGB{R: 255, G: 255, B: 255, A: 1}
	assert.InDelta(t, 1.0, Distance(black, white), 1e-9)

	// Nearby colors score high confidence.
	assert.Greater(t, Confidence(Distance(a, b)), 0.95)
}
