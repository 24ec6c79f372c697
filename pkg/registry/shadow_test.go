package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShadowLayers_Single(t *testing.T) {
	layers, err := ParseShadowLayers("0 2px 4px rgba(0, 0, 0, 0.1)")
	require.NoError(t, err)
	require.Len(t, layers, 1)

	assert.Equal(t, ShadowLayer{
		OffsetX: "0",
		OffsetY: "2px",
		Blur:    "4px",
		Color:   "rgba(0, 0, 0, 0.1)",
	}, layers[0])
}

func TestParseShadowLayers_MultipleWithInsetAndSpread(t *testing.T) {
	layers, err := ParseShadowLayers("inset 0 1px 2px 1px #00000033, 0 4px 8px rgba(0,0,0,0.2)")
	require.NoError(t, err)
	require.Len(t, layers, 2)

	assert.True(t, layers[0].Inset)
	assert.Equal(t, "1px", layers[0].OffsetY)
	assert.Equal(t, "2px", layers[0].Blur)
	assert.Equal(t, "1px", layers[0].Spread)
	assert.Equal(t, "#00000033", layers[0].Color)

	assert.False(t, layers[1].Inset)
	assert.Equal(t, "rgba(0,0,0,0.2)", layers[1].Color)
}

func TestParseShadowLayers_Malformed(t *testing.T) {
	_, err := ParseShadowLayers("none")
	assert.Error(t, err)

	_, err = ParseShadowLayers("")
	assert.Error(t, err)
}
