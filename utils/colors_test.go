package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColors_HexToRGBA(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(color.NRGBA{R: 255, G: 0, B: 0, A: 255}, HexToRGBA("#ff0000"))
	assert.Equal(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, HexToRGBA("#fff"))
	assert.Equal(color.NRGBA{R: 18, G: 52, B: 86, A: 120}, HexToRGBA("#12345678"))

	// Malformed values fall back to opaque black.
	assert.Equal(color.NRGBA{A: 255}, HexToRGBA("not-a-color"))
	assert.Equal(color.NRGBA{A: 255}, HexToRGBA(""))
}

func TestColors_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, hex := range []string{"#000000", "#ff0000", "#123456", "#12345678"} {
		assert.Equal(hex, RGBAToHex(HexToRGBA(hex)))
	}
}
