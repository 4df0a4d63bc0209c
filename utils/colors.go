package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// HexToRGBA converts a color expressed as a hexadecimal string
// ("#rgb", "#rrggbb" or "#rrggbbaa") to color.NRGBA.
// Malformed values fall back to opaque black.
func HexToRGBA(hex string) color.NRGBA {
	var r, g, b, a uint8 = 0, 0, 0, 0xff

	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3:
		fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r *= 0x11
		g *= 0x11
		b *= 0x11
	case 6:
		fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// RGBAToHex converts a color to its hexadecimal string representation.
// The alpha component is included only when the color is not fully opaque.
func RGBAToHex(c color.Color) string {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	if nrgba.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B, nrgba.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B)
}
