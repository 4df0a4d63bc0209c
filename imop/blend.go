// Package imop implements the Porter-Duff composition operators used
// for flattening the rasterized ink layer over the page background.
// The image/draw core package only covers the source and the
// source-over-destination operators; raster exports with translucent
// ink or transparent backgrounds need the rest of the family, plus a
// handful of separable blend modes for ink-on-paper effects.
package imop

import (
	"github.com/esimov/inkpad/utils"
)

const (
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes; unknown names are
// ignored.
func (o *Blend) Set(opType string) {
	bModes := []string{Darken, Lighten, Multiply, Screen, Overlay}

	if utils.Contains(bModes, opType) {
		o.OpType = opType
	}
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// apply mixes the composed pixel with the source pixel channel by
// channel according to the active mode.
func (o *Blend) apply(out, s, b pix) pix {
	switch o.OpType {
	case Darken:
		return pix{
			r: utils.Min(out.r, s.r),
			g: utils.Min(out.g, s.g),
			b: utils.Min(out.b, s.b),
			a: utils.Min(out.a, s.a),
		}
	case Lighten:
		return pix{
			r: utils.Max(out.r, s.r),
			g: utils.Max(out.g, s.g),
			b: utils.Max(out.b, s.b),
			a: utils.Max(out.a, s.a),
		}
	case Screen:
		return pix{
			r: 1 - (1-out.r)*(1-s.r),
			g: 1 - (1-out.g)*(1-s.g),
			b: 1 - (1-out.b)*(1-s.b),
			a: 1 - (1-out.a)*(1-s.a),
		}
	case Multiply:
		return pix{
			r: out.r * s.r,
			g: out.g * s.g,
			b: out.b * s.b,
			a: out.a * s.a,
		}
	case Overlay:
		return pix{
			r: overlay(out.r, s.r),
			g: overlay(out.g, s.g),
			b: overlay(out.b, s.b),
			a: overlay(out.a, s.a),
		}
	}
	return out
}

func overlay(s, b float64) float64 {
	if s <= 0.5 {
		return 2 * s * b
	}
	return 1 - 2*(1-s)*(1-b)
}
