package imop

import (
	"image"
	"image/color"
	"math"

	"github.com/esimov/inkpad/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap is the composition target.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operator.
type Composite struct {
	current string
	ops     []string
}

func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp returns a Composite defaulting to the source-over operator,
// which is the one used to lay the ink over the page background.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operators; unknown
// names are ignored.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operator.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes the src image over dst into the bitmap, applying the
// active Porter-Duff operator per pixel and afterwards the optional
// blend mode. The three images are expected to share the same bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			s := norm(src.NRGBAAt(x, y))
			b := norm(dst.NRGBAAt(x, y))

			var out pix
			switch op.current {
			case Copy:
				out = s
			case SrcOver:
				out = pix{
					r: s.a*s.r + b.a*b.r*(1-s.a),
					g: s.a*s.g + b.a*b.g*(1-s.a),
					b: s.a*s.b + b.a*b.b*(1-s.a),
					a: s.a + b.a*(1-s.a),
				}
			case DstOver:
				out = pix{
					r: s.a*s.r*(1-b.a) + b.a*b.r,
					g: s.a*s.g*(1-b.a) + b.a*b.g,
					b: s.a*s.b*(1-b.a) + b.a*b.b,
					a: s.a*(1-b.a) + b.a,
				}
			case SrcIn:
				out = pix{r: s.a * s.r * b.a, g: s.a * s.g * b.a, b: s.a * s.b * b.a, a: s.a * b.a}
			case DstIn:
				out = pix{r: b.a * b.r * s.a, g: b.a * b.g * s.a, b: b.a * b.b * s.a, a: b.a * s.a}
			case SrcOut:
				out = pix{r: s.a * s.r * (1 - b.a), g: s.a * s.g * (1 - b.a), b: s.a * s.b * (1 - b.a), a: s.a * (1 - b.a)}
			case DstOut:
				out = pix{r: b.a * b.r * (1 - s.a), g: b.a * b.g * (1 - s.a), b: b.a * b.b * (1 - s.a), a: b.a * (1 - s.a)}
			case SrcAtop:
				out = pix{
					r: s.a*s.r*b.a + (1-s.a)*b.a*b.r,
					g: s.a*s.g*b.a + (1-s.a)*b.a*b.g,
					b: s.a*s.b*b.a + (1-s.a)*b.a*b.b,
					a: s.a*b.a + b.a*(1-s.a),
				}
			case DstAtop:
				out = pix{
					r: s.a*s.r*(1-b.a) + b.a*b.r*s.a,
					g: s.a*s.g*(1-b.a) + b.a*b.g*s.a,
					b: s.a*s.b*(1-b.a) + b.a*b.b*s.a,
					a: s.a*(1-b.a) + b.a*s.a,
				}
			case Xor:
				out = pix{
					r: s.a*s.r*(1-b.a) + b.a*b.r*(1-s.a),
					g: s.a*s.g*(1-b.a) + b.a*b.g*(1-s.a),
					b: s.a*s.b*(1-b.a) + b.a*b.b*(1-s.a),
					a: s.a*(1-b.a) + b.a*(1-s.a),
				}
			}

			if blend != nil {
				out = blend.apply(out, s, b)
			}
			bitmap.Img.SetNRGBA(x, y, denorm(out))
		}
	}
}

// pix is a pixel with each channel normalized to the [0, 1] range.
type pix struct {
	r, g, b, a float64
}

func norm(c color.NRGBA) pix {
	return pix{
		r: float64(c.R) / 255,
		g: float64(c.G) / 255,
		b: float64(c.B) / 255,
		a: float64(c.A) / 255,
	}
}

func denorm(p pix) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(utils.Clamp(p.r, 0, 1) * 255)),
		G: uint8(math.Round(utils.Clamp(p.g, 0, 1) * 255)),
		B: uint8(math.Round(utils.Clamp(p.b, 0, 1) * 255)),
		A: uint8(math.Round(utils.Clamp(p.a, 0, 1) * 255)),
	}
}
