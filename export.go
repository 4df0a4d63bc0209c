package inkpad

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/inkpad/imop"
	"golang.org/x/image/bmp"
)

// defaultDPI is the CSS reference resolution: at this density one pad
// unit maps to exactly one pixel.
const defaultDPI = 96

// ExportOptions adjusts how the stroke collection is framed and
// colored on export. The zero value exports the full canvas at the
// pad's own colors and the reference resolution.
type ExportOptions struct {
	// Width and Height force the output pixel size, resampling the
	// rendered image. Zero keeps the size derived from the frame and
	// the DPI; when only one is set the other follows the frame's
	// aspect ratio.
	Width  int
	Height int
	// DPI scales the rendering density. Zero means 96.
	DPI float64
	// BackgroundColor overrides the pad's background. Ignored when
	// Transparent is set.
	BackgroundColor string
	// PenColor, when non empty, overrides the color of every stroke.
	PenColor string
	// Trim shrinks the frame to the ink bounds instead of the canvas.
	Trim bool
	// Margin is the padding around the ink when trimming, in pad units.
	Margin float64
	// Transparent omits the background layer.
	Transparent bool
	// BlendMode optionally blends the ink over the background with one
	// of the imop separable modes, e.g. imop.Multiply.
	BlendMode string
}

// fillOptions resolves the zero values of opts against the pad
// configuration. A nil opts is valid and means all defaults.
func (p *Pad) fillOptions(opts *ExportOptions) *ExportOptions {
	var o ExportOptions
	if opts != nil {
		o = *opts
	}
	if o.DPI <= 0 {
		o.DPI = defaultDPI
	}
	if o.BackgroundColor == "" {
		o.BackgroundColor = p.BackgroundColor
	}
	return &o
}

// exportFrame returns the region of the pad plane covered by the
// export: the canvas, or the inflated ink bounds when trimming. A
// trim over an empty collection falls back to the canvas.
func (p *Pad) exportFrame(opts *ExportOptions) Rect {
	if opts.Trim {
		if b := p.Bounds(); b != nil {
			return b.Inflate(opts.Margin)
		}
	}
	return Rect{MinX: 0, MinY: 0, MaxX: p.Width, MaxY: p.Height}
}

// ToImage rasterizes the stroke collection. The ink is rendered on its
// own layer and composed over the background with the source-over
// operator, or left on transparent when requested.
func (p *Pad) ToImage(opts *ExportOptions) image.Image {
	opts = p.fillOptions(opts)
	frame := p.exportFrame(opts)
	scale := opts.DPI / defaultDPI

	w := int(math.Ceil(frame.Width() * scale))
	h := int(math.Ceil(frame.Height() * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	ink := newRasterSurface(w, h, scale, -frame.MinX*scale, -frame.MinY*scale)
	for _, s := range p.strokes {
		if opts.PenColor != "" {
			s.Color = opts.PenColor
		}
		p.DrawStroke(ink, s)
	}

	out := ink.img
	if !opts.Transparent {
		bg := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(bg, bg.Bounds(), image.NewUniform(colorOf(opts.BackgroundColor)), image.Point{}, draw.Src)

		var blend *imop.Blend
		if opts.BlendMode != "" {
			blend = imop.NewBlend()
			blend.Set(opts.BlendMode)
		}
		bitmap := imop.NewBitmap(bg.Bounds())
		imop.InitOp().Draw(bitmap, ink.img, bg, blend)
		out = bitmap.Img
	}

	if opts.Width > 0 || opts.Height > 0 {
		out = imaging.Resize(out, opts.Width, opts.Height, imaging.Lanczos)
	}
	return out
}

// EncodeImage writes img to w in the format matching the file
// extension.
func EncodeImage(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format: %v", ext)
	}
}

// Process reads a serialized stroke collection from r and writes it
// to w in the format matching ext. The receiver only contributes its
// configuration; its own strokes are untouched.
func (p *Pad) Process(r io.Reader, w io.Writer, ext string, opts *ExportOptions) error {
	pad := p.clone()
	if err := pad.Load(r); err != nil {
		return err
	}
	if strings.EqualFold(ext, ".svg") {
		return pad.ToSVG(w, opts)
	}
	return EncodeImage(w, pad.ToImage(opts), ext)
}
