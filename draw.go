package inkpad

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// gioSurface renders onto a Gio operation list. Pad units map one to
// one to pixels, matching the raster export at the reference
// resolution.
type gioSurface struct {
	ops *op.Ops
}

func (gs *gioSurface) FillRect(r Rect, c color.Color) {
	rect := clip.Rect{
		Min: image.Pt(int(math.Floor(r.MinX)), int(math.Floor(r.MinY))),
		Max: image.Pt(int(math.Ceil(r.MaxX)), int(math.Ceil(r.MaxY))),
	}
	paint.FillShape(gs.ops, toNRGBA(c), rect.Op())
}

func (gs *gioSurface) StrokeQuad(from, ctrl, to Point, width float64, c color.Color) {
	var p clip.Path
	p.Begin(gs.ops)
	p.MoveTo(f32.Pt(float32(from.X), float32(from.Y)))
	p.QuadTo(
		f32.Pt(float32(ctrl.X), float32(ctrl.Y)),
		f32.Pt(float32(to.X), float32(to.Y)),
	)
	paint.FillShape(gs.ops, toNRGBA(c), clip.Stroke{
		Path:  p.End(),
		Width: float32(width),
	}.Op())
}

func (gs *gioSurface) FillPath(path *Path, c color.Color) {
	if path == nil || path.IsEmpty() {
		return
	}
	var p clip.Path
	p.Begin(gs.ops)

	var cur Point
	for _, seg := range path.Segments() {
		switch seg.Op {
		case MoveOp:
			p.MoveTo(f32.Pt(float32(seg.To.X), float32(seg.To.Y)))
			cur = seg.To
		case QuadOp:
			p.QuadTo(
				f32.Pt(float32(seg.Ctrl.X), float32(seg.Ctrl.Y)),
				f32.Pt(float32(seg.To.X), float32(seg.To.Y)),
			)
			cur = seg.To
		case ArcOp:
			for _, cb := range arcToCubics(cur, seg.Ctrl, seg.To) {
				p.CubeTo(
					f32.Pt(float32(cb.Ctrl0.X), float32(cb.Ctrl0.Y)),
					f32.Pt(float32(cb.Ctrl1.X), float32(cb.Ctrl1.Y)),
					f32.Pt(float32(cb.To.X), float32(cb.To.Y)),
				)
			}
			cur = seg.To
		case CloseOp:
			p.Close()
		}
	}
	paint.FillShape(gs.ops, toNRGBA(c), clip.Outline{Path: p.End()}.Op())
}

func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8((r * 0xffff / a) >> 8),
		G: uint8((g * 0xffff / a) >> 8),
		B: uint8((b * 0xffff / a) >> 8),
		A: uint8(a >> 8),
	}
}
