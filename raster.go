package inkpad

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// rasterSurface rasterizes onto an NRGBA image through an affine
// transform mapping pad coordinates to pixels: first scaled, then
// shifted so the export frame origin lands on pixel (0,0).
type rasterSurface struct {
	img   *image.NRGBA
	scale float64
	dx    float64
	dy    float64
}

func newRasterSurface(w, h int, scale, dx, dy float64) *rasterSurface {
	return &rasterSurface{
		img:   image.NewNRGBA(image.Rect(0, 0, w, h)),
		scale: scale,
		dx:    dx,
		dy:    dy,
	}
}

func (rs *rasterSurface) tx(x float64) float32 {
	return float32(x*rs.scale + rs.dx)
}

func (rs *rasterSurface) ty(y float64) float32 {
	return float32(y*rs.scale + rs.dy)
}

func (rs *rasterSurface) FillRect(r Rect, c color.Color) {
	ras := vector.NewRasterizer(rs.img.Bounds().Dx(), rs.img.Bounds().Dy())
	ras.MoveTo(rs.tx(r.MinX), rs.ty(r.MinY))
	ras.LineTo(rs.tx(r.MaxX), rs.ty(r.MinY))
	ras.LineTo(rs.tx(r.MaxX), rs.ty(r.MaxY))
	ras.LineTo(rs.tx(r.MinX), rs.ty(r.MaxY))
	ras.ClosePath()
	ras.Draw(rs.img, rs.img.Bounds(), image.NewUniform(c), image.Point{})
}

// StrokeQuad expands the quadratic into a constant width outline and
// fills it. The curve is flattened first so the offset outline can
// reuse the centerline walk used everywhere else.
func (rs *rasterSurface) StrokeQuad(from, ctrl, to Point, width float64, c color.Color) {
	pts := dedupe(flattenQuad(from, ctrl, to))
	widths := make([]float64, len(pts))
	for i := range widths {
		widths[i] = width
	}
	rs.FillPath(Outline(pts, widths), c)
}

// FillPath rasterizes a closed path, lowering the circular arcs to
// cubic Beziers.
func (rs *rasterSurface) FillPath(path *Path, c color.Color) {
	if path == nil || path.IsEmpty() {
		return
	}
	ras := vector.NewRasterizer(rs.img.Bounds().Dx(), rs.img.Bounds().Dy())

	var cur Point
	for _, seg := range path.Segments() {
		switch seg.Op {
		case MoveOp:
			ras.MoveTo(rs.tx(seg.To.X), rs.ty(seg.To.Y))
			cur = seg.To
		case QuadOp:
			ras.QuadTo(rs.tx(seg.Ctrl.X), rs.ty(seg.Ctrl.Y), rs.tx(seg.To.X), rs.ty(seg.To.Y))
			cur = seg.To
		case ArcOp:
			for _, cb := range arcToCubics(cur, seg.Ctrl, seg.To) {
				ras.CubeTo(
					rs.tx(cb.Ctrl0.X), rs.ty(cb.Ctrl0.Y),
					rs.tx(cb.Ctrl1.X), rs.ty(cb.Ctrl1.Y),
					rs.tx(cb.To.X), rs.ty(cb.To.Y),
				)
			}
			cur = seg.To
		case CloseOp:
			ras.ClosePath()
		}
	}
	ras.Draw(rs.img, rs.img.Bounds(), image.NewUniform(c), image.Point{})
}

// dedupe drops consecutive coincident samples so a zero length span
// collapses to a single point and gets rendered as a round dot.
func dedupe(pts []Point) []Point {
	out := pts[:1]
	for _, pt := range pts[1:] {
		if pt != out[len(out)-1] {
			out = append(out, pt)
		}
	}
	return out
}

// flattenQuad subdivides a quadratic Bezier into a polyline. The step
// count grows with the control point deviation so flat quads stay
// cheap; collapsed quads degrade to a two point segment.
func flattenQuad(from, ctrl, to Point) []Point {
	dev := math.Hypot(ctrl.X-(from.X+to.X)/2, ctrl.Y-(from.Y+to.Y)/2)
	steps := int(math.Ceil(math.Sqrt(dev*4))) + 2
	if steps > 24 {
		steps = 24
	}

	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		pts = append(pts, Point{
			X: mt*mt*from.X + 2*mt*t*ctrl.X + t*t*to.X,
			Y: mt*mt*from.Y + 2*mt*t*ctrl.Y + t*t*to.Y,
		})
	}
	return pts
}
