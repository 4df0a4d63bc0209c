package inkpad

import (
	"image/color"

	"github.com/esimov/inkpad/utils"
)

// colorOf resolves a stroke color string, defaulting to opaque black
// on malformed input.
func colorOf(hex string) color.NRGBA {
	return utils.HexToRGBA(hex)
}

// Surface is the drawing backend the stroke renderer targets. The
// raster exporter and the Gio canvas both implement it, so the same
// centerline walk produces identical ink on screen and on disk.
type Surface interface {
	// FillRect fills an axis aligned rectangle.
	FillRect(r Rect, c color.Color)
	// StrokeQuad strokes a quadratic Bezier segment with a constant
	// width, round caps included.
	StrokeQuad(from, ctrl, to Point, width float64, c color.Color)
	// FillPath fills a closed path with the nonzero winding rule.
	FillPath(path *Path, c color.Color)
}

// DrawStroke renders a stroke onto the surface using the pad's current
// configuration: the centerline is simplified, the widths modulated,
// and each span between consecutive sample midpoints stroked as a
// quadratic through the shared sample.
func (p *Pad) DrawStroke(dst Surface, s Stroke) {
	pts, widths := p.strokeGeometry(s)
	col := colorOf(s.Color)

	switch len(pts) {
	case 0:
		return
	case 1:
		dst.FillPath(dotPath(pts[0], p.dotRadius(s.MaxWidth)), col)
		return
	}

	prev := pts[0]
	for i := 1; i < len(pts); i++ {
		mid := midpoint(pts[i-1], pts[i])
		width := (widths[i-1] + widths[i]) / 2
		dst.StrokeQuad(prev, pts[i-1], mid, width, col)
		prev = mid
	}
	last := len(pts) - 1
	dst.StrokeQuad(prev, pts[last], pts[last], widths[last], col)
}

// DrawStrokes renders the whole collection in insertion order; later
// strokes paint over earlier ones.
func (p *Pad) DrawStrokes(dst Surface) {
	for _, s := range p.strokes {
		p.DrawStroke(dst, s)
	}
}

// DrawCurrent renders the in-progress gesture so the canvas can echo
// the pen without waiting for the stroke to be finalized.
func (p *Pad) DrawCurrent(dst Surface) {
	if !p.isDrawing || len(p.current) == 0 {
		return
	}
	p.DrawStroke(dst, Stroke{
		Points:   p.current,
		Color:    p.PenColor,
		MinWidth: p.MinWidth,
		MaxWidth: p.MaxWidth,
	})
}
