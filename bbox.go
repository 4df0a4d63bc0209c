package inkpad

import "math"

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of the box.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Union returns the smallest box covering both operands.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Inflate grows the box by the given margin on every side.
func (r Rect) Inflate(margin float64) Rect {
	return Rect{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// inkBounds returns the tightest box covering the rendered extent of a
// width tagged polyline, inflating every point by its half width. The
// second return value is false for an empty polyline.
func inkBounds(points []Point, widths []float64) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}

	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for i, pt := range points {
		half := widths[i] / 2
		r.MinX = math.Min(r.MinX, pt.X-half)
		r.MinY = math.Min(r.MinY, pt.Y-half)
		r.MaxX = math.Max(r.MaxX, pt.X+half)
		r.MaxY = math.Max(r.MaxY, pt.Y+half)
	}
	return r, true
}
