package inkpad

import (
	"math"

	"github.com/esimov/inkpad/utils"
)

// SegmentOp identifies the drawing operation a path segment performs.
type SegmentOp int

const (
	// MoveOp starts a new subpath at the segment end point.
	MoveOp SegmentOp = iota
	// QuadOp draws a quadratic Bézier curve towards the segment end point.
	QuadOp
	// ArcOp draws a circular arc passing through the control point
	// (the arc apex) towards the segment end point.
	ArcOp
	// CloseOp closes the current subpath.
	CloseOp
)

// Segment is a single path operation. Ctrl is the quadratic control
// point for QuadOp and the arc apex for ArcOp; it is unused otherwise.
type Segment struct {
	Op   SegmentOp
	Ctrl Point
	To   Point
}

// Path is a connected sequence of quadratic curves and circular arcs,
// produced by the outline builder. It deliberately supports only the
// operations the stroke geometry needs.
type Path struct {
	segs []Segment
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.segs = append(p.segs, Segment{Op: MoveOp, To: pt})
}

// QuadTo appends a quadratic curve from the current position to `to`,
// using ctrl as the control point.
func (p *Path) QuadTo(ctrl, to Point) {
	p.segs = append(p.segs, Segment{Op: QuadOp, Ctrl: ctrl, To: to})
}

// ArcTo appends a circular arc from the current position to `to`,
// passing through the apex point.
func (p *Path) ArcTo(apex, to Point) {
	p.segs = append(p.segs, Segment{Op: ArcOp, Ctrl: apex, To: to})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Op: CloseOp})
}

// Segments exposes the recorded path operations in insertion order.
func (p *Path) Segments() []Segment {
	return p.segs
}

// IsEmpty reports whether the path contains no drawing operation.
func (p *Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// Bounds returns the exact bounding box of the path geometry.
// The second return value is false for an empty path.
func (p *Path) Bounds() (Rect, bool) {
	var (
		r   Rect
		cur Point
		ok  bool
	)
	add := func(x, y float64) {
		if !ok {
			r = Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
			ok = true
			return
		}
		r.MinX = math.Min(r.MinX, x)
		r.MinY = math.Min(r.MinY, y)
		r.MaxX = math.Max(r.MaxX, x)
		r.MaxY = math.Max(r.MaxY, y)
	}

	for _, s := range p.segs {
		switch s.Op {
		case MoveOp:
			add(s.To.X, s.To.Y)
		case QuadOp:
			add(cur.X, cur.Y)
			add(s.To.X, s.To.Y)
			// The curve can exceed the endpoint hull only where its
			// derivative vanishes: t = (p0-c) / (p0 - 2c + p1) per axis.
			for _, axis := range [2][3]float64{
				{cur.X, s.Ctrl.X, s.To.X},
				{cur.Y, s.Ctrl.Y, s.To.Y},
			} {
				denom := axis[0] - 2*axis[1] + axis[2]
				if denom == 0 {
					continue
				}
				t := (axis[0] - axis[1]) / denom
				if t <= 0 || t >= 1 {
					continue
				}
				bx := quadAt(cur.X, s.Ctrl.X, s.To.X, t)
				by := quadAt(cur.Y, s.Ctrl.Y, s.To.Y, t)
				add(bx, by)
			}
		case ArcOp:
			add(cur.X, cur.Y)
			add(s.Ctrl.X, s.Ctrl.Y)
			add(s.To.X, s.To.Y)
			if c, radius, valid := circumcircle(cur, s.Ctrl, s.To); valid {
				a0 := math.Atan2(cur.Y-c.Y, cur.X-c.X)
				sweep := arcSweep(c, cur, s.Ctrl, s.To)
				// Include the axis-aligned extreme points covered by the sweep.
				for q := 0; q < 4; q++ {
					theta := float64(q) * math.Pi / 2
					if angleOnArc(a0, sweep, theta) {
						add(c.X+radius*math.Cos(theta), c.Y+radius*math.Sin(theta))
					}
				}
			}
		}
		if s.Op != CloseOp {
			cur = s.To
		}
	}
	return r, ok
}

// quadAt evaluates a one dimensional quadratic Bézier at parameter t.
func quadAt(p0, c, p1, t float64) float64 {
	u := 1 - t
	return u*u*p0 + 2*u*t*c + t*t*p1
}

// circumcircle returns the center and radius of the circle passing
// through the three provided points. The third return value is false
// when the points are (nearly) collinear.
func circumcircle(a, b, c Point) (Point, float64, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if utils.Abs(d) < 1e-12 {
		return Point{}, 0, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d

	center := Point{X: ux, Y: uy}
	return center, center.DistanceTo(a), true
}

// arcSweep returns the signed sweep angle of the arc starting at
// `from`, passing through apex and ending at `to` around center c.
// Positive values advance in the direction of increasing angles.
func arcSweep(c, from, apex, to Point) float64 {
	a0 := math.Atan2(from.Y-c.Y, from.X-c.X)
	a1 := math.Atan2(apex.Y-c.Y, apex.X-c.X)
	a2 := math.Atan2(to.Y-c.Y, to.X-c.X)

	sweep := normAngle(a2 - a0)
	if normAngle(a1-a0) > sweep {
		// The apex is not covered going forward, so the arc runs backwards.
		sweep -= 2 * math.Pi
	}
	return sweep
}

// normAngle maps an angle to the [0, 2π) interval.
func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// angleOnArc reports whether the absolute angle theta is covered by an
// arc starting at angle a0 with the given signed sweep.
func angleOnArc(a0, sweep, theta float64) bool {
	if sweep >= 0 {
		return normAngle(theta-a0) <= sweep
	}
	return normAngle(a0-theta) <= -sweep
}

// Cubic is a cubic Bézier curve segment used when lowering circular
// arcs for renderers which have no native arc support.
type Cubic struct {
	Ctrl0, Ctrl1, To Point
}

// arcToCubics approximates the circular arc from→apex→to with a chain
// of cubic Bézier curves, one per quarter circle at most. Degenerate
// (collinear) input falls back to a straight chord.
func arcToCubics(from, apex, to Point) []Cubic {
	c, radius, ok := circumcircle(from, apex, to)
	if !ok {
		mid := midpoint(from, to)
		return []Cubic{{Ctrl0: mid, Ctrl1: mid, To: to}}
	}

	a0 := math.Atan2(from.Y-c.Y, from.X-c.X)
	sweep := arcSweep(c, from, apex, to)

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(math.Abs(step)/4) * radius

	dir := 1.0
	if sweep < 0 {
		dir = -1
	}

	cubics := make([]Cubic, 0, n)
	for i := 0; i < n; i++ {
		t0 := a0 + float64(i)*step
		t1 := t0 + step

		p0 := Point{X: c.X + radius*math.Cos(t0), Y: c.Y + radius*math.Sin(t0)}
		p1 := Point{X: c.X + radius*math.Cos(t1), Y: c.Y + radius*math.Sin(t1)}

		// Unit tangents along the direction of travel.
		tan0 := Point{X: -math.Sin(t0) * dir, Y: math.Cos(t0) * dir}
		tan1 := Point{X: -math.Sin(t1) * dir, Y: math.Cos(t1) * dir}

		cubics = append(cubics, Cubic{
			Ctrl0: Point{X: p0.X + tan0.X*k, Y: p0.Y + tan0.Y*k},
			Ctrl1: Point{X: p1.X - tan1.X*k, Y: p1.Y - tan1.Y*k},
			To:    p1,
		})
	}
	// Snap the chain end to the exact arc end point.
	cubics[len(cubics)-1].To = to

	return cubics
}
