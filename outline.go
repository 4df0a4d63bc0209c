package inkpad

import "math"

// Outline converts a width tagged polyline into a single closed path
// suitable for a nonzero fill. The centerline is displaced by half
// width along the outward normal on both sides; the two offset curves
// are stitched together with semicircular end caps into one watertight
// outline approximating a tapered brush stroke.
//
// The widths slice must be parallel to the points slice. A single
// point produces a full circle made of two half arcs; an empty input
// produces an empty path. Self intersecting centerlines are passed
// through untreated.
func Outline(points []Point, widths []float64) *Path {
	path := &Path{}

	switch len(points) {
	case 0:
		return path
	case 1:
		return dotPath(points[0], widths[0]/2)
	}

	n := len(points)
	left := make([]Point, n)
	right := make([]Point, n)

	for i := 0; i < n; i++ {
		var tx, ty float64
		switch i {
		case 0:
			tx = points[1].X - points[0].X
			ty = points[1].Y - points[0].Y
		case n - 1:
			tx = points[n-1].X - points[n-2].X
			ty = points[n-1].Y - points[n-2].Y
		default:
			tx = (points[i+1].X - points[i-1].X) / 2
			ty = (points[i+1].Y - points[i-1].Y) / 2
		}

		length := math.Hypot(tx, ty)
		if length == 0 {
			// Degenerate tangent: keep the raw vector, only avoid the
			// division blowing up.
			length = 1
		}
		// Outward normal, the tangent rotated by 90 degrees.
		nx, ny := -ty/length, tx/length

		r := widths[i] / 2
		left[i] = Point{X: points[i].X + nx*r, Y: points[i].Y + ny*r}
		right[i] = Point{X: points[i].X - nx*r, Y: points[i].Y - ny*r}
	}

	r0 := widths[0] / 2
	rn := widths[n-1] / 2

	// Unit tangents at both ends, used to place the cap apexes.
	sx, sy := unitVec(points[1].X-points[0].X, points[1].Y-points[0].Y)
	ex, ey := unitVec(points[n-1].X-points[n-2].X, points[n-1].Y-points[n-2].Y)

	path.MoveTo(left[0])

	// Start cap: half circle bulging backwards, against the stroke direction.
	startApex := Point{X: points[0].X - sx*r0, Y: points[0].Y - sy*r0}
	path.ArcTo(startApex, right[0])

	// Right side, walked forward with quadratic curves through midpoints.
	curveThroughMidpoints(path, right, false)

	// End cap: half circle bulging forward, along the stroke direction.
	endApex := Point{X: points[n-1].X + ex*rn, Y: points[n-1].Y + ey*rn}
	path.ArcTo(endApex, left[n-1])

	// Left side, walked backwards the same way, back to the start.
	curveThroughMidpoints(path, left, true)

	path.Close()
	return path
}

// dotPath returns a full circle of the given radius composed of two
// half arcs, representing a single point stroke.
func dotPath(center Point, radius float64) *Path {
	path := &Path{}

	west := Point{X: center.X - radius, Y: center.Y}
	east := Point{X: center.X + radius, Y: center.Y}
	north := Point{X: center.X, Y: center.Y - radius}
	south := Point{X: center.X, Y: center.Y + radius}

	path.MoveTo(west)
	path.ArcTo(north, east)
	path.ArcTo(south, west)
	path.Close()

	return path
}

// curveThroughMidpoints connects the offset points with quadratic
// curves using each point as the control point and the middle of each
// consecutive pair as the on-curve point. This classic technique keeps
// the outline smooth without any explicit curvature estimation. The
// walk starts from the path's current position, which must coincide
// with the first (or, reversed, the last) offset point.
func curveThroughMidpoints(path *Path, pts []Point, reverse bool) {
	n := len(pts)
	if reverse {
		for i := n - 2; i > 0; i-- {
			path.QuadTo(pts[i], midpoint(pts[i], pts[i-1]))
		}
		path.QuadTo(pts[0], pts[0])
		return
	}
	for i := 1; i < n-1; i++ {
		path.QuadTo(pts[i], midpoint(pts[i], pts[i+1]))
	}
	path.QuadTo(pts[n-1], pts[n-1])
}

// unitVec normalizes the provided vector, guarding against zero length.
func unitVec(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		length = 1
	}
	return x / length, y / length
}
