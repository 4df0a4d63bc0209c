package inkpad

import "math"

// Point is a single timestamped input sample. Time is expressed in
// milliseconds relative to an arbitrary base. A zero Pressure value
// means the input device did not report any pressure information.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Time     int64   `json:"time"`
	Pressure float64 `json:"pressure,omitempty"`
}

// Pt returns a new point without time and pressure information attached.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// VelocityFrom returns the travel speed from q to p in pixels/millisecond.
// A zero elapsed time yields a negative value, signaling the caller
// to fall back to the previously filtered velocity.
func (p Point) VelocityFrom(q Point) float64 {
	dt := p.Time - q.Time
	if dt <= 0 {
		return -1
	}
	return p.DistanceTo(q) / float64(dt)
}

// midpoint returns the middle point of the a-b segment.
func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
