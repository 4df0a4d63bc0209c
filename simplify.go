package inkpad

import (
	"math"

	"github.com/esimov/inkpad/utils"
)

// Simplify thins out a raw input polyline in two passes: a minimum
// distance filter followed by a fade weighted neighbour averaging
// smoothing. The function is pure: the input slice is left untouched
// and the result is fully deterministic.
//
// The distance filter always keeps the first point and afterwards only
// points being farther away than minDistance from the previously kept
// one. Whenever the filter retains fewer than three points the result
// is returned as is, since there is no interior point left to smooth.
//
// The smoothing pass moves every interior point towards the middle of
// its neighbours. The smoothing amount is ramped down near both ends
// over fadeLength points, keeping deliberate stroke endpoints (serifs,
// stroke starts) untouched while still ironing out interior wobble.
func Simplify(points []Point, minDistance, smoothingRatio float64, fadeLength int) []Point {
	if len(points) == 0 {
		return nil
	}

	filtered := make([]Point, 0, len(points))
	filtered = append(filtered, points[0])

	last := points[0]
	for _, pt := range points[1:] {
		if pt.DistanceTo(last) > minDistance {
			filtered = append(filtered, pt)
			last = pt
		}
	}

	if len(filtered) < 3 {
		return filtered
	}

	smoothed := make([]Point, len(filtered))
	copy(smoothed, filtered)

	n := len(filtered)
	for i := 1; i < n-1; i++ {
		fadeIn := 1.0
		fadeOut := 1.0
		if fadeLength > 0 {
			fadeIn = math.Min(1, float64(i)/float64(fadeLength))
			fadeOut = math.Min(1, float64(n-2-i)/float64(fadeLength))
		}
		ratio := smoothingRatio * utils.Min(fadeIn, fadeOut)

		mid := midpoint(filtered[i-1], filtered[i+1])
		smoothed[i].X = (1-ratio)*filtered[i].X + ratio*mid.X
		smoothed[i].Y = (1-ratio)*filtered[i].Y + ratio*mid.Y
	}

	return smoothed
}
