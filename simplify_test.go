package inkpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplify_KeepsShortStrokes(t *testing.T) {
	assert := assert.New(t)

	assert.Len(Simplify(nil, 5, 0.25, 4), 0)

	one := []Point{{X: 3, Y: 4, Time: 10}}
	assert.Equal(one, Simplify(one, 5, 0.25, 4))

	two := []Point{{X: 0, Y: 0}, {X: 100, Y: 0, Time: 20}}
	assert.Equal(two, Simplify(two, 5, 0.25, 4))
}

func TestSimplify_SpacedPointsStayInPlace(t *testing.T) {
	assert := assert.New(t)

	pts := []Point{
		{X: 0, Y: 0, Time: 0},
		{X: 10, Y: 0, Time: 10},
		{X: 20, Y: 0, Time: 20},
	}
	out := Simplify(pts, 0.8, 0.25, 4)
	assert.Equal(pts, out)
}

func TestSimplify_DropsDensePoints(t *testing.T) {
	assert := assert.New(t)

	var pts []Point
	for x := 0; x <= 10; x++ {
		pts = append(pts, Point{X: float64(x), Time: int64(x)})
	}

	out := Simplify(pts, 5, 0.25, 4)
	assert.Len(out, 2)
	assert.Equal(0.0, out[0].X)
	assert.Equal(6.0, out[1].X)
}

func TestSimplify_PinsEndpointsAndSmoothsInterior(t *testing.T) {
	assert := assert.New(t)

	var pts []Point
	for i := 0; i <= 10; i++ {
		y := 0.0
		if i%2 == 1 {
			y = 8
		}
		pts = append(pts, Point{X: float64(i * 10), Y: y, Time: int64(i * 10)})
	}

	out := Simplify(pts, 5, 0.25, 4)
	assert.Len(out, len(pts))
	assert.Equal(pts[0], out[0])
	assert.Equal(pts[len(pts)-1], out[len(out)-1])

	// The middle sample sits at full smoothing ratio: a quarter of the
	// way from its original spot towards the middle of its neighbours.
	assert.InDelta(50.0, out[5].X, 1e-9)
	assert.InDelta(6.0, out[5].Y, 1e-9)

	// Re-simplifying the output drops no further points: the spacing
	// survived the first pass.
	assert.Len(Simplify(out, 5, 0.25, 4), len(out))
}

func TestSimplify_InputUntouched(t *testing.T) {
	assert := assert.New(t)

	pts := []Point{
		{X: 0, Y: 0, Time: 0},
		{X: 10, Y: 8, Time: 10},
		{X: 20, Y: 0, Time: 20},
		{X: 30, Y: 8, Time: 30},
		{X: 40, Y: 0, Time: 40},
		{X: 50, Y: 8, Time: 50},
		{X: 60, Y: 0, Time: 60},
	}
	orig := make([]Point, len(pts))
	copy(orig, pts)

	first := Simplify(pts, 5, 0.25, 4)
	second := Simplify(pts, 5, 0.25, 4)

	assert.Equal(orig, pts)
	assert.Equal(first, second)
}
