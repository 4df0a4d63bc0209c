package inkpad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_EmptyBounds(t *testing.T) {
	assert := assert.New(t)

	var p Path
	_, ok := p.Bounds()
	assert.True(p.IsEmpty())
	assert.False(ok)
}

func TestPath_QuadBounds(t *testing.T) {
	assert := assert.New(t)

	var p Path
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(5, 10), Pt(10, 0))

	r, ok := p.Bounds()
	assert.True(ok)
	assert.InDelta(0.0, r.MinX, 1e-9)
	assert.InDelta(0.0, r.MinY, 1e-9)
	assert.InDelta(10.0, r.MaxX, 1e-9)
	// The curve apex sits halfway between the endpoints and the
	// control point.
	assert.InDelta(5.0, r.MaxY, 1e-9)
}

func TestPath_ArcBounds(t *testing.T) {
	assert := assert.New(t)

	// Half circle of radius 1 around the origin, drawn through the
	// topmost point. The bounding box must include the axis extremes
	// covered by the sweep, not just the three defining points.
	var p Path
	p.MoveTo(Pt(-1, 0))
	p.ArcTo(Pt(0, 1), Pt(1, 0))

	r, ok := p.Bounds()
	assert.True(ok)
	assert.InDelta(-1.0, r.MinX, 1e-9)
	assert.InDelta(0.0, r.MinY, 1e-9)
	assert.InDelta(1.0, r.MaxX, 1e-9)
	assert.InDelta(1.0, r.MaxY, 1e-9)
}

func TestCircumcircle(t *testing.T) {
	assert := assert.New(t)

	c, r, ok := circumcircle(Pt(0, 1), Pt(1, 0), Pt(0, -1))
	assert.True(ok)
	assert.InDelta(0.0, c.X, 1e-9)
	assert.InDelta(0.0, c.Y, 1e-9)
	assert.InDelta(1.0, r, 1e-9)

	_, _, ok = circumcircle(Pt(0, 0), Pt(1, 1), Pt(2, 2))
	assert.False(ok)
}

func TestArcToCubics_StaysOnCircle(t *testing.T) {
	assert := assert.New(t)

	from, apex, to := Pt(0, 1), Pt(1, 0), Pt(0, -1)
	cubics := arcToCubics(from, apex, to)

	// A half circle needs two quarter circle segments.
	assert.Len(cubics, 2)
	assert.Equal(to, cubics[len(cubics)-1].To)

	for _, cb := range cubics {
		assert.InDelta(1.0, math.Hypot(cb.To.X, cb.To.Y), 1e-6)
	}
}

func TestArcToCubics_CollinearFallsBackToChord(t *testing.T) {
	assert := assert.New(t)

	cubics := arcToCubics(Pt(0, 0), Pt(5, 0), Pt(10, 0))
	assert.Len(cubics, 1)
	assert.Equal(Pt(10, 0), cubics[0].To)
}
