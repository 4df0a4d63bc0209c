package inkpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutline_Empty(t *testing.T) {
	assert := assert.New(t)

	path := Outline(nil, nil)
	assert.True(path.IsEmpty())
}

func TestOutline_SinglePointIsCircle(t *testing.T) {
	assert := assert.New(t)

	path := Outline([]Point{Pt(10, 20)}, []float64{4})
	segs := path.Segments()

	assert.Len(segs, 4)
	assert.Equal(MoveOp, segs[0].Op)
	assert.Equal(ArcOp, segs[1].Op)
	assert.Equal(ArcOp, segs[2].Op)
	assert.Equal(CloseOp, segs[3].Op)

	// The dot covers exactly the half width in every direction.
	r, ok := path.Bounds()
	assert.True(ok)
	assert.InDelta(8.0, r.MinX, 1e-9)
	assert.InDelta(18.0, r.MinY, 1e-9)
	assert.InDelta(12.0, r.MaxX, 1e-9)
	assert.InDelta(22.0, r.MaxY, 1e-9)
}

func TestOutline_StraightStrokeBounds(t *testing.T) {
	assert := assert.New(t)

	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)}
	path := Outline(pts, []float64{2, 2, 2})

	r, ok := path.Bounds()
	assert.True(ok)
	// One half width sideways, one half width beyond each cap.
	assert.InDelta(-1.0, r.MinX, 1e-9)
	assert.InDelta(-1.0, r.MinY, 1e-9)
	assert.InDelta(21.0, r.MaxX, 1e-9)
	assert.InDelta(1.0, r.MaxY, 1e-9)
}

func TestOutline_ClosedWalk(t *testing.T) {
	assert := assert.New(t)

	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)}
	path := Outline(pts, []float64{2, 2, 2})
	segs := path.Segments()

	// Move, start cap, two quads along one side, end cap, two quads
	// back along the other side, close.
	assert.Len(segs, 8)
	assert.Equal(MoveOp, segs[0].Op)
	assert.Equal(ArcOp, segs[1].Op)
	assert.Equal(QuadOp, segs[2].Op)
	assert.Equal(QuadOp, segs[3].Op)
	assert.Equal(ArcOp, segs[4].Op)
	assert.Equal(QuadOp, segs[5].Op)
	assert.Equal(QuadOp, segs[6].Op)
	assert.Equal(CloseOp, segs[7].Op)

	// The final quad must land back on the subpath start so the
	// nonzero fill gets a watertight outline.
	assert.Equal(segs[0].To, segs[len(segs)-2].To)
}

func TestOutline_TaperedWidths(t *testing.T) {
	assert := assert.New(t)

	pts := []Point{Pt(0, 0), Pt(10, 0)}
	path := Outline(pts, []float64{4, 1})

	r, ok := path.Bounds()
	assert.True(ok)
	// The wide end dominates the vertical extent, each cap extends by
	// its own half width.
	assert.InDelta(-2.0, r.MinX, 1e-9)
	assert.InDelta(-2.0, r.MinY, 1e-9)
	assert.InDelta(10.5, r.MaxX, 1e-9)
	assert.InDelta(2.0, r.MaxY, 1e-9)
}

func TestInkBounds(t *testing.T) {
	assert := assert.New(t)

	_, ok := inkBounds(nil, nil)
	assert.False(ok)

	r, ok := inkBounds([]Point{Pt(5, 5), Pt(15, 5)}, []float64{2, 4})
	assert.True(ok)
	assert.Equal(Rect{MinX: 4, MinY: 3, MaxX: 17, MaxY: 7}, r)
}

func TestRect_UnionInflate(t *testing.T) {
	assert := assert.New(t)

	a := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}
	b := Rect{MinX: -3, MinY: 2, MaxX: 4, MaxY: 9}

	assert.Equal(Rect{MinX: -3, MinY: 0, MaxX: 10, MaxY: 9}, a.Union(b))
	assert.Equal(a.Union(b), b.Union(a))
	assert.Equal(Rect{MinX: -1, MinY: -1, MaxX: 11, MaxY: 6}, a.Inflate(1))
	assert.Equal(10.0, a.Width())
	assert.Equal(5.0, a.Height())
}
