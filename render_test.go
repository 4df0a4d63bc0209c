package inkpad

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordSurface counts the drawing operations issued by the renderer.
type recordSurface struct {
	rects int
	paths int
	quads []recordedQuad
}

type recordedQuad struct {
	from, ctrl, to Point
	width          float64
	color          color.Color
}

func (rs *recordSurface) FillRect(r Rect, c color.Color) {
	rs.rects++
}

func (rs *recordSurface) StrokeQuad(from, ctrl, to Point, width float64, c color.Color) {
	rs.quads = append(rs.quads, recordedQuad{from: from, ctrl: ctrl, to: to, width: width, color: c})
}

func (rs *recordSurface) FillPath(path *Path, c color.Color) {
	rs.paths++
}

func TestDrawStroke_SinglePointFillsADot(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	surf := &recordSurface{}

	pad.DrawStroke(surf, Stroke{
		Points:   []Point{Pt(10, 10)},
		Color:    "#000000",
		MinWidth: pad.MinWidth,
		MaxWidth: pad.MaxWidth,
	})

	assert.Equal(1, surf.paths)
	assert.Empty(surf.quads)
}

func TestDrawStroke_MidpointWalk(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	surf := &recordSurface{}

	pts := []Point{
		{X: 0, Y: 0, Time: 0},
		{X: 20, Y: 0, Time: 20},
		{X: 40, Y: 0, Time: 40},
	}
	pad.DrawStroke(surf, Stroke{Points: pts, MinWidth: 0.5, MaxWidth: 2.5})

	// One span per sample pair plus the closing span onto the last
	// sample itself.
	assert.Len(surf.quads, 3)

	first := surf.quads[0]
	assert.Equal(Pt(0, 0), first.from)
	assert.Equal(Pt(10, 0), Pt(first.to.X, first.to.Y))

	second := surf.quads[1]
	assert.Equal(Pt(10, 0), Pt(second.from.X, second.from.Y))
	assert.Equal(pts[1].X, second.ctrl.X)

	last := surf.quads[2]
	assert.Equal(pts[2].X, last.to.X)
	assert.Equal(last.ctrl, last.to)
}

func TestDrawStrokes_PaintsInInsertionOrder(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Begin(Point{X: 10, Y: 10, Time: 0})
	pad.Move(Point{X: 40, Y: 10, Time: 30})
	pad.End()
	pad.Begin(Point{X: 10, Y: 30, Time: 100})
	pad.Move(Point{X: 40, Y: 30, Time: 130})
	pad.End()

	surf := &recordSurface{}
	pad.DrawStrokes(surf)

	assert.Len(surf.quads, 4)
	assert.Equal(10.0, surf.quads[0].from.Y)
	assert.Equal(30.0, surf.quads[2].from.Y)
}

func TestDrawCurrent_OnlyWhileDrawing(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	surf := &recordSurface{}

	pad.DrawCurrent(surf)
	assert.Empty(surf.quads)
	assert.Zero(surf.paths)

	pad.Begin(Point{X: 5, Y: 5})
	pad.DrawCurrent(surf)
	assert.Equal(1, surf.paths)

	pad.End()
	surf = &recordSurface{}
	pad.DrawCurrent(surf)
	assert.Zero(surf.paths)
}
