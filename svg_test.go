package inkpad

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSVG_EmptyDocument(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Width, pad.Height = 200, 100

	var buf bytes.Buffer
	assert.NoError(pad.ToSVG(&buf, nil))

	var doc svgDoc
	assert.NoError(xml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal("200", doc.Width)
	assert.Equal("100", doc.Height)
	assert.Equal("0 0 200 100", doc.ViewBox)
	assert.NotNil(doc.Rect)
	assert.Equal(pad.BackgroundColor, doc.Rect.Fill)
	assert.Empty(doc.Paths)
}

func TestToSVG_OnePathPerStroke(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Begin(Point{X: 10, Y: 10, Time: 0})
	pad.Move(Point{X: 50, Y: 20, Time: 50})
	pad.Move(Point{X: 90, Y: 10, Time: 100})
	pad.End()

	pad.PenColor = "#ff0000"
	pad.Begin(Point{X: 40, Y: 40})
	pad.End()

	var buf bytes.Buffer
	assert.NoError(pad.ToSVG(&buf, nil))

	var doc svgDoc
	assert.NoError(xml.Unmarshal(buf.Bytes(), &doc))
	assert.Len(doc.Paths, 2)

	assert.Equal("#000000", doc.Paths[0].Fill)
	assert.Equal("#ff0000", doc.Paths[1].Fill)
	for _, p := range doc.Paths {
		assert.Equal("nonzero", p.FillRule)
		assert.True(strings.HasPrefix(p.D, "M "))
		assert.True(strings.HasSuffix(p.D, "Z"))
		assert.Contains(p.D, "A ")
	}
	assert.Contains(doc.Paths[0].D, "Q ")
}

func TestToSVG_TransparentOmitsBackground(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()

	var buf bytes.Buffer
	assert.NoError(pad.ToSVG(&buf, &ExportOptions{Transparent: true}))

	var doc svgDoc
	assert.NoError(xml.Unmarshal(buf.Bytes(), &doc))
	assert.Nil(doc.Rect)
}

func TestToSVG_TrimmedFrame(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Begin(Point{X: 100, Y: 100})
	pad.End()

	var buf bytes.Buffer
	assert.NoError(pad.ToSVG(&buf, &ExportOptions{Trim: true, Margin: 10}))

	var doc svgDoc
	assert.NoError(xml.Unmarshal(buf.Bytes(), &doc))

	// Ink bounds of the dot inflated by the margin.
	half := pad.MaxWidth / 2
	assert.Equal("88.75 88.75 22.5 22.5", doc.ViewBox)
	assert.Equal(svgNum(2*(half+10)), doc.Width)
}

func TestToSVG_PenColorOverride(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Begin(Point{X: 10, Y: 10})
	pad.End()

	var buf bytes.Buffer
	assert.NoError(pad.ToSVG(&buf, &ExportOptions{PenColor: "#00ff00"}))

	var doc svgDoc
	assert.NoError(xml.Unmarshal(buf.Bytes(), &doc))
	assert.Len(doc.Paths, 1)
	assert.Equal("#00ff00", doc.Paths[0].Fill)
}

func TestSvgNum(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.5", svgNum(1.5))
	assert.Equal("2", svgNum(2.0001))
	assert.Equal("0", svgNum(0))
	assert.Equal("0", svgNum(-0.0001))
	assert.Equal("-3.25", svgNum(-3.25))
}
