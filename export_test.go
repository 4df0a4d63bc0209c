package inkpad

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/esimov/inkpad/imop"
	"github.com/stretchr/testify/assert"
)

func TestToImage_CanvasDimensions(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Width, pad.Height = 100, 80

	img := pad.ToImage(nil)
	assert.Equal(image.Rect(0, 0, 100, 80), img.Bounds())

	scaled := pad.ToImage(&ExportOptions{DPI: 192})
	assert.Equal(image.Rect(0, 0, 200, 160), scaled.Bounds())
}

func TestToImage_BackgroundColor(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Width, pad.Height = 10, 10
	pad.BackgroundColor = "#ff0000"

	img := pad.ToImage(nil).(*image.NRGBA)
	c := img.NRGBAAt(0, 0)
	assert.EqualValues(255, c.R)
	assert.EqualValues(0, c.G)
	assert.EqualValues(0, c.B)
	assert.EqualValues(255, c.A)
}

func TestToImage_TransparentBackground(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Width, pad.Height = 10, 10

	img := pad.ToImage(&ExportOptions{Transparent: true}).(*image.NRGBA)
	assert.EqualValues(0, img.NRGBAAt(0, 0).A)
}

func TestToImage_InkIsPainted(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Width, pad.Height = 100, 80
	pad.MaxWidth = 8

	pad.Begin(Point{X: 50, Y: 40})
	pad.End()

	img := pad.ToImage(nil).(*image.NRGBA)

	// The dot center must be solid ink over the white page.
	center := img.NRGBAAt(50, 40)
	assert.True(center.R < 20, "expected dark ink at the dot center, got %v", center)

	corner := img.NRGBAAt(0, 0)
	assert.EqualValues(255, corner.R)
}

func TestToImage_TrimmedFrame(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Width, pad.Height = 500, 500
	pad.Begin(Point{X: 250, Y: 250})
	pad.End()

	img := pad.ToImage(&ExportOptions{Trim: true})

	// The frame shrinks to the dot extent, one maximum width across.
	side := int(pad.MaxWidth) + 1
	assert.Equal(side, img.Bounds().Dx())
	assert.Equal(side, img.Bounds().Dy())
}

func TestToImage_Resample(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Width, pad.Height = 100, 80

	img := pad.ToImage(&ExportOptions{Width: 50})
	assert.Equal(50, img.Bounds().Dx())
	assert.Equal(40, img.Bounds().Dy())
}

func TestToImage_BlendMode(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	pad.Width, pad.Height = 10, 10
	pad.BackgroundColor = "#808080"

	// Multiplying a fully transparent ink layer darkens the page to
	// black, since the blend mixes the composed pixel with the layer.
	img := pad.ToImage(&ExportOptions{BlendMode: imop.Multiply}).(*image.NRGBA)
	assert.EqualValues(0, img.NRGBAAt(5, 5).R)
	assert.EqualValues(0, img.NRGBAAt(5, 5).A)
}

func TestEncodeImage(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	for _, ext := range []string{".png", ".jpg", ".jpeg", ".bmp"} {
		var buf bytes.Buffer
		assert.NoError(EncodeImage(&buf, img, ext))
		assert.True(buf.Len() > 0)
	}

	var buf bytes.Buffer
	err := EncodeImage(&buf, img, ".gif")
	assert.Error(err)
	assert.Contains(err.Error(), "unsupported output format")
}

func TestProcess_StreamToSVG(t *testing.T) {
	assert := assert.New(t)

	src := NewPad()
	src.Begin(Point{X: 10, Y: 10, Time: 0})
	src.Move(Point{X: 40, Y: 20, Time: 40})
	src.End()

	var data bytes.Buffer
	assert.NoError(src.Save(&data))

	var out bytes.Buffer
	pad := NewPad()
	assert.NoError(pad.Process(&data, &out, ".svg", nil))
	assert.Contains(out.String(), "<svg")

	// The processing pad keeps its own collection untouched.
	assert.True(pad.IsEmpty())
}

func TestProcess_InvalidInput(t *testing.T) {
	assert := assert.New(t)

	pad := NewPad()
	var out bytes.Buffer
	err := pad.Process(strings.NewReader("garbage"), &out, ".png", nil)
	assert.Error(err)
	assert.Zero(out.Len())
}
