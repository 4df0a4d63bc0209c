/*
Package inkpad is a freehand ink stroke capture and rendering library. It turns raw
pointer samples into smooth, velocity or pressure modulated strokes and renders the
collection as an SVG document or a raster image.

The package provides a command line interface, supporting various flags for the different
rendering operations. To check the supported commands type:

	$ inkpad --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/inkpad"
	)

	func main() {
		pad := inkpad.NewPad()

		pad.Begin(inkpad.Point{X: 10, Y: 20, Time: 0})
		pad.Move(inkpad.Point{X: 40, Y: 25, Time: 16})
		pad.End()

		if err := pad.ToSVG(os.Stdout, nil); err != nil {
			fmt.Printf("Error rendering the strokes: %s", err.Error())
		}
	}
*/
package inkpad
