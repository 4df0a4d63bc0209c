package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gioui.org/app"
	"github.com/esimov/inkpad"
	"github.com/esimov/inkpad/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┬┌┐┌┬┌─┌─┐┌─┐┌┬┐
│││││├┴┐├─┘├─┤ ││
┴┘└┘┴ ┴┴  ┴ ┴─┴┘

Freehand ink stroke capture and rendering library.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source stroke file, directory or URL")
	destination = flag.String("out", pipeName, "Destination file or directory")
	format      = flag.String("format", "svg", "Output format used when the destination has no extension (svg, png, jpg, bmp)")
	gui         = flag.Bool("gui", false, "Open the interactive drawing board")
	width       = flag.Float64("width", inkpad.DefaultCanvasWidth, "Canvas width")
	height      = flag.Float64("height", inkpad.DefaultCanvasHeight, "Canvas height")
	dpi         = flag.Float64("dpi", 96, "Raster output resolution")
	trim        = flag.Bool("trim", false, "Trim the output to the ink bounds")
	margin      = flag.Float64("margin", 0, "Padding around the ink when trimming")
	bgColor     = flag.String("bg", inkpad.DefaultBackgroundColor, "Background color")
	penColor    = flag.String("pen", inkpad.DefaultPenColor, "Pen color")
	transparent = flag.Bool("transparent", false, "Omit the background layer")
	blendMode   = flag.String("blend", "", "Blend mode applied over the background (darken, lighten, multiply, screen, overlay)")
	minWidth    = flag.Float64("minwidth", inkpad.DefaultMinWidth, "Minimum stroke width")
	maxWidth    = flag.Float64("maxwidth", inkpad.DefaultMaxWidth, "Maximum stroke width")
	minDist     = flag.Float64("mindist", inkpad.DefaultMinDistance, "Minimum distance between two captured points")
	smoothing   = flag.Float64("smooth", inkpad.DefaultSmoothingRatio, "Stroke smoothing ratio")
	fadeLength  = flag.Int("fade", inkpad.DefaultFadeLength, "Smoothing fade length near the stroke endpoints")
	velWeight   = flag.Float64("vweight", inkpad.DefaultVelocityFilterWeight, "Velocity filter weight")
	dotSize     = flag.Float64("dot", 0, "Dot radius for single point strokes (0 = derived from the widths)")
	pressure    = flag.Bool("pressure", false, "Use the recorded pen pressure for the width modulation")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of stroke files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	pad := inkpad.NewPad()
	pad.MinWidth = *minWidth
	pad.MaxWidth = *maxWidth
	pad.MinDistance = *minDist
	pad.SmoothingRatio = *smoothing
	pad.FadeLength = *fadeLength
	pad.VelocityFilterWeight = *velWeight
	pad.DotSize = *dotSize
	pad.UsePressure = *pressure
	pad.PenColor = *penColor
	pad.BackgroundColor = *bgColor
	pad.Width = *width
	pad.Height = *height

	opts := &inkpad.ExportOptions{
		DPI:         *dpi,
		Trim:        *trim,
		Margin:      *margin,
		Transparent: *transparent,
		BlendMode:   *blendMode,
	}

	if *gui {
		runGUI(pad, opts)
		return
	}

	if *source == pipeName && term.IsTerminal(int(os.Stdin.Fd())) {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide an input stroke file, directory or URL!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	pad.Execute(&inkpad.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Format:   *format,
		Workers:  *workers,
		Export:   opts,
	})
}

// runGUI opens the drawing board, optionally preloaded from the source
// file. A .json destination is kept up to date while drawing; any
// other destination is rendered once the window is closed.
func runGUI(pad *inkpad.Pad, opts *inkpad.ExportOptions) {
	if *source != pipeName && utils.FileExists(*source) {
		f, err := os.Open(*source)
		if err != nil {
			log.Fatalf(utils.DecorateText("Unable to open the source file: %v", utils.ErrorMessage), err)
		}
		err = pad.Load(f)
		f.Close()
		if err != nil {
			log.Fatalf(utils.DecorateText("Unable to load the source strokes: %v", utils.ErrorMessage), err)
		}
	}

	g := inkpad.NewGUI(pad, int(pad.Width), int(pad.Height))

	dstExt := strings.ToLower(filepath.Ext(*destination))
	if *destination != pipeName && dstExt == ".json" {
		g.AutosavePath = *destination
	}

	go func() {
		code := 0
		if err := g.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n",
				utils.DecorateText(fmt.Sprintf("GUI error: %v", err), utils.ErrorMessage))
			code = 1
		} else if *destination != pipeName && dstExt != ".json" && dstExt != "" {
			if err := export(pad, *destination, dstExt, opts); err != nil {
				fmt.Fprintf(os.Stderr, "%s\n",
					utils.DecorateText(fmt.Sprintf("Unable to save the output: %v", err), utils.ErrorMessage))
				code = 1
			}
		}
		os.Exit(code)
	}()
	app.Main()
}

func export(pad *inkpad.Pad, dst, ext string, opts *inkpad.ExportOptions) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	if ext == ".svg" {
		return pad.ToSVG(f, opts)
	}
	return inkpad.EncodeImage(f, pad.ToImage(opts), ext)
}
