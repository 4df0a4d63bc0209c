package inkpad

import (
	"io"
)

// Default drawing options, applied by NewPad.
const (
	DefaultMinWidth             = 0.5
	DefaultMaxWidth             = 2.5
	DefaultMinDistance          = 5.0
	DefaultSmoothingRatio       = 0.25
	DefaultFadeLength           = 4
	DefaultVelocityFilterWeight = 0.7
	DefaultPenColor             = "#000000"
	DefaultBackgroundColor      = "#ffffff"
	DefaultCanvasWidth          = 800
	DefaultCanvasHeight         = 600
)

// Pad captures freehand pen input and owns the resulting stroke
// collection. All exported fields are configuration options; they can
// be adjusted freely between gestures. Pad is not safe for concurrent
// use: all geometry runs synchronously on the caller's (usually the
// UI event loop's) goroutine.
type Pad struct {
	// MinWidth and MaxWidth bound the modulated stroke width.
	MinWidth float64
	MaxWidth float64
	// MinDistance is the minimum spacing between two kept samples.
	MinDistance float64
	// SmoothingRatio controls how far interior points are pulled
	// towards the middle of their neighbours.
	SmoothingRatio float64
	// FadeLength is the number of points over which the smoothing is
	// ramped down near the stroke endpoints.
	FadeLength int
	// VelocityFilterWeight is the exponential smoothing weight applied
	// to the velocity estimate driving the width modulation.
	VelocityFilterWeight float64
	// DotSize overrides the radius of single point strokes. Zero means
	// the radius is derived from the configured widths.
	DotSize float64
	// UsePressure enables the pressure driven width mode for input
	// devices with real pressure resolution.
	UsePressure bool
	// PenColor and BackgroundColor are hexadecimal color strings.
	PenColor        string
	BackgroundColor string
	// Width and Height define the canvas geometry used as the default
	// export frame.
	Width  float64
	Height float64

	strokes   []Stroke
	current   []Point
	isDrawing bool
	events    notifier
}

// NewPad returns a pad initialized with the default drawing options.
func NewPad() *Pad {
	return &Pad{
		MinWidth:             DefaultMinWidth,
		MaxWidth:             DefaultMaxWidth,
		MinDistance:          DefaultMinDistance,
		SmoothingRatio:       DefaultSmoothingRatio,
		FadeLength:           DefaultFadeLength,
		VelocityFilterWeight: DefaultVelocityFilterWeight,
		PenColor:             DefaultPenColor,
		BackgroundColor:      DefaultBackgroundColor,
		Width:                DefaultCanvasWidth,
		Height:               DefaultCanvasHeight,
	}
}

// On registers a listener for the given pad lifecycle event.
// Listeners are invoked synchronously in registration order.
func (p *Pad) On(t EventType, fn Listener) {
	p.events.on(t, fn)
}

// Begin starts a new gesture at the given point. A gesture already in
// progress is discarded first; the input source is expected to
// serialize pointers, so this only happens on a missed terminal event.
func (p *Pad) Begin(pt Point) {
	p.current = p.current[:0]
	p.current = append(p.current, pt)
	p.isDrawing = true
	p.events.emit(Event{Type: EventBegin})
}

// Move records an intermediate sample of the active gesture.
// Samples arriving outside a gesture are dropped.
func (p *Pad) Move(pt Point) {
	if !p.isDrawing {
		return
	}
	p.current = append(p.current, pt)
}

// End finalizes the active gesture into a stroke, appends it to the
// collection and returns it. The second return value is false when no
// gesture was in progress or the gesture carried no sample.
func (p *Pad) End() (Stroke, bool) {
	if !p.isDrawing {
		return Stroke{}, false
	}
	p.isDrawing = false

	if len(p.current) == 0 {
		return Stroke{}, false
	}

	points := make([]Point, len(p.current))
	copy(points, p.current)
	p.current = p.current[:0]

	stroke := Stroke{
		Points:   points,
		Color:    p.PenColor,
		MinWidth: p.MinWidth,
		MaxWidth: p.MaxWidth,
	}
	p.strokes = append(p.strokes, stroke)
	p.events.emit(Event{Type: EventEnd, Stroke: &stroke})

	return stroke, true
}

// Cancel drops the active gesture without recording a stroke.
func (p *Pad) Cancel() {
	p.current = p.current[:0]
	p.isDrawing = false
}

// IsDrawing reports whether a gesture is currently in progress.
func (p *Pad) IsDrawing() bool {
	return p.isDrawing
}

// CurrentPoints exposes a copy of the samples collected so far for the
// active gesture, used by the GUI to preview the unfinalized stroke.
func (p *Pad) CurrentPoints() []Point {
	pts := make([]Point, len(p.current))
	copy(pts, p.current)
	return pts
}

// IsEmpty reports whether the pad holds no stroke.
func (p *Pad) IsEmpty() bool {
	return len(p.strokes) == 0
}

// Undo removes the most recently added stroke, leaving all earlier
// strokes untouched. It returns false on an empty collection.
func (p *Pad) Undo() bool {
	if len(p.strokes) == 0 {
		return false
	}
	last := p.strokes[len(p.strokes)-1]
	p.strokes = p.strokes[:len(p.strokes)-1]
	p.events.emit(Event{Type: EventUndo, Stroke: &last})

	return true
}

// Clear drops the whole stroke collection and any active gesture.
func (p *Pad) Clear() {
	p.strokes = nil
	p.Cancel()
	p.events.emit(Event{Type: EventClear})
}

// ToData returns a deep copy of the stroke collection in insertion
// (i.e. z- and chronological) order. Mutating the returned slice has
// no effect on the pad.
func (p *Pad) ToData() []Stroke {
	strokes := make([]Stroke, len(p.strokes))
	for i, s := range p.strokes {
		strokes[i] = s.clone()
	}
	return strokes
}

// FromData replaces the whole stroke collection with a deep copy of
// the provided strokes.
func (p *Pad) FromData(strokes []Stroke) {
	replacement := make([]Stroke, len(strokes))
	for i, s := range strokes {
		replacement[i] = s.clone()
	}
	p.strokes = replacement
	p.Cancel()
	p.events.emit(Event{Type: EventLoad})
}

// Load replaces the stroke collection with the serialized data read
// from r. On a decoding error the current state is left untouched.
func (p *Pad) Load(r io.Reader) error {
	strokes, err := DecodeStrokes(r)
	if err != nil {
		return err
	}
	p.FromData(strokes)

	return nil
}

// Save writes the stroke collection as JSON to w.
func (p *Pad) Save(w io.Writer) error {
	return EncodeStrokes(w, p.strokes)
}

// Bounds returns the tightest axis-aligned box covering the rendered
// ink of every stroke, or nil for an empty collection. The box is
// computed from the same simplified geometry and modulated widths the
// renderers consume, so trimmed exports never clip ink.
func (p *Pad) Bounds() *Rect {
	var (
		total Rect
		any   bool
	)
	for _, s := range p.strokes {
		pts, widths := p.strokeGeometry(s)
		if r, ok := inkBounds(pts, widths); ok {
			if !any {
				total = r
				any = true
			} else {
				total = total.Union(r)
			}
		}
	}
	if !any {
		return nil
	}
	return &total
}

// strokeGeometry derives the render geometry of a stroke: the
// simplified centerline and the matching modulated widths. It is
// recomputed on every render since it depends on the current pad
// configuration, not on per stroke state.
func (p *Pad) strokeGeometry(s Stroke) ([]Point, []float64) {
	pts := Simplify(s.Points, p.MinDistance, p.SmoothingRatio, p.FadeLength)
	widths := Widths(pts, s.MinWidth, s.MaxWidth, p.VelocityFilterWeight, p.UsePressure)

	return pts, widths
}

// dotRadius returns the radius used for single point strokes.
func (p *Pad) dotRadius(maxWidth float64) float64 {
	if maxWidth > 0 {
		return maxWidth / 2
	}
	if p.DotSize > 0 {
		return p.DotSize
	}
	return (p.MinWidth + p.MaxWidth) / 2
}

// clone returns a new pad sharing the receiver's configuration but
// none of its session state. Used by the batch CLI workers.
func (p *Pad) clone() *Pad {
	cp := *p
	cp.strokes = nil
	cp.current = nil
	cp.isDrawing = false
	cp.events = notifier{}

	return &cp
}
