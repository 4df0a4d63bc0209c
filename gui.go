package inkpad

import (
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"github.com/esimov/inkpad/utils"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

// autosaveDelay is how long the pen has to rest before the collection
// is persisted to disk.
const autosaveDelay = 800 * time.Millisecond

// Gui is the interactive drawing board. It owns the Gio window, feeds
// the pointer samples into the pad and repaints the ink on each frame.
type Gui struct {
	cfg struct {
		window struct {
			w     float64
			h     float64
			title string
		}
	}
	pen struct {
		active bool
		id     pointer.ID
	}
	pad       *Pad
	ctx       layout.Context
	scheduled bool
	saver     *debouncer

	// AutosavePath, when set, persists the stroke collection shortly
	// after each change.
	AutosavePath string
}

// NewGUI initializes the Gio interface around an existing pad.
func NewGUI(pad *Pad, w, h int) *Gui {
	gui := &Gui{
		pad:   pad,
		saver: newDebouncer(autosaveDelay),
		ctx: layout.Context{
			Ops: new(op.Ops),
			Constraints: layout.Constraints{
				Max: image.Pt(w, h),
			},
		},
	}
	gui.initWindow(w, h)

	for _, t := range []EventType{EventEnd, EventUndo, EventClear, EventLoad} {
		pad.On(t, func(Event) {
			gui.autosave()
		})
	}
	return gui
}

// initWindow computes the window geometry, scaling it down when the
// canvas exceeds the predefined screen size.
func (g *Gui) initWindow(w, h int) {
	width, height := float64(w), float64(h)
	if width > maxScreenX || height > maxScreenY {
		r := utils.Min(maxScreenX/width, maxScreenY/height)
		width, height = width*r, height*r
	}
	g.cfg.window.w, g.cfg.window.h = width, height
	g.cfg.window.title = "Inkpad sketch board"
}

// Run opens the window and processes its events until it is closed.
// Esc closes the window, U undoes the last stroke, C clears the board.
func (g *Gui) Run() error {
	w := app.NewWindow(app.Title(g.cfg.window.title), app.Size(
		unit.Dp(float32(g.cfg.window.w)),
		unit.Dp(float32(g.cfg.window.h)),
	))

	for {
		switch e := (<-w.Events()).(type) {
		case system.FrameEvent:
			g.draw(w, e)
		case key.Event:
			if e.State != key.Press {
				break
			}
			switch e.Name {
			case key.NameEscape:
				w.Perform(system.ActionClose)
			case "U":
				if g.pad.Undo() {
					g.redraw(w)
				}
			case "C":
				g.pad.Clear()
				g.redraw(w)
			}
		case system.DestroyEvent:
			g.saver.flush()
			return e.Err
		}
	}
}

// draw consumes the queued pointer events and repaints the board.
func (g *Gui) draw(win *app.Window, e system.FrameEvent) {
	g.ctx = layout.NewContext(g.ctx.Ops, e)
	g.scheduled = false
	g.pad.Width, g.pad.Height = float64(e.Size.X), float64(e.Size.Y)

	for _, ev := range g.ctx.Events(g) {
		if pe, ok := ev.(pointer.Event); ok {
			g.pointerEvent(win, pe)
		}
	}

	surf := &gioSurface{ops: g.ctx.Ops}
	surf.FillRect(Rect{MaxX: float64(e.Size.X), MaxY: float64(e.Size.Y)}, colorOf(g.pad.BackgroundColor))
	g.pad.DrawStrokes(surf)
	g.pad.DrawCurrent(surf)

	defer clip.Rect(image.Rectangle{Max: e.Size}).Push(g.ctx.Ops).Pop()
	pointer.InputOp{
		Tag:   g,
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(g.ctx.Ops)

	e.Frame(g.ctx.Ops)
}

// pointerEvent maps a Gio pointer event onto the pad gesture
// lifecycle. Only the pointer which started the gesture is tracked;
// samples from any other pointer are dropped until the gesture ends.
func (g *Gui) pointerEvent(win *app.Window, e pointer.Event) {
	switch e.Type {
	case pointer.Press:
		if g.pen.active {
			return
		}
		g.pen.active, g.pen.id = true, e.PointerID
		g.pad.Begin(g.point(e))
	case pointer.Drag:
		if !g.pen.active || e.PointerID != g.pen.id {
			return
		}
		g.pad.Move(g.point(e))
	case pointer.Release:
		if !g.pen.active || e.PointerID != g.pen.id {
			return
		}
		g.pen.active = false
		g.pad.Move(g.point(e))
		g.pad.End()
	case pointer.Cancel:
		g.pen.active = false
		g.pad.Cancel()
	default:
		return
	}
	g.redraw(win)
}

func (g *Gui) point(e pointer.Event) Point {
	return Point{
		X:    float64(e.Position.X),
		Y:    float64(e.Position.Y),
		Time: e.Time.Milliseconds(),
	}
}

// redraw requests a new frame, coalescing the requests issued between
// two frames into a single invalidation.
func (g *Gui) redraw(win *app.Window) {
	if g.scheduled {
		return
	}
	g.scheduled = true
	win.Invalidate()
}

// autosave snapshots the collection on the UI goroutine and defers the
// disk write until the pen has been resting for a short while.
func (g *Gui) autosave() {
	if g.AutosavePath == "" {
		return
	}
	snapshot := g.pad.ToData()
	path := g.AutosavePath

	g.saver.trigger(func() {
		f, err := os.Create(path)
		if err == nil {
			err = EncodeStrokes(f, snapshot)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n",
				utils.DecorateText(fmt.Sprintf("unable to autosave the strokes: %v", err), utils.ErrorMessage))
		}
	})
}

// debouncer delays a function call until no new trigger arrived for
// the configured duration. A newer trigger replaces the pending one.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		fn := d.pending
		d.pending = nil
		d.mu.Unlock()

		if fn != nil {
			fn()
		}
	})
}

// flush runs the pending call immediately, if any.
func (d *debouncer) flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}
