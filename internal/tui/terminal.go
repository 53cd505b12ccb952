package tui

import (
	"image/color"

	"github.com/san-kum/lorenz/internal/engine"
	"github.com/san-kum/lorenz/internal/viz"
)

// Terminal is an engine.Backend that draws into a braille canvas. Input is
// queued by the bubbletea model and drained by PollEvents.
type Terminal struct {
	canvas *viz.Canvas
	queue  []engine.Event
	frame  string
	closed bool
}

var _ engine.Backend = (*Terminal)(nil)

// NewTerminal makes a cols x rows cell terminal surface.
func NewTerminal(cols, rows int) *Terminal {
	return &Terminal{canvas: viz.NewCanvas(cols, rows)}
}

// Resize replaces the canvas. The next Present shows the new size.
func (t *Terminal) Resize(cols, rows int) {
	t.canvas = viz.NewCanvas(max(cols, 1), max(rows, 1))
}

// Dots is the drawable size in braille dots.
func (t *Terminal) Dots() (int, int) { return t.canvas.Dots() }

func (t *Terminal) Push(ev engine.Event) { t.queue = append(t.queue, ev) }

func (t *Terminal) PollEvents() []engine.Event {
	evs := t.queue
	t.queue = nil
	return evs
}

func (t *Terminal) SetDrawColor(c color.RGBA)   { t.canvas.SetDrawColor(c) }
func (t *Terminal) DrawPoint(x, y int)          { t.canvas.DrawPoint(x, y) }
func (t *Terminal) DrawLine(x1, y1, x2, y2 int) { t.canvas.DrawLine(x1, y1, x2, y2) }
func (t *Terminal) Clear()                      { t.canvas.Clear() }

// Present freezes the canvas into the frame returned by Frame.
func (t *Terminal) Present() { t.frame = t.canvas.Render() }

func (t *Terminal) Frame() string { return t.frame }

func (t *Terminal) Close() error {
	t.closed = true
	return nil
}

func (t *Terminal) Closed() bool { return t.closed }
