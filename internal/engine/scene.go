package engine

import "image/color"

// Scene is a simulated scene the Driver can run without knowing its internals.
type Scene interface {
	HandleInput(ctx *Context, ev Event)
	Update(ctx *Context, dt float64)
	Render(ctx *Context, s Surface)
	IsFinished() bool
}

// Surface is the set of drawing primitives a scene may use.
type Surface interface {
	SetDrawColor(c color.RGBA)
	DrawPoint(x, y int)
	DrawLine(x1, y1, x2, y2 int)
}

// Backend is the windowing and rendering collaborator.
type Backend interface {
	Surface
	// PollEvents returns every event queued since the previous call.
	PollEvents() []Event
	Clear()
	Present()
	Close() error
}

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)
