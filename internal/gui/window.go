package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/lorenz/internal/engine"
	"github.com/sirupsen/logrus"
)

// Theme colors for the overlay text.
var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const textSize = 16

// Options configures the window.
type Options struct {
	Title         string
	Width, Height int
	// Help is drawn along the bottom edge each frame. Empty hides it.
	Help string
	// Status, if set, is drawn in the top-left corner each frame.
	Status func() string
	Log    logrus.FieldLogger
}

// Window is a raylib-backed engine.Backend. Only one may be open per process.
type Window struct {
	opts  Options
	color rl.Color
}

var _ engine.Backend = (*Window)(nil)

// Open creates the native window.
func Open(opts Options) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, &engine.InitializationError{Op: "create window", Err: errWindow}
	}
	// Escape is a scene binding, not a raylib close request.
	rl.SetExitKey(0)

	if opts.Log != nil {
		opts.Log.WithFields(logrus.Fields{
			"width":  opts.Width,
			"height": opts.Height,
		}).Debug("window opened")
	}
	return &Window{opts: opts, color: rl.White}, nil
}

func (w *Window) PollEvents() []engine.Event {
	// raylib refreshes input state inside EndDrawing; events are read from
	// the previous frame's state.
	var evs []engine.Event
	if rl.WindowShouldClose() {
		evs = append(evs, engine.CloseRequested{})
	}

	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if key, ok := translateKey(k); ok {
			evs = append(evs, engine.KeyDown{Key: key})
		}
	}

	for _, b := range []struct {
		rl  rl.MouseButton
		btn engine.Button
	}{
		{rl.MouseButtonLeft, engine.ButtonPrimary},
		{rl.MouseButtonRight, engine.ButtonSecondary},
		{rl.MouseButtonMiddle, engine.ButtonMiddle},
	} {
		if rl.IsMouseButtonPressed(b.rl) {
			evs = append(evs, engine.ButtonDown{Button: b.btn})
		}
		if rl.IsMouseButtonReleased(b.rl) {
			evs = append(evs, engine.ButtonUp{Button: b.btn})
		}
	}

	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		evs = append(evs, engine.PointerMove{DX: float64(d.X), DY: float64(d.Y)})
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		evs = append(evs, engine.Scroll{Y: float64(wheel)})
	}
	return evs
}

func (w *Window) SetDrawColor(c color.RGBA) {
	w.color = rl.NewColor(c.R, c.G, c.B, c.A)
}

func (w *Window) DrawPoint(x, y int) {
	rl.DrawPixel(int32(x), int32(y), w.color)
}

func (w *Window) DrawLine(x1, y1, x2, y2 int) {
	rl.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2), w.color)
}

func (w *Window) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(w.color)
}

func (w *Window) Present() {
	if w.opts.Status != nil {
		rl.DrawText(w.opts.Status(), 10, 10, textSize, ColText)
	}
	if w.opts.Help != "" {
		rl.DrawText(w.opts.Help, 10, int32(w.opts.Height)-textSize-10, textSize, ColTextDim)
	}
	rl.EndDrawing()
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

var rlKeys = map[int32]engine.Key{
	rl.KeyEscape: engine.KeyEscape,
	rl.KeyLeft:   engine.KeyLeft,
	rl.KeyRight:  engine.KeyRight,
	rl.KeyUp:     engine.KeyArrowUp,
	rl.KeyDown:   engine.KeyArrowDown,
	rl.KeySpace:  engine.KeySpace,
	rl.KeyEnter:  engine.KeyEnter,
	rl.KeyTab:    engine.KeyTab,
}

func translateKey(k int32) (engine.Key, bool) {
	if key, ok := rlKeys[k]; ok {
		return key, true
	}
	switch {
	case k >= rl.KeyA && k <= rl.KeyZ:
		return engine.Key(rune('a' + k - rl.KeyA)), true
	case k >= rl.KeyZero && k <= rl.KeyNine:
		return engine.Key(rune('0' + k - rl.KeyZero)), true
	}
	return "", false
}
