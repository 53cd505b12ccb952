package scene

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/engine"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/sirupsen/logrus"
)

const (
	// PointsPerTick is how many samples one update reveals at speed 1.0.
	PointsPerTick = 10.0
	SpeedStep     = 0.1
	ZoomInFactor  = 1.1
	ZoomOutFactor = 0.9
)

// RenderMode selects how revealed samples are drawn.
type RenderMode int

const (
	ModePoints RenderMode = iota
	ModeGradientLines
)

func (m RenderMode) String() string {
	if m == ModeGradientLines {
		return "gradient-lines"
	}
	return "points"
}

// Config controls how an Attractor is built.
type Config struct {
	Start, End float64
	Steps      int
	Initial    dynamo.State
	Zoom       float64
	Bindings   *Bindings
	Log        logrus.FieldLogger
}

// DefaultConfig integrates [0, 50] in 10000 steps from (0, 1, 1.05).
func DefaultConfig() Config {
	return Config{
		Start:   0,
		End:     50,
		Steps:   10000,
		Initial: physics.NewLorenz().DefaultState(),
		Zoom:    1.0,
	}
}

// Attractor is the Lorenz trajectory scene. It implements engine.Scene.
type Attractor struct {
	model    *physics.Lorenz
	traj     *dynamo.Trajectory
	bindings *Bindings

	cursor   int
	camera   Camera
	dragging bool
	mode     RenderMode
	running  bool
}

var _ engine.Scene = (*Attractor)(nil)

// NewAttractor solves the trajectory eagerly. cfg.Steps must be at least 1.
func NewAttractor(cfg Config) *Attractor {
	log := cfg.Log
	if log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = quiet
	}
	bindings := cfg.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}
	zoom := cfg.Zoom
	if zoom == 0 {
		zoom = 1.0
	}

	model := physics.NewLorenz()
	began := time.Now()
	traj := integrators.Solve(cfg.Start, cfg.End, cfg.Initial, model.Derive, cfg.Steps)
	log.WithFields(logrus.Fields{
		"samples": traj.Len(),
		"start":   cfg.Start,
		"end":     cfg.End,
		"elapsed": time.Since(began),
	}).Debug("trajectory solved")

	return &Attractor{
		model:    model,
		traj:     traj,
		bindings: bindings,
		camera:   NewCamera(zoom),
		mode:     ModePoints,
		running:  true,
	}
}

func (a *Attractor) HandleInput(ctx *engine.Context, ev engine.Event) {
	switch ev := ev.(type) {
	case engine.ButtonDown:
		if ev.Button == engine.ButtonPrimary {
			a.dragging = true
		}
	case engine.ButtonUp:
		if ev.Button == engine.ButtonPrimary {
			a.dragging = false
		}
	case engine.PointerMove:
		if a.dragging {
			a.camera.Pitch += ev.DY * DragSensitivity
			a.camera.Yaw += ev.DX * DragSensitivity
		}
	case engine.KeyDown:
		if act, ok := a.bindings.Lookup(ev.Key); ok {
			a.apply(ctx, act)
		}
	case engine.Scroll:
		if ev.Y > 0 {
			a.camera.Zoom *= ZoomInFactor
		} else if ev.Y < 0 {
			a.camera.Zoom *= ZoomOutFactor
		}
	}
}

func (a *Attractor) apply(ctx *engine.Context, act Action) {
	switch act {
	case ActionQuit:
		a.running = false
	case ActionReset:
		a.cursor = 0
	case ActionSlower:
		ctx.SimulationSpeed = math.Max(engine.MinSimulationSpeed, ctx.SimulationSpeed-SpeedStep)
	case ActionFaster:
		ctx.SimulationSpeed += SpeedStep
	case ActionToggleMode:
		if a.mode == ModePoints {
			a.mode = ModeGradientLines
		} else {
			a.mode = ModePoints
		}
	}
}

// Update reveals round(speed*PointsPerTick) more samples. The advance is per
// frame: dt is not consulted, so playback rate follows the frame rate.
func (a *Attractor) Update(ctx *engine.Context, _ float64) {
	step := int(math.Round(ctx.SimulationSpeed * PointsPerTick))
	if step < 0 {
		step = 0
	}
	a.cursor = min(a.cursor+step, a.traj.Len()-1)
}

// Render draws samples 1 through cursor-1. In gradient mode every drawn
// sample is joined to its predecessor; color runs red to green over the
// whole trajectory.
func (a *Attractor) Render(ctx *engine.Context, s engine.Surface) {
	w, h := ctx.ScreenWidth, ctx.ScreenHeight
	total := float64(a.traj.Len())

	if a.mode == ModePoints {
		s.SetDrawColor(engine.White)
		for i := 1; i < a.cursor; i++ {
			if x, y, ok := a.camera.ToScreen(a.traj.States[i], w, h); ok {
				s.DrawPoint(x, y)
			}
		}
		return
	}

	if a.cursor < 2 {
		return
	}
	px, py, pok := a.camera.ToScreen(a.traj.States[0], w, h)
	for i := 1; i < a.cursor; i++ {
		x, y, ok := a.camera.ToScreen(a.traj.States[i], w, h)
		if ok && pok {
			s.SetDrawColor(Gradient(float64(i) / total))
			s.DrawLine(px, py, x, y)
		}
		px, py, pok = x, y, ok
	}
}

func (a *Attractor) IsFinished() bool { return !a.running }

// Seek moves the cursor to i, clamped to the trajectory.
func (a *Attractor) Seek(i int) {
	a.cursor = max(0, min(i, a.traj.Len()-1))
}

func (a *Attractor) SetMode(m RenderMode) { a.mode = m }

// Gradient returns the red-to-green color for position t in [0, 1].
func Gradient(t float64) color.RGBA {
	return color.RGBA{R: uint8(255 * (1 - t)), G: uint8(255 * t), B: 0, A: 255}
}

func (a *Attractor) Trajectory() *dynamo.Trajectory { return a.traj }
func (a *Attractor) Cursor() int                    { return a.cursor }
func (a *Attractor) Len() int                       { return a.traj.Len() }

// Progress is the playback position in [0, 1].
func (a *Attractor) Progress() float64 {
	if n := a.traj.Len(); n > 1 {
		return float64(a.cursor) / float64(n-1)
	}
	return 1
}

func (a *Attractor) Mode() RenderMode           { return a.mode }
func (a *Attractor) Camera() Camera             { return a.camera }
func (a *Attractor) Zoom() float64              { return a.camera.Zoom }
func (a *Attractor) Dragging() bool             { return a.dragging }
func (a *Attractor) Bindings() *Bindings        { return a.bindings }
func (a *Attractor) Params() map[string]float64 { return a.model.Params() }

// Rotation returns the camera pitch and yaw in radians.
func (a *Attractor) Rotation() (pitch, yaw float64) { return a.camera.Pitch, a.camera.Yaw }

// Status summarizes playback for a status line.
func (a *Attractor) Status(ctx *engine.Context) string {
	state := "running"
	if ctx.Paused {
		state = "paused"
	}
	return fmt.Sprintf("speed %.1fx  %s  %d/%d  t=%.2f  zoom %.2f  %s",
		ctx.SimulationSpeed, a.mode, a.cursor, a.traj.Len()-1,
		a.traj.Times[a.cursor], a.camera.Zoom, state)
}
