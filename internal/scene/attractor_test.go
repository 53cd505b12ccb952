package scene_test

import (
	"image/color"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenz/internal/engine"
	"github.com/san-kum/lorenz/internal/scene"
)

type recordingSurface struct {
	colors []color.RGBA
	points int
	lines  int
}

func (r *recordingSurface) SetDrawColor(c color.RGBA)   { r.colors = append(r.colors, c) }
func (r *recordingSurface) DrawPoint(x, y int)          { r.points++ }
func (r *recordingSurface) DrawLine(x1, y1, x2, y2 int) { r.lines++ }

// scriptedBackend feeds the closeAt key on the given frame.
type scriptedBackend struct {
	recordingSurface
	frames  int
	polls   int
	closeAt engine.Key
	closed  bool
}

func (b *scriptedBackend) PollEvents() []engine.Event {
	b.polls++
	if b.polls == b.frames {
		return []engine.Event{engine.KeyDown{Key: b.closeAt}}
	}
	return nil
}

func (b *scriptedBackend) Clear()   {}
func (b *scriptedBackend) Present() {}
func (b *scriptedBackend) Close() error {
	b.closed = true
	return nil
}

func smallConfig(steps int) scene.Config {
	cfg := scene.DefaultConfig()
	cfg.End = float64(steps) * 0.005
	cfg.Steps = steps
	return cfg
}

func key(k engine.Key) engine.Event { return engine.KeyDown{Key: k} }

var _ = Describe("Attractor", func() {
	var (
		ctx *engine.Context
		a   *scene.Attractor
	)

	BeforeEach(func() {
		ctx = engine.NewContext(1080, 720)
		a = scene.NewAttractor(smallConfig(200))
	})

	It("solves steps+1 samples up front", func() {
		Expect(a.Len()).To(Equal(201))
		Expect(a.Cursor()).To(Equal(0))
		Expect(a.Mode()).To(Equal(scene.ModePoints))
		Expect(a.IsFinished()).To(BeFalse())
	})

	Describe("input", func() {
		It("zooms by 1.1 per scroll up and 0.9 per scroll down", func() {
			for range 3 {
				a.HandleInput(ctx, engine.Scroll{Y: 1})
			}
			Expect(a.Camera().Zoom).To(BeNumerically("~", math.Pow(1.1, 3), 1e-12))

			a.HandleInput(ctx, engine.Scroll{Y: -2})
			Expect(a.Camera().Zoom).To(BeNumerically("~", math.Pow(1.1, 3)*0.9, 1e-12))

			a.HandleInput(ctx, engine.Scroll{Y: 0})
			Expect(a.Camera().Zoom).To(BeNumerically("~", math.Pow(1.1, 3)*0.9, 1e-12))
		})

		It("never lets speed drop below the floor", func() {
			for range 20 {
				a.HandleInput(ctx, key(engine.KeyLeft))
			}
			Expect(ctx.SimulationSpeed).To(BeNumerically("~", engine.MinSimulationSpeed, 1e-9))
		})

		It("raises speed by 0.1 per press", func() {
			a.HandleInput(ctx, key(engine.KeyRight))
			a.HandleInput(ctx, key(engine.KeyRight))
			Expect(ctx.SimulationSpeed).To(BeNumerically("~", 1.2, 1e-9))
		})

		It("toggles render mode back on a second press", func() {
			a.HandleInput(ctx, key("m"))
			Expect(a.Mode()).To(Equal(scene.ModeGradientLines))
			a.HandleInput(ctx, key("m"))
			Expect(a.Mode()).To(Equal(scene.ModePoints))
		})

		It("rotates only while the primary button is held", func() {
			a.HandleInput(ctx, engine.PointerMove{DX: 10, DY: 20})
			Expect(a.Camera().Pitch).To(BeZero())

			a.HandleInput(ctx, engine.ButtonDown{Button: engine.ButtonPrimary})
			a.HandleInput(ctx, engine.PointerMove{DX: 10, DY: 20})
			Expect(a.Camera().Pitch).To(BeNumerically("~", 0.2, 1e-12))
			Expect(a.Camera().Yaw).To(BeNumerically("~", 0.1, 1e-12))

			a.HandleInput(ctx, engine.ButtonUp{Button: engine.ButtonPrimary})
			a.HandleInput(ctx, engine.PointerMove{DX: 10, DY: 20})
			Expect(a.Camera().Pitch).To(BeNumerically("~", 0.2, 1e-12))
		})

		It("ignores the secondary button for dragging", func() {
			a.HandleInput(ctx, engine.ButtonDown{Button: engine.ButtonSecondary})
			Expect(a.Dragging()).To(BeFalse())
		})

		It("finishes on escape", func() {
			a.HandleInput(ctx, key(engine.KeyEscape))
			Expect(a.IsFinished()).To(BeTrue())
		})

		It("ignores unbound keys", func() {
			a.HandleInput(ctx, key("q"))
			Expect(a.IsFinished()).To(BeFalse())
			Expect(ctx.SimulationSpeed).To(Equal(1.0))
		})
	})

	Describe("update", func() {
		It("advances ten samples per tick at speed 1.0", func() {
			a.Update(ctx, 0.016)
			Expect(a.Cursor()).To(Equal(10))
		})

		It("rounds the advance to the nearest sample", func() {
			ctx.SimulationSpeed = 0.26
			a.Update(ctx, 0.016)
			Expect(a.Cursor()).To(Equal(3))
		})

		It("is monotonic and stops at the last sample", func() {
			prev := a.Cursor()
			for range 50 {
				a.Update(ctx, 0.016)
				Expect(a.Cursor()).To(BeNumerically(">=", prev))
				Expect(a.Cursor()).To(BeNumerically("<=", a.Len()-1))
				prev = a.Cursor()
			}
			Expect(a.Cursor()).To(Equal(a.Len() - 1))
		})

		It("restarts playback on reset", func() {
			a.Update(ctx, 0.016)
			a.HandleInput(ctx, key("r"))
			Expect(a.Cursor()).To(Equal(0))
		})
	})

	Describe("render", func() {
		It("draws nothing before the first update", func() {
			s := &recordingSurface{}
			a.Render(ctx, s)
			Expect(s.points).To(BeZero())
			Expect(s.lines).To(BeZero())
		})

		It("draws cursor-1 white points", func() {
			a.Update(ctx, 0.016)
			s := &recordingSurface{}
			a.Render(ctx, s)
			Expect(s.points).To(Equal(9))
			Expect(s.colors).To(Equal([]color.RGBA{engine.White}))
		})

		It("draws cursor-1 gradient segments", func() {
			a.HandleInput(ctx, key("m"))
			a.Update(ctx, 0.016)
			s := &recordingSurface{}
			a.Render(ctx, s)
			Expect(s.lines).To(Equal(9))
			Expect(s.points).To(BeZero())
			Expect(s.colors).To(HaveLen(9))
			Expect(s.colors[0]).To(Equal(scene.Gradient(1.0 / 201)))
		})

		It("issues cursor-1 segments once saturated in gradient mode", func() {
			ctx.SimulationSpeed = 50
			for range 10 {
				a.Update(ctx, 0.016)
			}
			Expect(a.Cursor()).To(Equal(a.Len() - 1))

			a.HandleInput(ctx, key("m"))
			s := &recordingSurface{}
			a.Render(ctx, s)
			Expect(s.lines).To(Equal(a.Cursor() - 1))
			Expect(s.points).To(BeZero())
		})

		It("draws the whole trajectory once saturated", func() {
			for range 100 {
				a.Update(ctx, 0.016)
			}
			s := &recordingSurface{}
			a.Render(ctx, s)
			Expect(s.points).To(Equal(a.Len() - 2))
		})
	})

	It("seeks within bounds", func() {
		a.Seek(50)
		Expect(a.Cursor()).To(Equal(50))
		a.Seek(-3)
		Expect(a.Cursor()).To(Equal(0))
		a.Seek(1 << 20)
		Expect(a.Cursor()).To(Equal(a.Len() - 1))
	})

	It("reports playback progress", func() {
		Expect(a.Progress()).To(BeZero())
		a.Seek(50)
		Expect(a.Progress()).To(BeNumerically("~", 0.25, 1e-12))
		a.Seek(a.Len())
		Expect(a.Progress()).To(Equal(1.0))
	})

	It("runs end to end under a driver until escape", func() {
		b := &scriptedBackend{frames: 30, closeAt: engine.KeyEscape}
		d := engine.NewDriver(b, ctx, engine.WithSleep(func(time.Duration) {}))
		Expect(d.Run(a)).To(Succeed())
		Expect(a.IsFinished()).To(BeTrue())
		Expect(b.closed).To(BeTrue())
		Expect(a.Cursor()).To(Equal(a.Len() - 1))
	})
})

var _ = Describe("Gradient", func() {
	It("runs from red to green", func() {
		Expect(scene.Gradient(0)).To(Equal(color.RGBA{R: 255, A: 255}))
		Expect(scene.Gradient(1)).To(Equal(color.RGBA{G: 255, A: 255}))
		mid := scene.Gradient(0.5)
		Expect(mid.R).To(Equal(uint8(127)))
		Expect(mid.G).To(Equal(uint8(127)))
	})
})

var _ = Describe("RenderMode", func() {
	It("names both modes", func() {
		Expect(scene.ModePoints.String()).To(Equal("points"))
		Expect(scene.ModeGradientLines.String()).To(Equal("gradient-lines"))
	})
})
