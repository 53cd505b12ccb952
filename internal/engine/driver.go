package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultFrameInterval caps the blocking loop at roughly 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// Stop reasons reported by Driver.Reason.
const (
	ReasonCloseRequested = "close requested"
	ReasonSceneFinished  = "scene finished"
)

// Driver runs the frame cycle of one scene against a Backend.
// It is not safe for concurrent use.
type Driver struct {
	backend  Backend
	ctx      *Context
	scene    Scene
	log      logrus.FieldLogger
	interval time.Duration
	now      func() time.Time
	sleep    func(time.Duration)

	prev    time.Time
	running bool
	reason  string
	frames  int
	elapsed float64
}

type Option func(*Driver)

// WithFrameInterval sets the pause between frames of the blocking loop.
func WithFrameInterval(d time.Duration) Option {
	return func(dr *Driver) { dr.interval = d }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(dr *Driver) { dr.now = now }
}

// WithSleep replaces time.Sleep, mainly for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(dr *Driver) { dr.sleep = sleep }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(dr *Driver) { dr.log = log }
}

func NewDriver(b Backend, ctx *Context, opts ...Option) *Driver {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	d := &Driver{
		backend:  b,
		ctx:      ctx,
		log:      quiet,
		interval: DefaultFrameInterval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Context() *Context { return d.ctx }

// Start makes s the active scene and arms the driver for Frame calls.
func (d *Driver) Start(s Scene) {
	d.scene = s
	d.prev = d.now()
	d.running = true
	d.reason = ""
	d.frames = 0
	d.elapsed = 0
	d.log.WithFields(logrus.Fields{
		"width":  d.ctx.ScreenWidth,
		"height": d.ctx.ScreenHeight,
	}).Info("frame loop started")
}

// Frame runs one input/update/render/present cycle and reports whether the
// loop should continue. It is a no-op returning false once the loop stopped.
func (d *Driver) Frame() bool {
	if !d.running {
		return false
	}

	for _, ev := range d.backend.PollEvents() {
		if _, ok := ev.(CloseRequested); ok {
			d.stop(ReasonCloseRequested)
			return false
		}
		d.scene.HandleInput(d.ctx, ev)
	}
	if d.scene.IsFinished() {
		d.stop(ReasonSceneFinished)
		return false
	}

	now := d.now()
	dt := now.Sub(d.prev).Seconds()
	d.prev = now

	d.scene.Update(d.ctx, dt)

	d.backend.SetDrawColor(Black)
	d.backend.Clear()
	d.scene.Render(d.ctx, d.backend)
	d.backend.Present()

	d.frames++
	d.elapsed += dt
	return true
}

// Run is the blocking loop: it starts s, runs frames paced by the frame
// interval until the loop stops, then closes the backend.
func (d *Driver) Run(s Scene) error {
	d.Start(s)
	for d.Frame() {
		d.sleep(d.interval)
	}
	return d.backend.Close()
}

func (d *Driver) Running() bool { return d.running }

// Reason returns why the loop stopped, or "" while it is running.
func (d *Driver) Reason() string { return d.reason }

// Stats describes the frames run since Start.
type Stats struct {
	Frames int
	MeanDt float64
}

func (d *Driver) Stats() Stats {
	st := Stats{Frames: d.frames}
	if d.frames > 0 {
		st.MeanDt = d.elapsed / float64(d.frames)
	}
	return st
}

func (d *Driver) stop(reason string) {
	d.running = false
	d.reason = reason
	st := d.Stats()
	d.log.WithFields(logrus.Fields{
		"frames": st.Frames,
		"reason": reason,
	}).Info("frame loop stopped")
	d.log.WithField("mean_dt", st.MeanDt).Debug("frame statistics")
}
