package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lorenz/internal/engine"
	"github.com/san-kum/lorenz/internal/viz"
	"github.com/sirupsen/logrus"
)

// A terminal cell stands in for roughly this many pixels when turning mouse
// motion into drag deltas.
const (
	cellPixelsX = 8
	cellPixelsY = 16
)

// chromeRows are the rows under the canvas: status and help.
const chromeRows = 2

const progressWidth = 20

// Options configures a terminal session. Cols or Rows of 0 follow the
// terminal size.
type Options struct {
	Cols, Rows    int
	FrameInterval time.Duration
	// Speed is the starting playback speed; 0 keeps the default.
	Speed  float64
	Theme  viz.Theme
	Help   string
	Status func(*engine.Context) string
	// Progress reports playback position in [0, 1]; nil hides the bar.
	Progress func() float64
	Log      logrus.FieldLogger
}

type tickMsg time.Time

type model struct {
	opts   Options
	term   *Terminal
	driver *engine.Driver
	styles viz.Styles

	lastX, lastY int
	tracking     bool
}

func newModel(s engine.Scene, opts Options) *model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = engine.DefaultFrameInterval
	}
	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24 - chromeRows
	}

	term := NewTerminal(cols, rows)
	w, h := term.Dots()
	var dopts []engine.Option
	if opts.Log != nil {
		dopts = append(dopts, engine.WithLogger(opts.Log))
	}
	ctx := engine.NewContext(w, h)
	if opts.Speed > 0 {
		ctx.SimulationSpeed = opts.Speed
	}
	d := engine.NewDriver(term, ctx, dopts...)
	d.Start(s)

	return &model{
		opts:   opts,
		term:   term,
		driver: d,
		styles: viz.NewStyles(opts.Theme),
	}
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd { return m.tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.term.Push(engine.CloseRequested{})
			return m, nil
		}
		if k, ok := translateKey(msg); ok {
			m.term.Push(engine.KeyDown{Key: k})
		}
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tickMsg:
		if !m.driver.Frame() {
			m.term.Close()
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *model) mouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.term.Push(engine.Scroll{Y: 1})
			return
		case tea.MouseButtonWheelDown:
			m.term.Push(engine.Scroll{Y: -1})
			return
		}
		if b, ok := translateButton(msg.Button); ok {
			m.term.Push(engine.ButtonDown{Button: b})
		}
	case tea.MouseActionRelease:
		// Terminals often report releases without a button.
		b, ok := translateButton(msg.Button)
		if !ok {
			b, ok = engine.ButtonPrimary, true
		}
		m.term.Push(engine.ButtonUp{Button: b})
	case tea.MouseActionMotion:
		if m.tracking {
			dx := float64((msg.X - m.lastX) * cellPixelsX)
			dy := float64((msg.Y - m.lastY) * cellPixelsY)
			if dx != 0 || dy != 0 {
				m.term.Push(engine.PointerMove{DX: dx, DY: dy})
			}
		}
	}
	m.lastX, m.lastY = msg.X, msg.Y
	m.tracking = true
}

func (m *model) resize(width, height int) {
	cols, rows := m.opts.Cols, m.opts.Rows
	if cols <= 0 {
		cols = width
	}
	if rows <= 0 {
		rows = height - chromeRows
	}
	m.term.Resize(cols, rows)
	ctx := m.driver.Context()
	ctx.ScreenWidth, ctx.ScreenHeight = m.term.Dots()
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.term.Frame())
	if m.opts.Progress != nil {
		b.WriteString(m.styles.ProgressBar(m.opts.Progress(), progressWidth) + " ")
	}
	if m.opts.Status != nil {
		b.WriteString(m.styles.Status.Render(m.opts.Status(m.driver.Context())))
	}
	b.WriteByte('\n')
	b.WriteString(m.styles.KeyHint.Render(m.opts.Help + "  ctrl+c close"))
	return b.String()
}

var teaKeys = map[tea.KeyType]engine.Key{
	tea.KeyEsc:   engine.KeyEscape,
	tea.KeyLeft:  engine.KeyLeft,
	tea.KeyRight: engine.KeyRight,
	tea.KeyUp:    engine.KeyArrowUp,
	tea.KeyDown:  engine.KeyArrowDown,
	tea.KeySpace: engine.KeySpace,
	tea.KeyEnter: engine.KeyEnter,
	tea.KeyTab:   engine.KeyTab,
}

func translateKey(msg tea.KeyMsg) (engine.Key, bool) {
	if k, ok := teaKeys[msg.Type]; ok {
		return k, true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return engine.Key(strings.ToLower(string(msg.Runes))), true
	}
	return "", false
}

func translateButton(b tea.MouseButton) (engine.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return engine.ButtonPrimary, true
	case tea.MouseButtonRight:
		return engine.ButtonSecondary, true
	case tea.MouseButtonMiddle:
		return engine.ButtonMiddle, true
	}
	return 0, false
}

// Run plays s in the terminal until the scene finishes or ctrl+c is pressed.
func Run(s engine.Scene, opts Options) error {
	m := newModel(s, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
