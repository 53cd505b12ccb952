package main

import (
	"io"

	"github.com/san-kum/lorenz/internal/engine"
	"github.com/san-kum/lorenz/internal/gui"
	"github.com/san-kum/lorenz/internal/scene"
	"github.com/san-kum/lorenz/internal/tui"
	"github.com/san-kum/lorenz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	tuiCols  int
	tuiRows  int
	tuiZoom  float64
	tuiTheme string
)

func guiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "play the attractor in a native window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	sc, err := cfg.Scene(cfg.Camera.Zoom, log)
	if err != nil {
		return err
	}
	a := scene.NewAttractor(sc)

	ctx := engine.NewContext(cfg.Window.Width, cfg.Window.Height)
	ctx.SimulationSpeed = cfg.Playback.Speed

	win, err := gui.Open(gui.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Help:   a.Bindings().Help(),
		Status: func() string { return a.Status(ctx) },
		Log:    log,
	})
	if err != nil {
		return err
	}

	d := engine.NewDriver(win, ctx,
		engine.WithFrameInterval(cfg.Window.FrameInterval),
		engine.WithLogger(log),
	)
	return d.Run(a)
}

func tuiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "play the attractor in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	cmd.Flags().IntVar(&tuiCols, "cols", 0, "canvas columns (0 follows the terminal)")
	cmd.Flags().IntVar(&tuiRows, "rows", 0, "canvas rows (0 follows the terminal)")
	cmd.Flags().Float64Var(&tuiZoom, "zoom", 0.5, "starting zoom")
	cmd.Flags().StringVar(&tuiTheme, "theme", "mono", "color theme")
	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("cols") {
		cfg.Terminal.Cols = tuiCols
	}
	if flags.Changed("rows") {
		cfg.Terminal.Rows = tuiRows
	}
	if flags.Changed("zoom") {
		cfg.Terminal.Zoom = tuiZoom
	}
	if flags.Changed("theme") {
		cfg.Terminal.Theme = tuiTheme
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// bubbletea owns the screen; log lines would tear the frame.
	log := newLogger(cfg)
	log.SetOutput(io.Discard)

	theme, err := viz.GetTheme(cfg.Terminal.Theme)
	if err != nil {
		return err
	}
	sc, err := cfg.Scene(cfg.Terminal.Zoom, log)
	if err != nil {
		return err
	}
	a := scene.NewAttractor(sc)

	return tui.Run(a, tui.Options{
		Cols:          cfg.Terminal.Cols,
		Rows:          cfg.Terminal.Rows,
		FrameInterval: cfg.Window.FrameInterval,
		Theme:         theme,
		Help:          a.Bindings().Help(),
		Status:        a.Status,
		Progress:      a.Progress,
		Speed:         cfg.Playback.Speed,
		Log:           log,
	})
}
