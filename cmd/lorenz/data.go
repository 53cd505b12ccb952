package main

import (
	"fmt"

	"github.com/san-kum/lorenz/internal/analysis"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/engine"
	"github.com/san-kum/lorenz/internal/export"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/scene"
	"github.com/san-kum/lorenz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dumpFormat string
	plotAxis   string
	plotWidth  int
	plotHeight int
)

func dumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print the solved trajectory (csv, json) or a rendered frame (svg)",
		Args:  cobra.NoArgs,
		RunE:  runDump,
	}
	cmd.Flags().StringVar(&dumpFormat, "format", "csv", "output format: csv, json or svg")
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.Scene(cfg.Camera.Zoom, newLogger(cfg))
	if err != nil {
		return err
	}
	a := scene.NewAttractor(sc)
	tr := a.Trajectory()
	out := cmd.OutOrStdout()

	switch dumpFormat {
	case "csv":
		return export.WriteCSV(out, tr)
	case "json":
		data := export.NewExportData("lorenz", a.Params(), tr)
		data.Checksum = fmt.Sprintf("%016x", analysis.Checksum(tr))
		return export.WriteJSON(out, data)
	case "svg":
		// The last frame of a full playback in gradient mode.
		ctx := engine.NewContext(cfg.Window.Width, cfg.Window.Height)
		svg := export.NewSVG(ctx.ScreenWidth, ctx.ScreenHeight)
		a.SetMode(scene.ModeGradientLines)
		a.Seek(a.Len() - 1)
		a.Render(ctx, svg)
		_, err := svg.WriteTo(out)
		return err
	}
	return fmt.Errorf("unknown format %q (want csv, json or svg)", dumpFormat)
}

func plotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "chart one coordinate against time",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	cmd.Flags().StringVar(&plotAxis, "axis", "x", "coordinate to plot: x, y or z")
	cmd.Flags().IntVar(&plotWidth, "width", 80, "chart width")
	cmd.Flags().IntVar(&plotHeight, "height", 15, "chart height")
	return cmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	axis, err := viz.ParseAxis(plotAxis)
	if err != nil {
		return err
	}
	if plotWidth < 1 || plotHeight < 1 {
		return fmt.Errorf("chart size must be positive, got %dx%d", plotWidth, plotHeight)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tr := solve(cfg.Integration.Start, cfg.Integration.End, dynamo.State(cfg.Integration.Initial), cfg.Integration.Steps)
	fmt.Fprintln(cmd.OutOrStdout(), viz.Plot(tr, axis, plotWidth, plotHeight))
	return nil
}

func solve(a, b float64, x0 dynamo.State, n int) *dynamo.Trajectory {
	l := physics.NewLorenz()
	return integrators.Solve(a, b, x0, l.Derive, n)
}
