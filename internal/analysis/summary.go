package analysis

import (
	"github.com/san-kum/lorenz/internal/dynamo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AxisStats describes one state component over a trajectory.
type AxisStats struct {
	Min, Max  float64
	Mean, Std float64
}

type Summary struct {
	Samples  int
	Start    float64
	End      float64
	Step     float64
	Axes     [3]AxisStats
	Finite   bool
	Switches int
}

// Summarize computes per-axis statistics. An empty trajectory yields a zero
// Summary with Finite set.
func Summarize(tr *dynamo.Trajectory) Summary {
	s := Summary{Samples: tr.Len(), Finite: tr.Valid()}
	if s.Samples == 0 {
		return s
	}
	s.Start, s.End, s.Step = tr.Times[0], tr.Times[s.Samples-1], tr.Step()

	col := make([]float64, s.Samples)
	for axis := range 3 {
		for i, st := range tr.States {
			col[i] = st[axis]
		}
		mean, std := stat.MeanStdDev(col, nil)
		s.Axes[axis] = AxisStats{
			Min:  floats.Min(col),
			Max:  floats.Max(col),
			Mean: mean,
			Std:  std,
		}
	}
	s.Switches = LobeSwitches(tr)
	return s
}

// LobeSwitches counts sign changes of x, i.e. how often the trajectory
// crosses between the attractor's two wings. Zeros are skipped.
func LobeSwitches(tr *dynamo.Trajectory) int {
	n := 0
	prev := 0.0
	for _, st := range tr.States {
		x := st[0]
		if x == 0 {
			continue
		}
		if prev != 0 && (x > 0) != (prev > 0) {
			n++
		}
		prev = x
	}
	return n
}
