package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lorenz/internal/dynamo"
)

// Axis selects one state component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string { return [...]string{"x", "y", "z"}[a] }

func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("viz: unknown axis %q (want x, y or z)", s)
}

// Series extracts one axis of tr, keeping every stride-th sample so that at
// most width values remain.
func Series(tr *dynamo.Trajectory, axis Axis, width int) []float64 {
	n := tr.Len()
	if n == 0 || width <= 0 {
		return nil
	}
	stride := max(1, (n+width-1)/width)
	out := make([]float64, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		out = append(out, tr.States[i][axis])
	}
	return out
}

// Plot charts one axis of tr against sample index.
func Plot(tr *dynamo.Trajectory, axis Axis, width, height int) string {
	data := Series(tr, axis, width)
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s(t), t in [%.2f, %.2f]", axis, tr.Times[0], tr.Times[tr.Len()-1])),
	)
}
