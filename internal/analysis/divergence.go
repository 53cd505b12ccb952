package analysis

import (
	"fmt"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Divergence returns the Euclidean distance between a and b at each sample
// index both share.
func Divergence(a, b *dynamo.Trajectory) []float64 {
	n := min(a.Len(), b.Len())
	out := make([]float64, n)
	for i := range n {
		out[i] = a.States[i].Sub(b.States[i]).Len()
	}
	return out
}

// MaxDivergence returns the largest separation and the time it occurs.
func MaxDivergence(a, b *dynamo.Trajectory) (sep, t float64) {
	for i, d := range Divergence(a, b) {
		if d > sep {
			sep, t = d, a.Times[i]
		}
	}
	return sep, t
}

// SeparationAt returns the distance between a and b at the last sample of a
// at or before time t. Both must share a time grid up to that sample.
func SeparationAt(a, b *dynamo.Trajectory, t float64) (float64, error) {
	i := a.IndexAt(t)
	if i < 0 || i >= b.Len() {
		return 0, fmt.Errorf("%w: sample %d of %d", dynamo.ErrLengthMismatch, i, b.Len())
	}
	return a.States[i].Sub(b.States[i]).Len(), nil
}
