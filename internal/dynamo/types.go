package dynamo

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the instantaneous system position.
type State = mgl64.Vec3

// Derivative evaluates f(t, x) for the system dX/dt = f(t, X).
// Implementations must be pure.
type Derivative func(t float64, x State) State

// IsValid reports whether every component of s is finite.
func IsValid(s State) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sample is one (time, state) pair of a trajectory.
type Sample struct {
	T     float64
	State State
}

func (s Sample) String() string {
	return fmt.Sprintf("t=%.4f x=%.6f y=%.6f z=%.6f", s.T, s.State[0], s.State[1], s.State[2])
}

// Trajectory is the output of one fixed-step solver run: Times[i] pairs with
// States[i]. It is never mutated after construction.
type Trajectory struct {
	Times  []float64
	States []State
}

// NewTrajectory allocates an empty trajectory with room for n samples.
func NewTrajectory(n int) *Trajectory {
	return &Trajectory{
		Times:  make([]float64, 0, n),
		States: make([]State, 0, n),
	}
}

func (tr *Trajectory) Len() int {
	if tr == nil {
		return 0
	}
	return len(tr.States)
}

// At returns sample i. It panics if i is out of range.
func (tr *Trajectory) At(i int) Sample {
	return Sample{T: tr.Times[i], State: tr.States[i]}
}

// Append adds a sample. Only the solver calls this.
func (tr *Trajectory) Append(t float64, s State) {
	tr.Times = append(tr.Times, t)
	tr.States = append(tr.States, s)
}

// Step returns the uniform time step, or 0 for trajectories shorter than two samples.
func (tr *Trajectory) Step() float64 {
	if tr.Len() < 2 {
		return 0
	}
	return tr.Times[1] - tr.Times[0]
}

// Valid reports whether every sample is finite.
func (tr *Trajectory) Valid() bool {
	for _, s := range tr.States {
		if !IsValid(s) {
			return false
		}
	}
	return true
}

// IndexAt returns the index of the last sample whose time is <= t, clamped
// to the trajectory bounds.
func (tr *Trajectory) IndexAt(t float64) int {
	n := tr.Len()
	if n == 0 {
		return -1
	}
	lo, hi := 0, n-1
	if t <= tr.Times[lo] {
		return lo
	}
	if t >= tr.Times[hi] {
		return hi
	}
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if tr.Times[mid] <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
