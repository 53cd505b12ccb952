package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
)

func oscillator(_ float64, x dynamo.State) dynamo.State {
	return dynamo.State{x[1], -x[0], 0}
}

func zero(_ float64, _ dynamo.State) dynamo.State {
	return dynamo.State{}
}

func TestRK4Accuracy(t *testing.T) {
	x0 := dynamo.State{1.0, 0.0, 0.0}
	dt := 0.01
	steps := 100

	x := x0
	for i := 0; i < steps; i++ {
		x = Step(oscillator, float64(i)*dt, dt, x)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestSolveShape(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		n    int
	}{
		{"single step", 0, 1, 1},
		{"unit interval", 0, 1, 10},
		{"offset interval", 2.5, 7.5, 400},
		{"lorenz span", 0, 50, 10000},
		{"reversed", 1, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alpha := dynamo.State{0.3, -0.2, 0.1}
			traj := Solve(tt.a, tt.b, alpha, oscillator, tt.n)

			if traj.Len() != tt.n+1 {
				t.Fatalf("expected %d samples, got %d", tt.n+1, traj.Len())
			}
			if traj.Times[0] != tt.a || traj.States[0] != alpha {
				t.Errorf("expected first sample (%v, %v), got %v", tt.a, alpha, traj.At(0))
			}

			h := (tt.b - tt.a) / float64(tt.n)
			for i, ti := range traj.Times {
				if want := tt.a + float64(i)*h; ti != want {
					t.Fatalf("time %d: expected %v, got %v", i, want, ti)
				}
			}
			if last := traj.Times[tt.n]; math.Abs(last-tt.b) > 1e-9 {
				t.Errorf("expected final time %v, got %v", tt.b, last)
			}
		})
	}
}

func TestSolveZeroDerivativeIsConstant(t *testing.T) {
	alpha := dynamo.State{3, -4, 5}
	traj := Solve(-1, 9, alpha, zero, 250)

	for i, s := range traj.States {
		if s != alpha {
			t.Fatalf("state %d drifted: expected %v, got %v", i, alpha, s)
		}
	}
}

func TestSolveDeterministic(t *testing.T) {
	alpha := dynamo.State{0, 1, 1.05}
	first := Solve(0, 20, alpha, oscillator, 2000)
	second := Solve(0, 20, alpha, oscillator, 2000)

	for i := range first.States {
		if first.States[i] != second.States[i] || first.Times[i] != second.Times[i] {
			t.Fatalf("runs differ at sample %d: %v vs %v", i, first.At(i), second.At(i))
		}
	}
}

func TestSolveMatchesStep(t *testing.T) {
	alpha := dynamo.State{1, 0, 0}
	traj := Solve(0, 1, alpha, oscillator, 4)

	w := alpha
	for i := 1; i <= 4; i++ {
		w = Step(oscillator, float64(i-1)*0.25, 0.25, w)
		if traj.States[i] != w {
			t.Errorf("sample %d: expected %v, got %v", i, w, traj.States[i])
		}
	}
}

func TestSolvePanicsWithoutSteps(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for n=0")
		}
	}()
	Solve(0, 1, dynamo.State{}, zero, 0)
}
