package analysis

import (
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
)

// LyapunovExponent estimates the largest Lyapunov exponent of f using the
// trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
// 1. Step a reference and a copy displaced by eps along x with RK4
// 2. After each step, log the growth of their separation
// 3. Pull the copy back to distance eps along the current separation
// 4. λ ≈ Σ ln(d_i/eps) / (b - a)
func LyapunovExponent(f dynamo.Derivative, alpha dynamo.State, a, b float64, n int, eps float64) float64 {
	if n < 1 || b <= a || eps <= 0 {
		return 0
	}

	h := (b - a) / float64(n)
	x := alpha
	xp := alpha.Add(dynamo.State{eps, 0, 0})

	sumLog := 0.0
	for i := 0; i < n; i++ {
		t := a + float64(i)*h
		x = integrators.Step(f, t, h, x)
		xp = integrators.Step(f, t, h, xp)

		delta := xp.Sub(x)
		d := delta.Len()
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		sumLog += math.Log(d / eps)
		xp = x.Add(delta.Mul(eps / d))
	}
	return sumLog / (b - a)
}
