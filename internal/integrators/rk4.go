// Package integrators implements the fixed-step fourth-order Runge-Kutta solver.
package integrators

import "github.com/san-kum/lorenz/internal/dynamo"

// Step advances w by one RK4 step of size h starting at time t.
func Step(f dynamo.Derivative, t, h float64, w dynamo.State) dynamo.State {
	k1 := f(t, w).Mul(h)
	k2 := f(t+h/2, w.Add(k1.Mul(0.5))).Mul(h)
	k3 := f(t+h/2, w.Add(k2.Mul(0.5))).Mul(h)
	k4 := f(t+h, w.Add(k3)).Mul(h)

	var next dynamo.State
	for i := range next {
		next[i] = w[i] + (k1[i]+2*k2[i]+2*k3[i]+k4[i])/6
	}
	return next
}

// Solve integrates f over [a, b] from alpha with n uniform steps and returns
// the n+1 samples. Sample times are a + i*h rather than a running sum so the
// grid does not drift. n must be at least 1.
func Solve(a, b float64, alpha dynamo.State, f dynamo.Derivative, n int) *dynamo.Trajectory {
	if n < 1 {
		panic("integrators: step count must be at least 1")
	}

	h := (b - a) / float64(n)
	traj := dynamo.NewTrajectory(n + 1)
	traj.Append(a, alpha)

	w := alpha
	for i := 1; i <= n; i++ {
		w = Step(f, traj.Times[i-1], h, w)
		traj.Append(a+float64(i)*h, w)
	}
	return traj
}
