// Package dynamo provides core primitives for the attractor simulation.
//
// The package defines the fundamental types shared by the integrator, the
// physical model and the scene:
//
//   - [State]: instantaneous (x, y, z) position of the system
//   - [Derivative]: right-hand side of dX/dt = f(t, X)
//   - [Trajectory]: ordered (time, state) samples from one solver run
//
// # Example
//
//	lorenz := physics.NewLorenz()
//	traj := integrators.Solve(0, 50, dynamo.State{0, 1, 1.05}, lorenz.Derive, 10000)
//	last := traj.At(traj.Len() - 1)
//
// # Thread Safety
//
// A Trajectory is immutable once produced and may be read from any number
// of goroutines.
package dynamo
