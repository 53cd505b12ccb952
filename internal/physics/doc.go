// Package physics provides the dynamical system models for simulation.
//
// [Lorenz] defines the butterfly attractor:
//
//	dx/dt = sigma*(y - x)
//	dy/dt = x*(rho - z) - y
//	dz/dt = x*y - beta*z
//
// Its [Lorenz.Derive] method satisfies [dynamo.Derivative] and is handed to
// the solver once:
//
//	l := physics.NewLorenz()
//	traj := integrators.Solve(0, 50, l.DefaultState(), l.Derive, 10000)
package physics
