package physics

import "github.com/san-kum/lorenz/internal/dynamo"

// Classic chaotic-regime parameters.
const (
	Sigma = 10.0
	Beta  = 2.667
	Rho   = 28.0
)

// Lorenz is the three-variable Lorenz system. Parameters are fixed at construction.
type Lorenz struct{ sigma, beta, rho float64 }

func NewLorenz() *Lorenz { return &Lorenz{Sigma, Beta, Rho} }

// DefaultState is a point near, but off, the unstable origin.
func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{0.0, 1.0, 1.05} }

// Derive calculates the Lorenz attractor derivatives. The system is autonomous; t is unused.
func (l *Lorenz) Derive(_ float64, s dynamo.State) dynamo.State {
	x, y, z := s[0], s[1], s[2]
	return dynamo.State{l.sigma * (y - x), x*(l.rho-z) - y, x*y - l.beta*z}
}

func (l *Lorenz) Params() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "beta": l.beta, "rho": l.rho}
}
