package analysis

import (
	"context"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"golang.org/x/sync/errgroup"
)

// Ensemble solves f over [a, b] in n steps once per initial state,
// concurrently. Results are in the order of initials. A cancelled ctx stops
// runs that have not started yet.
func Ensemble(ctx context.Context, f dynamo.Derivative, initials []dynamo.State, a, b float64, n int) ([]*dynamo.Trajectory, error) {
	results := make([]*dynamo.Trajectory, len(initials))

	g, ctx := errgroup.WithContext(ctx)
	for i, x0 := range initials {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr := integrators.Solve(a, b, x0, f, n)
			if err := tr.Validate(); err != nil {
				return err
			}
			results[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Perturbed returns x0 followed by x0 + offsets[i] for each offset.
func Perturbed(x0 dynamo.State, offsets ...dynamo.State) []dynamo.State {
	out := make([]dynamo.State, 0, len(offsets)+1)
	out = append(out, x0)
	for _, o := range offsets {
		out = append(out, x0.Add(o))
	}
	return out
}
