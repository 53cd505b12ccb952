// Package analysis provides chaos diagnostics for solved trajectories.
//
// Sensitivity to initial conditions is measured two ways: directly, by
// comparing two trajectories sample by sample ([Divergence],
// [SeparationAt]), and by the largest Lyapunov exponent:
//
//	lambda := analysis.LyapunovExponent(lorenz.Derive, x0, 0, 50, 10000, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
//
// [Summarize] and [LobeSwitches] describe a single trajectory, and
// [Checksum] fingerprints one so that runs can be compared for bit-identical
// output.
package analysis
