package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory operations.
var (
	// ErrInvalidState indicates a state with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrLengthMismatch indicates two trajectories that cannot be compared sample by sample.
	ErrLengthMismatch = errors.New("dynamo: trajectory length mismatch")
)

// SampleError wraps an error with the sample it was found at.
type SampleError struct {
	Index   int
	Time    float64
	State   State
	Wrapped error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %d (t=%.4f): %v", e.Index, e.Time, e.Wrapped)
}

func (e *SampleError) Unwrap() error {
	return e.Wrapped
}

// Validate returns a *SampleError wrapping ErrInvalidState for the first
// non-finite sample, or nil.
func (tr *Trajectory) Validate() error {
	for i, s := range tr.States {
		if !IsValid(s) {
			return &SampleError{Index: i, Time: tr.Times[i], State: s, Wrapped: ErrInvalidState}
		}
	}
	return nil
}
