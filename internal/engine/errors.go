package engine

import (
	"errors"
	"fmt"
)

// ErrInitialization matches every *InitializationError via errors.Is.
var ErrInitialization = errors.New("engine: initialization failed")

// InitializationError reports a display, window or surface setup failure.
// It is fatal for the run.
type InitializationError struct {
	Op  string
	Err error
}

func (e *InitializationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("engine: %s failed", e.Op)
	}
	return fmt.Sprintf("engine: %s: %v", e.Op, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

func (e *InitializationError) Is(target error) bool {
	return target == ErrInitialization
}
