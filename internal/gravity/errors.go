package gravity

import (
	"errors"
	"fmt"
)

var (
	// ErrCoincidentBodies indicates two bodies at the same position, where the force is undefined.
	ErrCoincidentBodies = errors.New("gravity: coincident bodies")

	// ErrNoBodies indicates a run over an empty system.
	ErrNoBodies = errors.New("gravity: system has no bodies")
)

// PairError wraps a failure computing or applying the force between bodies I and J.
type PairError struct {
	I, J    int
	Wrapped error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("gravity: pair (%d, %d): %v", e.I, e.J, e.Wrapped)
}

func (e *PairError) Unwrap() error {
	return e.Wrapped
}
