package quantity

import (
	"errors"
	"fmt"

	"github.com/san-kum/gravsim/internal/dimension"
)

var (
	// ErrUnitMismatch indicates an operation between quantities of different dimension.
	ErrUnitMismatch = errors.New("quantity: unit mismatch")

	// ErrVariantMismatch indicates mixing scalar and vector values where that is undefined.
	ErrVariantMismatch = errors.New("quantity: variant mismatch")

	// ErrInvalidOperand indicates a value kind the operation does not accept.
	ErrInvalidOperand = fmt.Errorf("%w: invalid operand", ErrVariantMismatch)

	// ErrLengthMismatch indicates vectors whose direction arrays differ in length.
	ErrLengthMismatch = errors.New("quantity: direction length mismatch")
)

// OpError records the operation and operand dimensions of a failed operation.
type OpError struct {
	Op          string
	Left, Right dimension.Vector
	Wrapped     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s [%v] and [%v]: %v", e.Op, e.Left, e.Right, e.Wrapped)
}

func (e *OpError) Unwrap() error {
	return e.Wrapped
}
