package quantity

import (
	"gonum.org/v1/gonum/floats"
)

// Vector is a signed magnitude along a direction. After Normalize the
// direction has unit Euclidean norm and the sign lives in the magnitude.
type Vector struct {
	Magnitude float64
	Direction []float64
}

// NewVector copies dir so the caller keeps ownership of its slice.
func NewVector(magnitude float64, dir ...float64) Vector {
	d := make([]float64, len(dir))
	copy(d, dir)
	return Vector{Magnitude: magnitude, Direction: d}
}

func (v Vector) clone() Vector {
	return NewVector(v.Magnitude, v.Direction...)
}

// Norm is the Euclidean norm of the direction array.
func (v Vector) Norm() float64 {
	if len(v.Direction) == 0 {
		return 0
	}
	return floats.Norm(v.Direction, 2)
}

// Normalize folds the direction length into the magnitude. A zero-length
// direction yields magnitude 0 and leaves the direction as is.
func (v Vector) Normalize() Vector {
	r := v.clone()
	s := r.Norm()
	if r.Magnitude < 0 {
		s = -s
	}
	if s == 0 {
		r.Magnitude = 0
		return r
	}
	r.Magnitude *= s
	floats.Scale(1/s, r.Direction)
	return r
}

// Components returns magnitude*direction[i].
func (v Vector) Components() []float64 {
	c := make([]float64, len(v.Direction))
	floats.ScaleTo(c, v.Magnitude, v.Direction)
	return c
}

// Component returns magnitude*direction[i], or 0 when i is out of range.
func (v Vector) Component(i int) float64 {
	if i < 0 || i >= len(v.Direction) {
		return 0
	}
	return v.Magnitude * v.Direction[i]
}

// Add sums the Cartesian components of v and o and renormalizes.
func (v Vector) Add(o Vector) (Vector, error) {
	return v.combine(o, 1)
}

// Sub subtracts the Cartesian components of o from v and renormalizes.
func (v Vector) Sub(o Vector) (Vector, error) {
	return v.combine(o, -1)
}

func (v Vector) combine(o Vector, sign float64) (Vector, error) {
	if len(v.Direction) != len(o.Direction) {
		return Vector{}, ErrLengthMismatch
	}
	c := v.Components()
	floats.AddScaled(c, sign*o.Magnitude, o.Direction)
	return Vector{Magnitude: 1, Direction: c}.Normalize(), nil
}

func (v Vector) Mul(s Scalar) Vector {
	r := v.clone()
	r.Magnitude *= float64(s)
	return r
}

func (v Vector) Div(s Scalar) Vector {
	r := v.clone()
	r.Magnitude /= float64(s)
	return r
}
