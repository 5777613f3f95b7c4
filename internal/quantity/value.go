package quantity

import (
	"fmt"
	"strconv"
)

// Kind tags the shape of a Value.
type Kind uint8

const (
	KindScalar Kind = iota
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is either a Scalar or a Vector. The zero Value is Scalar(0).
type Value struct {
	kind   Kind
	scalar Scalar
	vector Vector
}

func ScalarValue(x float64) Value { return Value{kind: KindScalar, scalar: Scalar(x)} }

func VectorValue(v Vector) Value { return Value{kind: KindVector, vector: v.clone()} }

func (v Value) Kind() Kind { return v.kind }

// Scalar returns the scalar payload; ok is false for vectors.
func (v Value) Scalar() (Scalar, bool) {
	return v.scalar, v.kind == KindScalar
}

// Vector returns a copy of the vector payload; ok is false for scalars.
func (v Value) Vector() (Vector, bool) {
	if v.kind != KindVector {
		return Vector{}, false
	}
	return v.vector.clone(), true
}

// Magnitude is the scalar itself or the vector magnitude.
func (v Value) Magnitude() float64 {
	switch v.kind {
	case KindScalar:
		return float64(v.scalar)
	case KindVector:
		return v.vector.Magnitude
	default:
		panic(unknownKind(v.kind))
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return formatFloat(float64(v.scalar))
	case KindVector:
		return fmt.Sprintf("%s%v", formatFloat(v.vector.Magnitude), v.vector.Direction)
	default:
		panic(unknownKind(v.kind))
	}
}

// pair identifies an (left, right) kind combination so that arithmetic can
// switch over every combination explicitly.
type pair uint8

const (
	scalarScalar pair = iota
	scalarVector
	vectorScalar
	vectorVector
)

func pairOf(a, b Value) pair {
	switch {
	case a.kind == KindScalar && b.kind == KindScalar:
		return scalarScalar
	case a.kind == KindScalar && b.kind == KindVector:
		return scalarVector
	case a.kind == KindVector && b.kind == KindScalar:
		return vectorScalar
	case a.kind == KindVector && b.kind == KindVector:
		return vectorVector
	default:
		panic(fmt.Sprintf("quantity: unhandled kinds %v, %v", a.kind, b.kind))
	}
}

func unknownKind(k Kind) string {
	return "quantity: unhandled kind " + k.String()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
