package quantity

import (
	"math"

	"github.com/san-kum/gravsim/internal/dimension"
	"github.com/san-kum/gravsim/internal/units"
)

// Quantity is a value carrying a physical dimension in SI base units.
type Quantity struct {
	Dim   dimension.Vector
	Value Value
}

func New(dim dimension.Vector, v Value) Quantity {
	return Quantity{Dim: dim, Value: v}
}

// Parse builds a quantity from a unit expression and a value written in
// that unit; the prefix scale is folded into the value.
func Parse(expr string, v Value) (Quantity, error) {
	return ParseWith(units.Parser{}, expr, v)
}

func ParseWith(p units.Parser, expr string, v Value) (Quantity, error) {
	r, err := p.Parse(expr)
	if err != nil {
		return Quantity{}, err
	}
	return New(r.Dim, scale(v, r.Scale)), nil
}

func ParseScalar(expr string, x float64) (Quantity, error) {
	return Parse(expr, ScalarValue(x))
}

func ParseVector(expr string, magnitude float64, dir ...float64) (Quantity, error) {
	return Parse(expr, VectorValue(NewVector(magnitude, dir...)))
}

// ParseText parses a bare scalar quantity such as "5.972e24kg".
func ParseText(text string) (Quantity, error) {
	return ParseTextWith(units.Parser{}, text)
}

func ParseTextWith(p units.Parser, text string) (Quantity, error) {
	x, r, err := p.ParseQuantityText(text)
	if err != nil {
		return Quantity{}, err
	}
	return New(r.Dim, ScalarValue(x*r.Scale)), nil
}

// MustParseScalar is ParseScalar for expressions known to be valid; it
// panics on error.
func MustParseScalar(expr string, x float64) Quantity {
	q, err := ParseScalar(expr, x)
	if err != nil {
		panic(err)
	}
	return q
}

// MustParseVector is ParseVector that panics on error.
func MustParseVector(expr string, magnitude float64, dir ...float64) Quantity {
	q, err := ParseVector(expr, magnitude, dir...)
	if err != nil {
		panic(err)
	}
	return q
}

func scale(v Value, f float64) Value {
	switch v.kind {
	case KindScalar:
		return ScalarValue(float64(v.scalar) * f)
	case KindVector:
		return VectorValue(v.vector.Mul(Scalar(f)))
	default:
		panic(unknownKind(v.kind))
	}
}

func (q Quantity) fail(op string, o Quantity, err error) error {
	return &OpError{Op: op, Left: q.Dim, Right: o.Dim, Wrapped: err}
}

// Add requires equal dimensions and equal value kinds.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	return q.addSub("add", o, Vector.Add, Scalar.Add)
}

// Sub requires equal dimensions and equal value kinds.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	return q.addSub("subtract", o, Vector.Sub, Scalar.Sub)
}

func (q Quantity) addSub(op string, o Quantity, vf func(Vector, Vector) (Vector, error), sf func(Scalar, Scalar) Scalar) (Quantity, error) {
	if !dimension.Same(q.Dim, o.Dim) {
		return Quantity{}, q.fail(op, o, ErrUnitMismatch)
	}
	switch pairOf(q.Value, o.Value) {
	case scalarScalar:
		return New(q.Dim, ScalarValue(float64(sf(q.Value.scalar, o.Value.scalar)))), nil
	case vectorVector:
		v, err := vf(q.Value.vector, o.Value.vector)
		if err != nil {
			return Quantity{}, q.fail(op, o, err)
		}
		return New(q.Dim, VectorValue(v)), nil
	case scalarVector, vectorScalar:
		return Quantity{}, q.fail(op, o, ErrVariantMismatch)
	default:
		panic("quantity: unreachable")
	}
}

// Mul composes dimensions. A vector may be scaled by a scalar on either
// side; vector times vector fails with ErrInvalidOperand.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	dim := dimension.Mul(q.Dim, o.Dim)
	if err := dim.Check(); err != nil {
		return Quantity{}, q.fail("multiply", o, err)
	}
	switch pairOf(q.Value, o.Value) {
	case scalarScalar:
		return New(dim, ScalarValue(float64(q.Value.scalar.Mul(o.Value.scalar)))), nil
	case vectorScalar:
		return New(dim, VectorValue(q.Value.vector.Mul(o.Value.scalar))), nil
	case scalarVector:
		return New(dim, VectorValue(o.Value.vector.Mul(q.Value.scalar))), nil
	case vectorVector:
		return Quantity{}, q.fail("multiply", o, ErrInvalidOperand)
	default:
		panic("quantity: unreachable")
	}
}

// Div composes dimensions. Only a scalar divisor is accepted.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	dim := dimension.Div(q.Dim, o.Dim)
	if err := dim.Check(); err != nil {
		return Quantity{}, q.fail("divide", o, err)
	}
	switch pairOf(q.Value, o.Value) {
	case scalarScalar:
		return New(dim, ScalarValue(float64(q.Value.scalar.Div(o.Value.scalar)))), nil
	case vectorScalar:
		return New(dim, VectorValue(q.Value.vector.Div(o.Value.scalar))), nil
	case scalarVector, vectorVector:
		return Quantity{}, q.fail("divide", o, ErrInvalidOperand)
	default:
		panic("quantity: unreachable")
	}
}

// Pow raises a scalar quantity to an integer power. Exponents of the
// result are bounded by dimension.MaxExponent.
func (q Quantity) Pow(n int) (Quantity, error) {
	switch q.Value.kind {
	case KindScalar:
		if !dimension.ExponentInRange(n) {
			return Quantity{}, &OpError{Op: "exponentiate", Left: q.Dim, Right: dimension.Dimensionless, Wrapped: dimension.ErrExponentRange}
		}
		dim := dimension.Pow(q.Dim, n)
		if err := dim.Check(); err != nil {
			return Quantity{}, &OpError{Op: "exponentiate", Left: q.Dim, Right: dimension.Dimensionless, Wrapped: err}
		}
		return New(dim, ScalarValue(math.Pow(float64(q.Value.scalar), float64(n)))), nil
	case KindVector:
		return Quantity{}, &OpError{Op: "exponentiate", Left: q.Dim, Right: dimension.Dimensionless, Wrapped: ErrInvalidOperand}
	default:
		panic(unknownKind(q.Value.kind))
	}
}

// Neg flips the sign of the scalar or of the vector magnitude.
func (q Quantity) Neg() Quantity {
	return New(q.Dim, scale(q.Value, -1))
}

// Normalized is the identity for scalars and normalizes vectors.
func (q Quantity) Normalized() Quantity {
	if v, ok := q.Value.Vector(); ok {
		return New(q.Dim, VectorValue(v.Normalize()))
	}
	return q
}

// UnitQuality returns the dimensionless sign of a scalar, or for a vector a
// dimensionless vector of magnitude 1 pointing the same way (magnitude 0
// for a zero vector).
func (q Quantity) UnitQuality() Quantity {
	switch q.Value.kind {
	case KindScalar:
		return New(dimension.Dimensionless, ScalarValue(float64(q.Value.scalar.Sign())))
	case KindVector:
		v := q.Value.vector.Normalize()
		if v.Magnitude != 0 {
			v.Magnitude = 1
		}
		return New(dimension.Dimensionless, VectorValue(v))
	default:
		panic(unknownKind(q.Value.kind))
	}
}

// Unitless drops the dimension and keeps the value.
func (q Quantity) Unitless() Quantity {
	return New(dimension.Dimensionless, q.Value)
}

// Length is the identity for scalars; for vectors it is the scalar
// magnitude times the direction norm, keeping the dimension.
func (q Quantity) Length() Quantity {
	if v, ok := q.Value.Vector(); ok {
		return New(q.Dim, ScalarValue(v.Magnitude*v.Norm()))
	}
	return q
}

// Magnitude returns the scalar or the vector magnitude in SI base units.
func (q Quantity) Magnitude() float64 { return q.Value.Magnitude() }

// Axis returns the component along axis i in SI base units. A scalar has a
// single axis 0.
func (q Quantity) Axis(i int) float64 {
	switch q.Value.kind {
	case KindScalar:
		if i == 0 {
			return float64(q.Value.scalar)
		}
		return 0
	case KindVector:
		return q.Value.vector.Component(i)
	default:
		panic(unknownKind(q.Value.kind))
	}
}

// Is reports whether q has dimension d.
func (q Quantity) Is(d dimension.Vector) bool { return dimension.Same(q.Dim, d) }

func (q Quantity) Kind() Kind { return q.Value.kind }
