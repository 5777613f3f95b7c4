package dimension

import (
	"fmt"
	"strconv"
	"strings"
)

// Base is one of the seven SI base dimensions.
type Base int

const (
	MassBase Base = iota
	LengthBase
	TimeBase
	CurrentBase
	TemperatureBase
	AmountBase
	LuminosityBase

	NumBases
)

var baseSymbols = [NumBases]string{
	MassBase:        "M",
	LengthBase:      "L",
	TimeBase:        "T",
	CurrentBase:     "I",
	TemperatureBase: "Θ",
	AmountBase:      "N",
	LuminosityBase:  "J",
}

// Symbol returns the conventional dimension symbol, e.g. "L" for length.
func (b Base) Symbol() string {
	if b < 0 || b >= NumBases {
		return "?" + strconv.Itoa(int(b))
	}
	return baseSymbols[b]
}

func (b Base) Valid() bool { return b >= 0 && b < NumBases }

// ParseBase maps a dimension symbol back to its Base.
func ParseBase(symbol string) (Base, error) {
	for b, s := range baseSymbols {
		if s == symbol {
			return Base(b), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
}

// Vector holds one exponent per base dimension.
type Vector [NumBases]int

var (
	Dimensionless   = Vector{}
	Mass            = Vector{MassBase: 1}
	Length          = Vector{LengthBase: 1}
	Time            = Vector{TimeBase: 1}
	Current         = Vector{CurrentBase: 1}
	Temperature     = Vector{TemperatureBase: 1}
	Amount          = Vector{AmountBase: 1}
	Luminosity      = Vector{LuminosityBase: 1}
	Velocity        = Vector{LengthBase: 1, TimeBase: -1}
	Force           = Vector{MassBase: 1, LengthBase: 1, TimeBase: -2}
	Momentum        = Vector{MassBase: 1, LengthBase: 1, TimeBase: -1}
	AngularMomentum = Vector{MassBase: 1, LengthBase: 2, TimeBase: -1}
	Energy          = Vector{MassBase: 1, LengthBase: 2, TimeBase: -2}
	Charge          = Vector{TimeBase: 1, CurrentBase: 1}
)

// FromMap builds a Vector from symbol/exponent pairs. Zero exponents are
// dropped.
func FromMap(m map[string]int) (Vector, error) {
	var v Vector
	for sym, exp := range m {
		b, err := ParseBase(sym)
		if err != nil {
			return Vector{}, err
		}
		if !ExponentInRange(exp) {
			return Vector{}, fmt.Errorf("%w: %s^%d", ErrExponentRange, sym, exp)
		}
		v[b] += exp
	}
	return v, nil
}

func Mul(a, b Vector) Vector {
	var r Vector
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func Div(a, b Vector) Vector {
	var r Vector
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func Pow(a Vector, n int) Vector {
	var r Vector
	for i := range r {
		r[i] = a[i] * n
	}
	return r
}

// MaxExponent bounds every exponent a Vector may carry. Mul and Pow on
// vectors within the bound cannot overflow int.
const MaxExponent = 64

// ExponentInRange reports whether |n| <= MaxExponent.
func ExponentInRange(n int) bool { return n >= -MaxExponent && n <= MaxExponent }

// Check returns ErrExponentRange if any exponent of v is out of range.
func (v Vector) Check() error {
	for b, exp := range v {
		if !ExponentInRange(exp) {
			return fmt.Errorf("%w: %s^%d", ErrExponentRange, Base(b).Symbol(), exp)
		}
	}
	return nil
}

// Same reports whether a and b describe the same dimension.
func Same(a, b Vector) bool { return a == b }

func (v Vector) Mul(o Vector) Vector   { return Mul(v, o) }
func (v Vector) Div(o Vector) Vector   { return Div(v, o) }
func (v Vector) Pow(n int) Vector      { return Pow(v, n) }
func (v Vector) Exponent(b Base) int   { return v[b] }
func (v Vector) IsDimensionless() bool { return v == Dimensionless }

// Entry is a single nonzero base/exponent pair.
type Entry struct {
	Base     Base
	Exponent int
}

// Entries returns the nonzero exponents in base order.
func (v Vector) Entries() []Entry {
	entries := make([]Entry, 0, NumBases)
	for b, exp := range v {
		if exp != 0 {
			entries = append(entries, Entry{Base: Base(b), Exponent: exp})
		}
	}
	return entries
}

// String renders the vector as e.g. "M·L·T^-2", or "1" when dimensionless.
func (v Vector) String() string {
	entries := v.Entries()
	if len(entries) == 0 {
		return "1"
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		if e.Exponent == 1 {
			parts[i] = e.Base.Symbol()
		} else {
			parts[i] = e.Base.Symbol() + "^" + strconv.Itoa(e.Exponent)
		}
	}
	return strings.Join(parts, "·")
}
