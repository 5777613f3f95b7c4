package units

import (
	"errors"

	"github.com/san-kum/gravsim/internal/dimension"
)

var (
	// ErrUnknownSymbol indicates a dimension or unit symbol missing from the catalog.
	ErrUnknownSymbol = dimension.ErrUnknownSymbol

	// ErrUnknownModifier indicates a metric prefix not in the modifier table.
	ErrUnknownModifier = errors.New("units: unknown modifier")

	// ErrMalformedExpression indicates more than one '/' or '^' where only one is allowed.
	ErrMalformedExpression = errors.New("units: malformed expression")

	// ErrInvalidNumber indicates the numeral prefix of a textual quantity does not parse.
	ErrInvalidNumber = errors.New("units: invalid number")

	// ErrUnknownUnit indicates a factor matching no shorthand, returned only by strict parsers.
	ErrUnknownUnit = errors.New("units: unknown unit")
)

// ParseError wraps a parse failure with the offending input.
type ParseError struct {
	Expr    string
	Factor  string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Factor != "" && e.Factor != e.Expr {
		return e.Wrapped.Error() + " in factor " + quote(e.Factor) + " of " + quote(e.Expr)
	}
	return e.Wrapped.Error() + " in " + quote(e.Expr)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

func quote(s string) string { return "\"" + s + "\"" }
