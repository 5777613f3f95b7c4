package units

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/gravsim/internal/dimension"
)

// Result is a parsed unit expression: its dimension and the factor that
// converts a number written in that unit to SI base units.
type Result struct {
	Dim   dimension.Vector
	Scale float64
}

var unitless = Result{Dim: dimension.Dimensionless, Scale: 1}

// Parser turns unit expressions into a Result.
//
// A factor whose text matches no known shorthand is treated as
// dimensionless with scale 1 unless Strict is set, in which case it fails
// with ErrUnknownUnit.
type Parser struct {
	Strict bool
}

// Parse parses expr with the permissive default parser.
func Parse(expr string) (Result, error) {
	return Parser{}.Parse(expr)
}

// ParseQuantityText splits "<number><unit-expr>" and parses both halves.
func ParseQuantityText(text string) (float64, Result, error) {
	return Parser{}.ParseQuantityText(text)
}

// Parse accepts numerator ("/" denominator)?, each side a "*"-separated
// list of [modifier]shorthand(^integer)? factors.
func (p Parser) Parse(expr string) (Result, error) {
	sides := strings.Split(expr, "/")
	if len(sides) > 2 {
		return Result{}, &ParseError{Expr: expr, Wrapped: ErrMalformedExpression}
	}

	num, err := p.parseProduct(expr, sides[0])
	if err != nil {
		return Result{}, err
	}
	if len(sides) == 1 {
		return checkRange(expr, num)
	}

	if strings.TrimSpace(sides[1]) == "" {
		return Result{}, &ParseError{Expr: expr, Wrapped: ErrMalformedExpression}
	}
	den, err := p.parseProduct(expr, sides[1])
	if err != nil {
		return Result{}, err
	}

	return checkRange(expr, Result{
		Dim:   dimension.Div(num.Dim, den.Dim),
		Scale: num.Scale / den.Scale,
	})
}

func checkRange(expr string, r Result) (Result, error) {
	if r.Dim.Check() != nil {
		return Result{}, &ParseError{Expr: expr, Wrapped: ErrMalformedExpression}
	}
	return r, nil
}

func (p Parser) parseProduct(expr, side string) (Result, error) {
	r := unitless
	for _, factor := range strings.Split(side, "*") {
		f, err := p.parseFactor(expr, factor)
		if err != nil {
			return Result{}, err
		}
		r.Dim = dimension.Mul(r.Dim, f.Dim)
		r.Scale *= f.Scale
	}
	return r, nil
}

func (p Parser) parseFactor(expr, factor string) (Result, error) {
	factor = strings.TrimSpace(factor)

	pieces := strings.Split(factor, "^")
	if len(pieces) > 2 {
		return Result{}, &ParseError{Expr: expr, Factor: factor, Wrapped: ErrMalformedExpression}
	}
	exp := 1
	if len(pieces) == 2 {
		n, err := strconv.Atoi(strings.TrimSpace(pieces[1]))
		if err != nil || !dimension.ExponentInRange(n) {
			return Result{}, &ParseError{Expr: expr, Factor: factor, Wrapped: ErrMalformedExpression}
		}
		exp = n
	}

	runes := []rune(strings.TrimSpace(pieces[0]))
	if len(runes) == 0 {
		return unitless, nil
	}

	// Try suffixes of increasing length; the last hit is the longest.
	start := -1
	var id int
	for n := 1; n <= len(runes) && n <= table.maxRunes; n++ {
		if i, ok := table.byShorthand[string(runes[len(runes)-n:])]; ok {
			start, id = len(runes)-n, i
		}
	}
	if start < 0 {
		if p.Strict {
			return Result{}, &ParseError{Expr: expr, Factor: factor, Wrapped: ErrUnknownUnit}
		}
		return unitless, nil
	}

	scale, ok := modifiers[string(runes[:start])]
	if !ok {
		return Result{}, &ParseError{Expr: expr, Factor: factor, Wrapped: ErrUnknownModifier}
	}

	return Result{
		Dim:   dimension.Pow(table.entries[id].dim, exp),
		Scale: math.Pow(scale, float64(exp)),
	}, nil
}

func isNumeral(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '+' || r == '.' || r == ',' || r == 'e'
}

// ParseQuantityText reads the leading numeral characters as a number (a
// comma is taken as decimal separator) and parses the rest as a unit
// expression. The returned number is as written, not yet scaled.
func (p Parser) ParseQuantityText(text string) (float64, Result, error) {
	text = strings.TrimSpace(text)
	end := strings.IndexFunc(text, func(r rune) bool { return !isNumeral(r) })
	if end < 0 {
		end = len(text)
	}

	numeral := strings.ReplaceAll(text[:end], ",", ".")
	x, err := strconv.ParseFloat(numeral, 64)
	if err != nil {
		return 0, Result{}, &ParseError{Expr: text, Factor: text[:end], Wrapped: ErrInvalidNumber}
	}

	r, err := p.Parse(strings.TrimSpace(text[end:]))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return 0, Result{}, &ParseError{Expr: text, Factor: pe.Factor, Wrapped: pe.Wrapped}
		}
		return 0, Result{}, err
	}
	return x, r, nil
}
