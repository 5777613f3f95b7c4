package dimension

import "errors"

var (
	// ErrUnknownSymbol indicates a base dimension symbol that is not registered.
	ErrUnknownSymbol = errors.New("dimension: unknown symbol")

	// ErrExponentRange indicates an exponent beyond ±MaxExponent.
	ErrExponentRange = errors.New("dimension: exponent out of range")
)
