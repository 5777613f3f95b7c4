// Package dimension represents physical dimensions as integer exponents
// over the seven SI base dimensions.
//
// A [Vector] is a fixed-size array indexed by [Base], so a zero exponent
// is the same as an absent one and two vectors describe the same
// dimension exactly when they compare equal with ==:
//
//	force := dimension.Mul(dimension.Mass, dimension.Div(dimension.Length, dimension.Pow(dimension.Time, 2)))
//	dimension.Same(force, dimension.Force) // true
//
// Vectors are values; every operation returns a new one.
package dimension
