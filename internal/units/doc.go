// Package units holds the static unit catalog, the composite-name
// synthesis used to print unfamiliar dimensions, and the parser for unit
// expressions such as "kg*m/s^2" or "km".
//
// The catalog is built once at package initialisation and never mutated.
// Lookups for dimensions without a registered unit synthesise a fresh
// [Identifier] every time:
//
//	id, _ := units.Identify(dimension.Momentum, units.English)
//	id.Plural    // "kilograms times meters per second"
//	id.Shorthand // "kg*m/s"
package units
