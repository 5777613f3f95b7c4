// Package gravity advances a set of bodies under mutual Newtonian gravity.
//
// Every step computes the force for each unordered pair of bodies from their
// current positions, applies it to both bodies with opposite signs, and then
// ticks each body once. Positions move with the already updated momenta,
// which makes the scheme semi-implicit Euler: first order, with an energy
// error that [Run] reports as relative drift.
//
// Basic usage:
//
//	sys := gravity.New(earth, moon)
//	dt := quantity.MustParseScalar("s", 60)
//	for i := 0; i < steps; i++ {
//		if err := sys.Advance(dt); err != nil {
//			return err
//		}
//	}
package gravity
