// Package quantity pairs numeric values with physical dimensions.
//
// A [Quantity] holds a [dimension.Vector] and a [Value], which is either a
// [Scalar] or a direction-magnitude [Vector]. Arithmetic checks and
// composes dimensions:
//
//	i := quantity.MustParseScalar("A", 50)
//	r := quantity.MustParseScalar("Ω", 5)
//	v, _ := i.Mul(r)
//	v.String() // "250 volts = 250 V"
//
// Add and Sub require equal dimensions; Mul and Div compose them. The
// supported value combinations per operation are fixed, see [Quantity.Add]
// and [Quantity.Mul].
package quantity
