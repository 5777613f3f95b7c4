package units

// Metric prefixes from yocto to yotta. The empty prefix scales by 1; both
// the micro sign and the Greek mu are accepted for micro.
var modifiers = map[string]float64{
	"y":  1e-24,
	"z":  1e-21,
	"a":  1e-18,
	"f":  1e-15,
	"p":  1e-12,
	"n":  1e-9,
	"µ":  1e-6,
	"μ":  1e-6,
	"m":  1e-3,
	"c":  1e-2,
	"d":  1e-1,
	"":   1,
	"da": 1e1,
	"h":  1e2,
	"k":  1e3,
	"M":  1e6,
	"G":  1e9,
	"T":  1e12,
	"P":  1e15,
	"E":  1e18,
	"Z":  1e21,
	"Y":  1e24,
}

// Modifier returns the scale for a metric prefix.
func Modifier(prefix string) (float64, bool) {
	f, ok := modifiers[prefix]
	return f, ok
}
