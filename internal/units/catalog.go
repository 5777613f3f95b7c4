package units

import (
	"fmt"

	"github.com/san-kum/gravsim/internal/dimension"
)

type names struct {
	singular, plural string
}

type entry struct {
	dim       dimension.Vector
	symbol    string
	shorthand string
	names     map[Language]names
}

// Identifier is a unit rendered for one language.
type Identifier struct {
	Dim       dimension.Vector
	Symbol    string
	Shorthand string
	Singular  string
	Plural    string
}

// Name returns the singular form when singular is true, else the plural.
func (id Identifier) Name(singular bool) string {
	if singular {
		return id.Singular
	}
	return id.Plural
}

type catalog struct {
	entries     []entry
	byDim       map[dimension.Vector]int
	bySymbol    map[string]int
	byShorthand map[string]int
	maxRunes    int
}

func u(dim dimension.Vector, symbol, shorthand, en, enPlural, de, dePlural string) entry {
	return entry{
		dim:       dim,
		symbol:    symbol,
		shorthand: shorthand,
		names: map[Language]names{
			English: {en, enPlural},
			German:  {de, dePlural},
		},
	}
}

type exps = dimension.Vector

const (
	mB = dimension.MassBase
	lB = dimension.LengthBase
	tB = dimension.TimeBase
	iB = dimension.CurrentBase
)

// Base units come first so that symbol lookups for synthesis find them and
// exact-match lookups prefer them over derived units with equal dimension.
var registered = []entry{
	u(dimension.Time, "T", "s", "second", "seconds", "Sekunde", "Sekunden"),
	u(dimension.Length, "L", "m", "meter", "meters", "Meter", "Meter"),
	u(dimension.Mass, "M", "kg", "kilogram", "kilograms", "Kilogramm", "Kilogramm"),
	u(dimension.Current, "I", "A", "ampere", "amperes", "Ampere", "Ampere"),
	u(dimension.Temperature, "Θ", "K", "kelvin", "kelvins", "Kelvin", "Kelvin"),
	u(dimension.Amount, "N", "mol", "mole", "moles", "Mol", "Mol"),
	u(dimension.Luminosity, "J", "cd", "candela", "candelas", "Candela", "Candela"),

	u(exps{tB: -1}, "frequency", "Hz", "hertz", "hertz", "Hertz", "Hertz"),
	u(dimension.Force, "force", "N", "newton", "newtons", "Newton", "Newton"),
	u(exps{mB: 1, lB: -1, tB: -2}, "pressure", "Pa", "pascal", "pascals", "Pascal", "Pascal"),
	u(dimension.Energy, "energy", "J", "joule", "joules", "Joule", "Joule"),
	u(exps{mB: 1, lB: 2, tB: -3}, "power", "W", "watt", "watts", "Watt", "Watt"),
	u(dimension.Charge, "charge", "C", "coulomb", "coulombs", "Coulomb", "Coulomb"),
	u(exps{mB: 1, lB: 2, tB: -3, iB: -1}, "voltage", "V", "volt", "volts", "Volt", "Volt"),
	u(exps{mB: -1, lB: -2, tB: 4, iB: 2}, "capacitance", "F", "farad", "farads", "Farad", "Farad"),
	u(exps{mB: 1, lB: 2, tB: -3, iB: -2}, "resistance", "Ω", "ohm", "ohms", "Ohm", "Ohm"),
	u(exps{mB: -1, lB: -2, tB: 3, iB: 2}, "conductance", "S", "siemens", "siemens", "Siemens", "Siemens"),
	u(exps{mB: 1, lB: 2, tB: -2, iB: -1}, "magnetic flux", "Wb", "weber", "webers", "Weber", "Weber"),
	u(exps{mB: 1, tB: -2, iB: -1}, "magnetic flux density", "T", "tesla", "teslas", "Tesla", "Tesla"),
	u(exps{mB: 1, lB: 2, tB: -2, iB: -2}, "inductance", "H", "henry", "henries", "Henry", "Henry"),
	u(dimension.Luminosity, "luminous flux", "lm", "lumen", "lumens", "Lumen", "Lumen"),
	u(exps{dimension.LuminosityBase: 1, lB: -2}, "illuminance", "lx", "lux", "lux", "Lux", "Lux"),
	u(exps{tB: -1}, "radioactivity", "Bq", "becquerel", "becquerels", "Becquerel", "Becquerel"),
	u(exps{lB: 2, tB: -2}, "absorbed dose", "Gy", "gray", "grays", "Gray", "Gray"),
	u(exps{lB: 2, tB: -2}, "equivalent dose", "Sv", "sievert", "sieverts", "Sievert", "Sievert"),
	u(exps{dimension.AmountBase: 1, tB: -1}, "catalytic activity", "kat", "katal", "katals", "Katal", "Katal"),
}

var table = buildCatalog(registered)

func buildCatalog(entries []entry) *catalog {
	c := &catalog{
		entries:     entries,
		byDim:       make(map[dimension.Vector]int, len(entries)),
		bySymbol:    make(map[string]int, len(entries)),
		byShorthand: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, ok := c.byDim[e.dim]; !ok {
			c.byDim[e.dim] = i
		}
		if _, dup := c.bySymbol[e.symbol]; dup {
			panic(fmt.Sprintf("units: duplicate symbol %q", e.symbol))
		}
		c.bySymbol[e.symbol] = i
		if _, dup := c.byShorthand[e.shorthand]; dup {
			panic(fmt.Sprintf("units: duplicate shorthand %q", e.shorthand))
		}
		c.byShorthand[e.shorthand] = i
		if n := len([]rune(e.shorthand)); n > c.maxRunes {
			c.maxRunes = n
		}
	}
	return c
}

func (e entry) identifier(lang Language) Identifier {
	n, ok := e.names[lang]
	if !ok {
		n = e.names[English]
	}
	return Identifier{
		Dim:       e.dim,
		Symbol:    e.symbol,
		Shorthand: e.shorthand,
		Singular:  n.singular,
		Plural:    n.plural,
	}
}

// Identify returns the registered unit for d, or a synthesised composite
// name when none is registered.
func Identify(d dimension.Vector, lang Language) (Identifier, error) {
	if i, ok := table.byDim[d]; ok {
		return table.entries[i].identifier(lang), nil
	}
	return synthesize(d, lang)
}

// BySymbol looks up a registered unit by its dimension or quantity symbol,
// e.g. "L" or "force".
func BySymbol(symbol string, lang Language) (Identifier, error) {
	i, ok := table.bySymbol[symbol]
	if !ok {
		return Identifier{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return table.entries[i].identifier(lang), nil
}

// ByShorthand looks up a registered unit by its printable shorthand.
func ByShorthand(shorthand string, lang Language) (Identifier, bool) {
	i, ok := table.byShorthand[shorthand]
	if !ok {
		return Identifier{}, false
	}
	return table.entries[i].identifier(lang), true
}

// All lists every registered unit in registration order.
func All(lang Language) []Identifier {
	ids := make([]Identifier, len(table.entries))
	for i, e := range table.entries {
		ids[i] = e.identifier(lang)
	}
	return ids
}
