package units

import (
	"strconv"
	"strings"

	"github.com/san-kum/gravsim/internal/dimension"
)

// synthesize builds a composite identifier for a dimension that has no
// registered unit. The result is never added to the catalog.
//
// Shorthand factors are joined with "*" and the "/" appears only when
// there is a denominator, so momentum prints as "kg*m/s" rather than
// "kgm/s" and area as "m^2" rather than "m^2/". Every synthesized
// shorthand parses back to its dimension.
func synthesize(d dimension.Vector, lang Language) (Identifier, error) {
	p := lang.phrases()

	var (
		singularNum, pluralNum, singularDen []string
		shortNum, shortDen                  []string
	)

	for _, e := range d.Entries() {
		base, err := BySymbol(e.Base.Symbol(), lang)
		if err != nil {
			return Identifier{}, err
		}
		exp := e.Exponent
		if exp > 0 {
			singularNum = append(singularNum, p.power(base.Singular, exp))
			pluralNum = append(pluralNum, p.power(base.Plural, exp))
			shortNum = append(shortNum, shorthandPower(base.Shorthand, exp))
		} else {
			singularDen = append(singularDen, p.power(base.Singular, -exp))
			shortDen = append(shortDen, shorthandPower(base.Shorthand, -exp))
		}
	}

	singular := strings.Join(singularNum, p.times)
	plural := strings.Join(pluralNum, p.times)
	shorthand := strings.Join(shortNum, "*")

	if len(singularDen) > 0 {
		den := strings.Join(singularDen, p.times)
		singular += p.per + den
		plural += p.per + den
		shorthand += "/" + strings.Join(shortDen, "*")
	}

	return Identifier{
		Dim:       d,
		Symbol:    "",
		Shorthand: shorthand,
		Singular:  strings.TrimSpace(singular),
		Plural:    strings.TrimSpace(plural),
	}, nil
}

func shorthandPower(shorthand string, exp int) string {
	if exp == 1 {
		return shorthand
	}
	return shorthand + "^" + strconv.Itoa(exp)
}
