package quantity

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/units"
)

// Format renders q as "<magnitude> <unit name> = <magnitude> <shorthand>".
// The singular name is used exactly when |magnitude| == 1.
func Format(q Quantity, lang units.Language) (string, error) {
	id, err := units.Identify(q.Dim, lang)
	if err != nil {
		return "", err
	}
	m := q.Magnitude()
	s := formatFloat(m)
	return fmt.Sprintf("%s %s = %s %s", s, id.Name(math.Abs(m) == 1), s, id.Shorthand), nil
}

// String formats q in English.
func (q Quantity) String() string {
	s, err := Format(q, units.English)
	if err != nil {
		return fmt.Sprintf("%v [%v]", q.Value, q.Dim)
	}
	return s
}
