package body

import (
	"github.com/san-kum/gravsim/internal/dimension"
	"github.com/san-kum/gravsim/internal/quantity"
)

// NewPlanet builds a body from renderer-facing arguments, checking that
// position and momentum are vectors of length and momentum, and mass and
// radius are scalars of mass and length.
func NewPlanet(name string, position, mass, radius quantity.Quantity, color string, momentum quantity.Quantity) (*Body, error) {
	checks := []struct {
		field string
		q     quantity.Quantity
		dim   dimension.Vector
		kind  quantity.Kind
	}{
		{"position", position, dimension.Length, quantity.KindVector},
		{"mass", mass, dimension.Mass, quantity.KindScalar},
		{"radius", radius, dimension.Length, quantity.KindScalar},
		{"momentum", momentum, dimension.Momentum, quantity.KindVector},
	}
	for _, c := range checks {
		if err := expect(c.field, c.q, c.dim, c.kind); err != nil {
			return nil, err
		}
	}

	return New(mass,
		WithName(name),
		WithColor(color),
		WithPosition(position),
		WithRadius(radius),
		WithMomentum(momentum),
	)
}
