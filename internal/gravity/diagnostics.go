package gravity

import (
	"github.com/san-kum/gravsim/internal/dimension"
	"github.com/san-kum/gravsim/internal/quantity"
)

// TotalMomentum sums the momentum of all bodies. It is conserved by
// Advance up to rounding.
func (s *System) TotalMomentum() (quantity.Quantity, error) {
	if len(s.Bodies) == 0 {
		return quantity.MustParseVector("kg*m/s", 0, 0, 0, 0), nil
	}
	total := s.Bodies[0].Momentum
	for _, b := range s.Bodies[1:] {
		var err error
		if total, err = total.Add(b.Momentum); err != nil {
			return quantity.Quantity{}, err
		}
	}
	return total, nil
}

// KineticEnergy is Σ p²/2m.
func (s *System) KineticEnergy() (quantity.Quantity, error) {
	total := zeroEnergy()
	for _, b := range s.Bodies {
		p2, err := b.Momentum.Length().Pow(2)
		if err != nil {
			return quantity.Quantity{}, err
		}
		m2, err := b.Mass.Mul(quantity.New(dimension.Dimensionless, quantity.ScalarValue(2)))
		if err != nil {
			return quantity.Quantity{}, err
		}
		ke, err := p2.Div(m2)
		if err != nil {
			return quantity.Quantity{}, err
		}
		if total, err = total.Add(ke); err != nil {
			return quantity.Quantity{}, err
		}
	}
	return total, nil
}

// PotentialEnergy is Σ -G·m₁·m₂/r over all pairs.
func (s *System) PotentialEnergy() (quantity.Quantity, error) {
	total := zeroEnergy()
	for _, p := range s.Pairs() {
		r, err := s.Separation(p.I, p.J)
		if err != nil {
			return quantity.Quantity{}, err
		}
		if r.Magnitude() == 0 {
			return quantity.Quantity{}, &PairError{I: p.I, J: p.J, Wrapped: ErrCoincidentBodies}
		}
		u, err := s.G.Mul(s.Bodies[p.I].Mass)
		if err != nil {
			return quantity.Quantity{}, err
		}
		if u, err = u.Mul(s.Bodies[p.J].Mass); err != nil {
			return quantity.Quantity{}, err
		}
		if u, err = u.Div(r); err != nil {
			return quantity.Quantity{}, err
		}
		if total, err = total.Sub(u); err != nil {
			return quantity.Quantity{}, err
		}
	}
	return total, nil
}

// Energy is kinetic plus potential energy.
func (s *System) Energy() (quantity.Quantity, error) {
	ke, err := s.KineticEnergy()
	if err != nil {
		return quantity.Quantity{}, err
	}
	pe, err := s.PotentialEnergy()
	if err != nil {
		return quantity.Quantity{}, err
	}
	return ke.Add(pe)
}

// Separation is the scalar distance between bodies i and j.
func (s *System) Separation(i, j int) (quantity.Quantity, error) {
	d, err := s.Bodies[j].Position.Sub(s.Bodies[i].Position)
	if err != nil {
		return quantity.Quantity{}, &PairError{I: i, J: j, Wrapped: err}
	}
	return d.Length(), nil
}

func zeroEnergy() quantity.Quantity {
	return quantity.New(dimension.Energy, quantity.ScalarValue(0))
}
