package gravity

import (
	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/dimension"
	"github.com/san-kum/gravsim/internal/quantity"
)

// G is the Newtonian constant of gravitation.
var G = quantity.MustParseScalar("m^3/kg*s^2", 6.67430e-11)

// Pair indexes two distinct bodies, I < J.
type Pair struct {
	I, J int
}

// Pairs lists every unordered pair of n items in row order:
// (0,1), (0,2), ..., (1,2), ...
func Pairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}
	return out
}

// Force returns the gravitational force exerted on a by b, pointing from a
// towards b with magnitude G·m₁·m₂/r².
func Force(a, b *body.Body) (quantity.Quantity, error) {
	return force(G, a, b)
}

func force(g quantity.Quantity, a, b *body.Body) (quantity.Quantity, error) {
	d, err := b.Position.Sub(a.Position)
	if err != nil {
		return quantity.Quantity{}, err
	}
	r := d.Length()
	if r.Magnitude() == 0 {
		return quantity.Quantity{}, ErrCoincidentBodies
	}

	r2, err := r.Pow(2)
	if err != nil {
		return quantity.Quantity{}, err
	}
	mag, err := g.Mul(a.Mass)
	if err != nil {
		return quantity.Quantity{}, err
	}
	if mag, err = mag.Mul(b.Mass); err != nil {
		return quantity.Quantity{}, err
	}
	if mag, err = mag.Div(r2); err != nil {
		return quantity.Quantity{}, err
	}

	return d.UnitQuality().Mul(mag)
}

// System owns a set of bodies and the gravitational constant acting on them.
type System struct {
	Bodies  []*body.Body
	G       quantity.Quantity
	Elapsed quantity.Quantity
}

func New(bodies ...*body.Body) *System {
	return &System{
		Bodies:  bodies,
		G:       G,
		Elapsed: quantity.New(dimension.Time, quantity.ScalarValue(0)),
	}
}

func (s *System) Pairs() []Pair { return Pairs(len(s.Bodies)) }

// Force returns the force on body p.I from body p.J.
func (s *System) Force(p Pair) (quantity.Quantity, error) {
	f, err := force(s.G, s.Bodies[p.I], s.Bodies[p.J])
	if err != nil {
		return quantity.Quantity{}, &PairError{I: p.I, J: p.J, Wrapped: err}
	}
	return f, nil
}

// Advance moves the system forward by dt. All pair forces are evaluated
// from the current positions before any body changes; if one of them fails
// the system is left untouched.
func (s *System) Advance(dt quantity.Quantity) error {
	if err := body.CheckTick(dt); err != nil {
		return err
	}

	pairs := s.Pairs()
	forces := make([]quantity.Quantity, len(pairs))
	for k, p := range pairs {
		f, err := s.Force(p)
		if err != nil {
			return err
		}
		forces[k] = f
	}

	saved := s.snapshot()

	for k, p := range pairs {
		if err := s.Bodies[p.I].ApplyForce(forces[k], dt); err != nil {
			s.restore(saved)
			return &PairError{I: p.I, J: p.J, Wrapped: err}
		}
		if err := s.Bodies[p.J].ApplyForce(forces[k].Neg(), dt); err != nil {
			s.restore(saved)
			return &PairError{I: p.I, J: p.J, Wrapped: err}
		}
	}

	for _, b := range s.Bodies {
		if err := b.Tick(dt); err != nil {
			s.restore(saved)
			return err
		}
	}

	elapsed, err := s.Elapsed.Add(dt)
	if err != nil {
		s.restore(saved)
		return err
	}
	s.Elapsed = elapsed
	return nil
}

// Quantities are immutable values, so a shallow copy of each body is
// enough to roll a failed step back.
func (s *System) snapshot() []body.Body {
	saved := make([]body.Body, len(s.Bodies))
	for i, b := range s.Bodies {
		saved[i] = *b
	}
	return saved
}

func (s *System) restore(saved []body.Body) {
	for i, b := range s.Bodies {
		*b = saved[i]
	}
}
