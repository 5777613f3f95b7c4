// Package body models a rigid spherical body whose state is held entirely
// in dimensioned quantities.
package body

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/dimension"
	"github.com/san-kum/gravsim/internal/quantity"
)

// ErrUnitMismatch is returned when a field or argument has the wrong dimension.
var ErrUnitMismatch = quantity.ErrUnitMismatch

// ErrVariantMismatch is returned when a field or argument has the wrong value kind.
var ErrVariantMismatch = quantity.ErrVariantMismatch

// ErrLengthMismatch is returned when a vector field does not have Axes components.
var ErrLengthMismatch = quantity.ErrLengthMismatch

// Axes is the number of direction components of every vector field.
const Axes = 3

// FieldError reports which body field failed validation.
type FieldError struct {
	Field   string
	Got     quantity.Quantity
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("body: %s [%v %v]: %v", e.Field, e.Got.Dim, e.Got.Kind(), e.Wrapped)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}

// Body is a simulated object. Vector fields have Axes-component directions.
type Body struct {
	Name  string
	Color string

	Position        quantity.Quantity
	Rotation        quantity.Quantity
	Momentum        quantity.Quantity
	AngularMomentum quantity.Quantity

	Mass        quantity.Quantity
	Radius      quantity.Quantity
	Temperature quantity.Quantity
	Charge      quantity.Quantity
}

type Option func(*Body)

func WithName(name string) Option   { return func(b *Body) { b.Name = name } }
func WithColor(color string) Option { return func(b *Body) { b.Color = color } }

func WithPosition(q quantity.Quantity) Option        { return func(b *Body) { b.Position = q } }
func WithRotation(q quantity.Quantity) Option        { return func(b *Body) { b.Rotation = q } }
func WithMomentum(q quantity.Quantity) Option        { return func(b *Body) { b.Momentum = q } }
func WithAngularMomentum(q quantity.Quantity) Option { return func(b *Body) { b.AngularMomentum = q } }
func WithRadius(q quantity.Quantity) Option          { return func(b *Body) { b.Radius = q } }
func WithTemperature(q quantity.Quantity) Option     { return func(b *Body) { b.Temperature = q } }
func WithCharge(q quantity.Quantity) Option          { return func(b *Body) { b.Charge = q } }

// New creates a body of the given mass. Unset fields take defaults: 10 m
// from the origin along (1,1,1), at rest, unrotated, 1 m radius, 298.15 K
// and uncharged.
func New(mass quantity.Quantity, opts ...Option) (*Body, error) {
	b := &Body{
		Color:           "#ffffff",
		Position:        quantity.MustParseVector("m", 10, 1, 1, 1),
		Rotation:        quantity.MustParseVector("", 0, 1, 1, 1),
		Momentum:        quantity.MustParseVector("kg*m/s", 0, 1, 1, 1),
		AngularMomentum: quantity.MustParseVector("kg*m^2/s", 0, 1, 1, 1),
		Mass:            mass,
		Radius:          quantity.MustParseScalar("m", 1),
		Temperature:     quantity.MustParseScalar("K", 273.15+25),
		Charge:          quantity.MustParseScalar("C", 0),
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

var fields = []struct {
	name string
	get  func(*Body) quantity.Quantity
	dim  dimension.Vector
	kind quantity.Kind
}{
	{"position", func(b *Body) quantity.Quantity { return b.Position }, dimension.Length, quantity.KindVector},
	{"rotation", func(b *Body) quantity.Quantity { return b.Rotation }, dimension.Dimensionless, quantity.KindVector},
	{"momentum", func(b *Body) quantity.Quantity { return b.Momentum }, dimension.Momentum, quantity.KindVector},
	{"angular momentum", func(b *Body) quantity.Quantity { return b.AngularMomentum }, dimension.AngularMomentum, quantity.KindVector},
	{"mass", func(b *Body) quantity.Quantity { return b.Mass }, dimension.Mass, quantity.KindScalar},
	{"radius", func(b *Body) quantity.Quantity { return b.Radius }, dimension.Length, quantity.KindScalar},
	{"temperature", func(b *Body) quantity.Quantity { return b.Temperature }, dimension.Temperature, quantity.KindScalar},
	{"charge", func(b *Body) quantity.Quantity { return b.Charge }, dimension.Charge, quantity.KindScalar},
}

// Validate checks the dimension and value kind of every field.
func (b *Body) Validate() error {
	for _, f := range fields {
		if err := expect(f.name, f.get(b), f.dim, f.kind); err != nil {
			return err
		}
	}
	return nil
}

func expect(field string, q quantity.Quantity, dim dimension.Vector, kind quantity.Kind) error {
	if !q.Is(dim) {
		return &FieldError{Field: field, Got: q, Wrapped: ErrUnitMismatch}
	}
	if q.Kind() != kind {
		return &FieldError{Field: field, Got: q, Wrapped: ErrVariantMismatch}
	}
	if v, ok := q.Value.Vector(); ok && len(v.Direction) != Axes {
		return &FieldError{Field: field, Got: q, Wrapped: ErrLengthMismatch}
	}
	return nil
}

// CheckTick reports whether dt is a scalar time.
func CheckTick(dt quantity.Quantity) error {
	return expect("tick duration", dt, dimension.Time, quantity.KindScalar)
}

// ApplyForce adds force*dt to the momentum. The force must be a vector
// with the dimension of force.
func (b *Body) ApplyForce(force, dt quantity.Quantity) error {
	if err := CheckTick(dt); err != nil {
		return err
	}
	if err := expect("force", force, dimension.Force, quantity.KindVector); err != nil {
		return err
	}
	impulse, err := force.Mul(dt)
	if err != nil {
		return err
	}
	p, err := b.Momentum.Add(impulse)
	if err != nil {
		return err
	}
	b.Momentum = p
	return nil
}

// Tick advances position by momentum*dt/mass and rotation by
// angularMomentum*dt/I, with I the moment of inertia of a solid sphere.
// This is explicit Euler integration; energy drifts over long runs.
func (b *Body) Tick(dt quantity.Quantity) error {
	if err := CheckTick(dt); err != nil {
		return err
	}

	dx, err := chain(b.Momentum, mul(dt), div(b.Mass))
	if err != nil {
		return fmt.Errorf("body %s position: %w", b.Name, err)
	}
	pos, err := b.Position.Add(dx)
	if err != nil {
		return fmt.Errorf("body %s position: %w", b.Name, err)
	}

	rot := b.Rotation
	inertia, err := b.MomentOfInertia()
	if err != nil {
		return err
	}
	if inertia.Magnitude() != 0 {
		dr, err := chain(b.AngularMomentum, mul(dt), div(inertia))
		if err != nil {
			return fmt.Errorf("body %s rotation: %w", b.Name, err)
		}
		if rot, err = rot.Add(dr); err != nil {
			return fmt.Errorf("body %s rotation: %w", b.Name, err)
		}
	}

	b.Position = pos
	b.Rotation = rot
	return nil
}

// MomentOfInertia is 2/5·m·r² for a solid sphere.
func (b *Body) MomentOfInertia() (quantity.Quantity, error) {
	return chain(quantity.MustParseScalar("", 0.4), mul(b.Mass), mul(b.Radius), mul(b.Radius))
}

// Velocity is momentum divided by mass.
func (b *Body) Velocity() (quantity.Quantity, error) {
	return b.Momentum.Div(b.Mass)
}

// Axis returns the position component along axis i in meters, for
// renderers positioning a proxy of the body.
func (b *Body) Axis(i int) float64 {
	return b.Position.Axis(i)
}

// Projection returns the position as a 3-vector in meters.
func (b *Body) Projection() r3.Vec {
	return r3.Vec{X: b.Axis(0), Y: b.Axis(1), Z: b.Axis(2)}
}

type step func(quantity.Quantity) (quantity.Quantity, error)

func mul(o quantity.Quantity) step {
	return func(q quantity.Quantity) (quantity.Quantity, error) { return q.Mul(o) }
}

func div(o quantity.Quantity) step {
	return func(q quantity.Quantity) (quantity.Quantity, error) { return q.Div(o) }
}

func chain(q quantity.Quantity, steps ...step) (quantity.Quantity, error) {
	var err error
	for _, s := range steps {
		if q, err = s(q); err != nil {
			return quantity.Quantity{}, err
		}
	}
	return q, nil
}
