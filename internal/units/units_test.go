package units

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/dimension"
)

func TestIdentifyRegistered(t *testing.T) {
	tests := []struct {
		dim       dimension.Vector
		shorthand string
		singular  string
		plural    string
	}{
		{dimension.Length, "m", "meter", "meters"},
		{dimension.Mass, "kg", "kilogram", "kilograms"},
		{dimension.Force, "N", "newton", "newtons"},
		{dimension.Energy, "J", "joule", "joules"},
		{dimension.Luminosity, "cd", "candela", "candelas"},
		{dimension.Vector{dimension.TimeBase: -1}, "Hz", "hertz", "hertz"},
	}

	for _, tt := range tests {
		t.Run(tt.shorthand, func(t *testing.T) {
			id, err := Identify(tt.dim, English)
			if err != nil {
				t.Fatalf("Identify failed: %v", err)
			}
			if id.Shorthand != tt.shorthand {
				t.Errorf("Shorthand = %q, want %q", id.Shorthand, tt.shorthand)
			}
			if id.Singular != tt.singular || id.Plural != tt.plural {
				t.Errorf("names = %q/%q, want %q/%q", id.Singular, id.Plural, tt.singular, tt.plural)
			}
		})
	}
}

func TestIdentifySynthesized(t *testing.T) {
	tests := []struct {
		name      string
		dim       dimension.Vector
		lang      Language
		shorthand string
		singular  string
		plural    string
	}{
		{
			name:      "velocity",
			dim:       dimension.Velocity,
			lang:      English,
			shorthand: "m/s",
			singular:  "meter per second",
			plural:    "meters per second",
		},
		{
			name:      "momentum",
			dim:       dimension.Momentum,
			lang:      English,
			shorthand: "kg*m/s",
			singular:  "kilogram times meter per second",
			plural:    "kilograms times meters per second",
		},
		{
			name:      "gravitational constant",
			dim:       dimension.Vector{dimension.LengthBase: 3, dimension.MassBase: -1, dimension.TimeBase: -2},
			lang:      English,
			shorthand: "m^3/kg*s^2",
			singular:  "meter cubed per kilogram times second squared",
			plural:    "meters cubed per kilogram times second squared",
		},
		{
			name:      "fourth power",
			dim:       dimension.Vector{dimension.LengthBase: 4},
			lang:      English,
			shorthand: "m^4",
			singular:  "meter to the power of 4",
			plural:    "meters to the power of 4",
		},
		{
			name:      "german acceleration",
			dim:       dimension.Vector{dimension.LengthBase: 1, dimension.TimeBase: -2},
			lang:      German,
			shorthand: "m/s^2",
			singular:  "Meter pro Quadratsekunde",
			plural:    "Meter pro Quadratsekunde",
		},
		{
			name:      "german volume",
			dim:       dimension.Vector{dimension.LengthBase: 3},
			lang:      German,
			shorthand: "m^3",
			singular:  "Kubikmeter",
			plural:    "Kubikmeter",
		},
		{
			name:      "inverse only",
			dim:       dimension.Vector{dimension.TemperatureBase: -1},
			lang:      English,
			shorthand: "/K",
			singular:  "per kelvin",
			plural:    "per kelvin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Identify(tt.dim, tt.lang)
			if err != nil {
				t.Fatalf("Identify failed: %v", err)
			}
			if id.Shorthand != tt.shorthand {
				t.Errorf("Shorthand = %q, want %q", id.Shorthand, tt.shorthand)
			}
			if id.Singular != tt.singular {
				t.Errorf("Singular = %q, want %q", id.Singular, tt.singular)
			}
			if id.Plural != tt.plural {
				t.Errorf("Plural = %q, want %q", id.Plural, tt.plural)
			}
		})
	}
}

func TestIdentifyDimensionless(t *testing.T) {
	id, err := Identify(dimension.Dimensionless, English)
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	if id.Shorthand != "" || id.Singular != "" || id.Plural != "" {
		t.Errorf("expected empty unitless identifier, got %+v", id)
	}
}

func TestSynthesizedShorthandReparses(t *testing.T) {
	dims := []dimension.Vector{
		dimension.Momentum,
		dimension.AngularMomentum,
		dimension.Velocity,
		{dimension.LengthBase: 3, dimension.MassBase: -1, dimension.TimeBase: -2},
		{dimension.CurrentBase: 3, dimension.AmountBase: -2},
	}
	for _, d := range dims {
		id, err := Identify(d, English)
		if err != nil {
			t.Fatalf("Identify(%v) failed: %v", d, err)
		}
		r, err := Parser{Strict: true}.Parse(id.Shorthand)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", id.Shorthand, err)
		}
		if r.Dim != d {
			t.Errorf("Parse(%q).Dim = %v, want %v", id.Shorthand, r.Dim, d)
		}
	}
}

func TestBySymbol(t *testing.T) {
	id, err := BySymbol("L", English)
	if err != nil {
		t.Fatalf("BySymbol failed: %v", err)
	}
	if id.Shorthand != "m" {
		t.Errorf("BySymbol(L).Shorthand = %q, want m", id.Shorthand)
	}

	_, err = BySymbol("X", English)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("BySymbol(X) err = %v, want ErrUnknownSymbol", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr  string
		dim   dimension.Vector
		scale float64
	}{
		{"kg*m/s^2", dimension.Force, 1},
		{"N", dimension.Force, 1},
		{"km", dimension.Length, 1e3},
		{"ms", dimension.Time, 1e-3},
		{"mm", dimension.Length, 1e-3},
		{"km^2", dimension.Vector{dimension.LengthBase: 2}, 1e6},
		{"s^-1", dimension.Vector{dimension.TimeBase: -1}, 1},
		{"/s", dimension.Vector{dimension.TimeBase: -1}, 1},
		{"mol", dimension.Amount, 1},
		{"mmol", dimension.Amount, 1e-3},
		{"kPa", dimension.Vector{dimension.MassBase: 1, dimension.LengthBase: -1, dimension.TimeBase: -2}, 1e3},
		{"lm", dimension.Luminosity, 1},
		{"µA", dimension.Current, 1e-6},
		{"MΩ", dimension.Vector{dimension.MassBase: 1, dimension.LengthBase: 2, dimension.TimeBase: -3, dimension.CurrentBase: -2}, 1e6},
		{"daN", dimension.Force, 10},
		{"", dimension.Dimensionless, 1},
		{" kg * m / s ^ 2 ", dimension.Force, 1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			r, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if r.Dim != tt.dim {
				t.Errorf("Dim = %v, want %v", r.Dim, tt.dim)
			}
			if math.Abs(r.Scale-tt.scale) > 1e-12*math.Abs(tt.scale) {
				t.Errorf("Scale = %g, want %g", r.Scale, tt.scale)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		expr string
		want error
	}{
		{"m/s/s", ErrMalformedExpression},
		{"m/", ErrMalformedExpression},
		{"m^2^3", ErrMalformedExpression},
		{"m^x", ErrMalformedExpression},
		{"qm", ErrUnknownModifier},
		{"xxN", ErrUnknownModifier},
		{"m^99999999999999", ErrMalformedExpression},
		{"m^65", ErrMalformedExpression},
		{"m^40*m^40", ErrMalformedExpression},
		{"m^40/m^-40", ErrMalformedExpression},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Parse(tt.expr)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) err = %v, want %v", tt.expr, err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestParsePermissiveFallback(t *testing.T) {
	r, err := Parse("xk g")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Dim != dimension.Dimensionless || r.Scale != 1 {
		t.Errorf("Parse(xk g) = %+v, want dimensionless scale 1", r)
	}

	_, err = Parser{Strict: true}.Parse("xk g")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("strict Parse(xk g) err = %v, want ErrUnknownUnit", err)
	}
}

func TestParseQuantityText(t *testing.T) {
	tests := []struct {
		text  string
		num   float64
		dim   dimension.Vector
		scale float64
	}{
		{"5.972e24kg", 5.972e24, dimension.Mass, 1},
		{"3.844e8 m", 3.844e8, dimension.Length, 1},
		{"-2,5km", -2.5, dimension.Length, 1e3},
		{"60s", 60, dimension.Time, 1},
		{"7", 7, dimension.Dimensionless, 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			num, r, err := ParseQuantityText(tt.text)
			if err != nil {
				t.Fatalf("ParseQuantityText failed: %v", err)
			}
			if num != tt.num {
				t.Errorf("number = %g, want %g", num, tt.num)
			}
			if r.Dim != tt.dim || r.Scale != tt.scale {
				t.Errorf("unit = %+v, want %v scale %g", r, tt.dim, tt.scale)
			}
		})
	}
}

func TestParseQuantityTextErrors(t *testing.T) {
	tests := []struct {
		text string
		want error
	}{
		{"kg", ErrInvalidNumber},
		{"1e-e5m", ErrInvalidNumber},
		{"5/", ErrMalformedExpression},
		{"5/m/s", ErrMalformedExpression},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, _, err := ParseQuantityText(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseQuantityText(%q) err = %v, want %v", tt.text, err, tt.want)
			}
		})
	}
}

func TestParseQuantityTextErrorNamesInput(t *testing.T) {
	_, _, err := ParseQuantityText("5/")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Expr != "5/" {
		t.Errorf("Expr = %q, want %q", pe.Expr, "5/")
	}
	if got, want := err.Error(), `units: malformed expression in "5/"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	_, _, err = ParseQuantityText("3 qm")
	if !errors.As(err, &pe) || pe.Expr != "3 qm" || pe.Factor != "qm" {
		t.Errorf("err = %#v, want Expr %q Factor %q", err, "3 qm", "qm")
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		err  bool
	}{
		{"en", English, false},
		{"", English, false},
		{"DE", German, false},
		{"deutsch", German, false},
		{"fr", English, true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseLanguage(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
