package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/gravity"
	"github.com/san-kum/gravsim/internal/quantity"
	"github.com/san-kum/gravsim/internal/units"
)

const (
	DefaultTick     = "60s"
	DefaultSteps    = 1440
	DefaultLanguage = "en"
	DefaultPreset   = "earth_moon"
	DefaultRadius   = "1m"

	positionUnit = "m"
	momentumUnit = "kg*m/s"
)

type Config struct {
	Tick        string       `yaml:"tick"`
	Steps       int          `yaml:"steps"`
	Language    string       `yaml:"language"`
	StrictUnits bool         `yaml:"strict_units"`
	Bodies      []BodyConfig `yaml:"bodies"`
}

// BodyConfig describes one body. Scalars are quantity text such as
// "5.972e24kg"; vectors default to meters and kg*m/s when Unit is empty.
type BodyConfig struct {
	Name     string       `yaml:"name"`
	Color    string       `yaml:"color,omitempty"`
	Mass     string       `yaml:"mass"`
	Radius   string       `yaml:"radius,omitempty"`
	Position VectorConfig `yaml:"position"`
	Momentum VectorConfig `yaml:"momentum"`
}

type VectorConfig struct {
	Unit      string    `yaml:"unit,omitempty"`
	Magnitude float64   `yaml:"magnitude"`
	Direction []float64 `yaml:"direction,flow"`
}

func DefaultConfig() *Config {
	cfg := GetPreset(DefaultPreset)
	cfg.Tick = DefaultTick
	cfg.Steps = DefaultSteps
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{Tick: DefaultTick, Steps: DefaultSteps, Language: DefaultLanguage}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Parser() units.Parser {
	return units.Parser{Strict: c.StrictUnits}
}

func (c *Config) Lang() (units.Language, error) {
	if c.Language == "" {
		return units.English, nil
	}
	return units.ParseLanguage(c.Language)
}

// TickQuantity parses the tick text; it must be a time.
func (c *Config) TickQuantity() (quantity.Quantity, error) {
	dt, err := quantity.ParseTextWith(c.Parser(), c.Tick)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("tick %q: %w", c.Tick, err)
	}
	if err := body.CheckTick(dt); err != nil {
		return quantity.Quantity{}, fmt.Errorf("tick %q: %w", c.Tick, err)
	}
	return dt, nil
}

// Build creates the bodies and returns the system together with the tick.
func (c *Config) Build() (*gravity.System, quantity.Quantity, error) {
	dt, err := c.TickQuantity()
	if err != nil {
		return nil, quantity.Quantity{}, err
	}
	if c.Steps <= 0 {
		return nil, quantity.Quantity{}, fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if len(c.Bodies) == 0 {
		return nil, quantity.Quantity{}, gravity.ErrNoBodies
	}

	p := c.Parser()
	bodies := make([]*body.Body, 0, len(c.Bodies))
	for i, bc := range c.Bodies {
		b, err := bc.build(p)
		if err != nil {
			return nil, quantity.Quantity{}, fmt.Errorf("body %d (%s): %w", i, bc.Name, err)
		}
		bodies = append(bodies, b)
	}
	return gravity.New(bodies...), dt, nil
}

func (bc BodyConfig) build(p units.Parser) (*body.Body, error) {
	mass, err := quantity.ParseTextWith(p, bc.Mass)
	if err != nil {
		return nil, fmt.Errorf("mass: %w", err)
	}
	radiusText := bc.Radius
	if radiusText == "" {
		radiusText = DefaultRadius
	}
	radius, err := quantity.ParseTextWith(p, radiusText)
	if err != nil {
		return nil, fmt.Errorf("radius: %w", err)
	}
	pos, err := bc.Position.quantity(p, positionUnit)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	mom, err := bc.Momentum.quantity(p, momentumUnit)
	if err != nil {
		return nil, fmt.Errorf("momentum: %w", err)
	}

	color := bc.Color
	if color == "" {
		color = "#ffffff"
	}
	return body.NewPlanet(bc.Name, pos, mass, radius, color, mom)
}

func (v VectorConfig) quantity(p units.Parser, defaultUnit string) (quantity.Quantity, error) {
	unit := v.Unit
	if unit == "" {
		unit = defaultUnit
	}
	dir := v.Direction
	if len(dir) == 0 {
		dir = []float64{1, 0, 0}
	}
	return quantity.ParseWith(p, unit, quantity.VectorValue(quantity.NewVector(v.Magnitude, dir...)))
}
