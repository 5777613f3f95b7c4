package config

import "sort"

var Presets = map[string]*Config{
	"earth_moon": {
		Tick: "600s", Steps: 8064, Language: DefaultLanguage,
		Bodies: []BodyConfig{
			{
				Name: "earth", Color: "#4f9dff", Mass: "5.972e24kg", Radius: "6371km",
				Position: VectorConfig{Magnitude: 0, Direction: []float64{1, 0, 0}},
				Momentum: VectorConfig{Magnitude: 7.5035e25, Direction: []float64{0, -1, 0}},
			},
			{
				Name: "moon", Color: "#c8c8c8", Mass: "7.342e22kg", Radius: "1737km",
				Position: VectorConfig{Magnitude: 3.844e8, Direction: []float64{1, 0, 0}},
				Momentum: VectorConfig{Magnitude: 7.5035e25, Direction: []float64{0, 1, 0}},
			},
		},
	},
	"sun_earth": {
		Tick: "3600s", Steps: 17532, Language: DefaultLanguage,
		Bodies: []BodyConfig{
			{
				Name: "sun", Color: "#ffd24f", Mass: "1.989e30kg", Radius: "696340km",
				Position: VectorConfig{Magnitude: 0, Direction: []float64{1, 0, 0}},
				Momentum: VectorConfig{Magnitude: 1.7785e29, Direction: []float64{0, -1, 0}},
			},
			{
				Name: "earth", Color: "#4f9dff", Mass: "5.972e24kg", Radius: "6371km",
				Position: VectorConfig{Unit: "Gm", Magnitude: 149.6, Direction: []float64{1, 0, 0}},
				Momentum: VectorConfig{Magnitude: 1.7785e29, Direction: []float64{0, 1, 0}},
			},
		},
	},
	"binary": {
		Tick: "600s", Steps: 20000, Language: DefaultLanguage,
		Bodies: []BodyConfig{
			{
				Name: "alpha", Color: "#ff7f50", Mass: "1e30kg", Radius: "700Mm",
				Position: VectorConfig{Magnitude: 5e10, Direction: []float64{-1, 0, 0}},
				Momentum: VectorConfig{Magnitude: 1.8267e34, Direction: []float64{0, -1, 0}},
			},
			{
				Name: "beta", Color: "#7fb3ff", Mass: "1e30kg", Radius: "700Mm",
				Position: VectorConfig{Magnitude: 5e10, Direction: []float64{1, 0, 0}},
				Momentum: VectorConfig{Magnitude: 1.8267e34, Direction: []float64{0, 1, 0}},
			},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Bodies = make([]BodyConfig, len(cfg.Bodies))
	for i, b := range cfg.Bodies {
		b.Position.Direction = append([]float64(nil), b.Position.Direction...)
		b.Momentum.Direction = append([]float64(nil), b.Momentum.Direction...)
		c.Bodies[i] = b
	}
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
