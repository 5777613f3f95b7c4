package gravity

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/quantity"
)

// Observer is called after every completed step.
type Observer interface {
	OnStep(step int, sys *System)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(step int, sys *System)

func (f ObserverFunc) OnStep(step int, sys *System) { f(step, sys) }

type RunConfig struct {
	Tick  quantity.Quantity
	Steps int
}

// Result holds per-step series in SI base units. Index 0 is the state
// before the first step.
type Result struct {
	Times       []float64
	Energies    []float64
	Separations []float64
	EnergyDrift float64
	StepsTaken  int
}

// Run advances sys cfg.Steps times. The context is checked before every
// step; on cancellation the partial result is returned with ctx.Err().
// Separations track the first pair and stay empty for a single body.
func Run(ctx context.Context, sys *System, cfg RunConfig, observers ...Observer) (*Result, error) {
	if err := validateRunConfig(sys, cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Times:       make([]float64, 0, cfg.Steps+1),
		Energies:    make([]float64, 0, cfg.Steps+1),
		Separations: make([]float64, 0, cfg.Steps+1),
	}
	if err := result.record(sys); err != nil {
		return nil, err
	}
	initialEnergy := result.Energies[0]

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := sys.Advance(cfg.Tick); err != nil {
			return result, fmt.Errorf("step %d: %w", i, err)
		}
		result.StepsTaken++

		if err := result.record(sys); err != nil {
			return result, fmt.Errorf("step %d: %w", i, err)
		}
		for _, obs := range observers {
			obs.OnStep(i, sys)
		}
	}

	finalEnergy := result.Energies[len(result.Energies)-1]
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}
	return result, nil
}

func validateRunConfig(sys *System, cfg RunConfig) error {
	if sys == nil || len(sys.Bodies) == 0 {
		return ErrNoBodies
	}
	if err := body.CheckTick(cfg.Tick); err != nil {
		return err
	}
	if cfg.Tick.Magnitude() <= 0 {
		return fmt.Errorf("tick must be positive, got %v", cfg.Tick)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	return nil
}

func (r *Result) record(sys *System) error {
	e, err := sys.Energy()
	if err != nil {
		return err
	}
	r.Times = append(r.Times, sys.Elapsed.Magnitude())
	r.Energies = append(r.Energies, e.Magnitude())

	if len(sys.Bodies) >= 2 {
		d, err := sys.Separation(0, 1)
		if err != nil {
			return err
		}
		r.Separations = append(r.Separations, d.Magnitude())
	}
	return nil
}

// Verbose returns an observer that writes, for every pair, the inputs and
// magnitude of the gravitational force after each step.
func Verbose(w io.Writer) Observer {
	return ObserverFunc(func(step int, sys *System) {
		for _, p := range sys.Pairs() {
			a, b := sys.Bodies[p.I], sys.Bodies[p.J]
			r, err := sys.Separation(p.I, p.J)
			if err != nil {
				fmt.Fprintf(w, "step %d %s-%s: %v\n", step, a.Name, b.Name, err)
				continue
			}
			f, err := sys.Force(p)
			if err != nil {
				fmt.Fprintf(w, "step %d %s-%s: %v\n", step, a.Name, b.Name, err)
				continue
			}
			fmt.Fprintf(w, "step %d %s-%s: G=%g m1=%g m2=%g r=%g |F|=%g\n",
				step, a.Name, b.Name,
				sys.G.Magnitude(), a.Mass.Magnitude(), b.Mass.Magnitude(),
				r.Magnitude(), f.Length().Magnitude())
		}
	})
}
