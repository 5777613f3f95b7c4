package gravity

import (
	"context"
	"sync"
)

// Ensemble runs the same initial system under several run configurations
// in parallel. Build is called once per run so runs never share bodies.
type Ensemble struct {
	Build   func() (*System, error)
	Configs []RunConfig
}

// Run returns one result per config in order. The first error, in config
// order, is returned with no results.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(e.Configs))
	errs := make([]error, len(e.Configs))

	var wg sync.WaitGroup
	for i, cfg := range e.Configs {
		wg.Add(1)
		go func(idx int, cfg RunConfig) {
			defer wg.Done()

			sys, err := e.Build()
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = Run(ctx, sys, cfg)
		}(i, cfg)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
