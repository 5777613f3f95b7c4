// Package analysis extracts orbital characteristics from a gravity run.
//
//   - [PowerSpectrum]: windowed magnitude spectrum of a sampled series
//   - [DominantPeriod]: period of the strongest oscillation in a series
//   - [OrbitalPeriod]: period of the first pair's separation in a [gravity.Result]
//   - [Apsides]: closest and farthest approach of the first pair
//   - [Trajectory]: observer recording body positions for plotting
//
// # Orbital Period
//
// The separation of a bound pair oscillates once per orbit, so the
// strongest non-zero frequency of that series gives the period:
//
//	res, _ := gravity.Run(ctx, sys, cfg)
//	period, err := analysis.OrbitalPeriod(res)
package analysis
