package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/gravsim/internal/dimension"
	"github.com/san-kum/gravsim/internal/gravity"
	"github.com/san-kum/gravsim/internal/quantity"
)

// MinSamples is the shortest series DominantPeriod accepts.
const MinSamples = 8

var (
	ErrTooFewSamples = errors.New("analysis: too few samples")
	ErrNoOscillation = errors.New("analysis: series does not oscillate")
)

// PowerSpectrum returns the magnitudes of the first n/2 frequency bins of
// data after removing the mean and applying a Hann window.
func PowerSpectrum(data []float64) []float64 {
	n := len(data)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)

	windowed := make([]float64, n)
	for i, v := range data {
		w := 1.0
		if n > 1 {
			w = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		}
		windowed[i] = (v - mean) * w
	}

	spectrum := fft.FFTReal(windowed)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in units of dt, of the strongest
// frequency in samples. The peak bin is refined by parabolic
// interpolation over its neighbours.
func DominantPeriod(samples []float64, dt float64) (float64, error) {
	n := len(samples)
	if n < MinSamples {
		return 0, ErrTooFewSamples
	}

	ps := PowerSpectrum(samples)
	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if ps[peak] == 0 {
		return 0, ErrNoOscillation
	}

	k := float64(peak)
	if peak > 1 && peak < len(ps)-1 {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if den := a - 2*b + c; den != 0 {
			k += 0.5 * (a - c) / den
		}
	}
	return float64(n) * dt / k, nil
}

// OrbitalPeriod estimates the period of the first pair from the
// separation series of a run.
func OrbitalPeriod(res *gravity.Result) (quantity.Quantity, error) {
	if res == nil || len(res.Times) < 2 {
		return quantity.Quantity{}, ErrTooFewSamples
	}
	dt := res.Times[1] - res.Times[0]
	p, err := DominantPeriod(res.Separations, dt)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return quantity.New(dimension.Time, quantity.ScalarValue(p)), nil
}

// Apsides returns the closest and farthest separation of the first pair.
func Apsides(res *gravity.Result) (periapsis, apoapsis quantity.Quantity, err error) {
	if res == nil || len(res.Separations) == 0 {
		return quantity.Quantity{}, quantity.Quantity{}, ErrTooFewSamples
	}
	lo, hi := res.Separations[0], res.Separations[0]
	for _, s := range res.Separations[1:] {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	return quantity.New(dimension.Length, quantity.ScalarValue(lo)),
		quantity.New(dimension.Length, quantity.ScalarValue(hi)), nil
}
