package gravity

import (
	"testing"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/quantity"
)

func benchSystem(b *testing.B, n int) *System {
	bodies := make([]*body.Body, n)
	for i := range bodies {
		bd, err := body.New(quantity.MustParseScalar("kg", 1e20),
			body.WithPosition(quantity.MustParseVector("km", float64(i+1)*1000, 1, float64(i%3), 0)))
		if err != nil {
			b.Fatal(err)
		}
		bodies[i] = bd
	}
	return New(bodies...)
}

func BenchmarkAdvance2(b *testing.B) {
	sys := benchSystem(b, 2)
	dt := quantity.MustParseScalar("s", 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sys.Advance(dt)
	}
}

func BenchmarkAdvance16(b *testing.B) {
	sys := benchSystem(b, 16)
	dt := quantity.MustParseScalar("s", 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sys.Advance(dt)
	}
}
