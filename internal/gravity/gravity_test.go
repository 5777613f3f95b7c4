package gravity_test

import (
	"bytes"
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/dimension"
	"github.com/san-kum/gravsim/internal/gravity"
	"github.com/san-kum/gravsim/internal/quantity"
)

func mustBody(name, mass string, x float64) *body.Body {
	m, err := quantity.ParseText(mass)
	Expect(err).NotTo(HaveOccurred())
	b, err := body.New(m,
		body.WithName(name),
		body.WithPosition(quantity.MustParseVector("m", x, 1, 0, 0)),
	)
	Expect(err).NotTo(HaveOccurred())
	return b
}

var _ = Describe("Pairs", func() {
	It("lists every unordered pair once in row order", func() {
		Expect(gravity.Pairs(3)).To(Equal([]gravity.Pair{{I: 0, J: 1}, {I: 0, J: 2}, {I: 1, J: 2}}))
	})

	It("is empty below two bodies", func() {
		Expect(gravity.Pairs(0)).To(BeEmpty())
		Expect(gravity.Pairs(1)).To(BeEmpty())
	})
})

var _ = Describe("System", func() {
	var (
		earth, moon *body.Body
		sys         *gravity.System
		second      quantity.Quantity
	)

	BeforeEach(func() {
		earth = mustBody("earth", "5.972e24kg", 0)
		moon = mustBody("moon", "7.342e22kg", 3.844e8)
		sys = gravity.New(earth, moon)
		second = quantity.MustParseScalar("s", 1)
	})

	Describe("Force", func() {
		It("has the dimension of force and points at the other body", func() {
			f, err := gravity.Force(moon, earth)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Is(dimension.Force)).To(BeTrue())
			Expect(f.Axis(0)).To(BeNumerically("<", 0))

			want := 6.67430e-11 * 5.972e24 * 7.342e22 / (3.844e8 * 3.844e8)
			Expect(f.Length().Magnitude()).To(BeNumerically("~", want, want*1e-12))
		})

		It("rejects coincident bodies", func() {
			twin := mustBody("twin", "1kg", 0)
			_, err := gravity.Force(earth, twin)
			Expect(err).To(MatchError(gravity.ErrCoincidentBodies))
		})
	})

	Describe("Advance", func() {
		It("pulls the moon towards the earth and obeys the third law", func() {
			Expect(sys.Advance(second)).To(Succeed())

			Expect(moon.Momentum.Axis(0)).To(BeNumerically("<", 0))
			Expect(earth.Momentum.Axis(0)).To(BeNumerically(">", 0))
			Expect(earth.Momentum.Axis(0)).To(Equal(-moon.Momentum.Axis(0)))

			total, err := sys.TotalMomentum()
			Expect(err).NotTo(HaveOccurred())
			Expect(total.Length().Magnitude()).To(BeNumerically("~", 0, 1e-3))
		})

		It("moves the moon closer", func() {
			before, err := sys.Separation(0, 1)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 10; i++ {
				Expect(sys.Advance(quantity.MustParseScalar("s", 60))).To(Succeed())
			}

			after, err := sys.Separation(0, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.Magnitude()).To(BeNumerically("<", before.Magnitude()))
			Expect(sys.Elapsed.Magnitude()).To(BeNumerically("~", 600, 1e-9))
		})

		It("leaves every body untouched when a pair coincides", func() {
			twin := mustBody("twin", "1kg", 3.844e8)
			sys = gravity.New(earth, moon, twin)

			err := sys.Advance(second)
			Expect(err).To(MatchError(gravity.ErrCoincidentBodies))

			var pairErr *gravity.PairError
			Expect(err).To(BeAssignableToTypeOf(pairErr))
			Expect(earth.Momentum.Magnitude()).To(BeZero())
			Expect(moon.Momentum.Magnitude()).To(BeZero())
		})

		It("rolls back every body when a later body fails to update", func() {
			moon.Momentum = quantity.MustParseVector("kg*m/s", 0, 0, 1)
			earthBefore, moonBefore := *earth, *moon

			err := sys.Advance(second)
			Expect(err).To(MatchError(quantity.ErrLengthMismatch))
			Expect(*earth).To(Equal(earthBefore))
			Expect(*moon).To(Equal(moonBefore))
			Expect(sys.Elapsed.Magnitude()).To(BeZero())
		})

		It("rejects a tick that is not a time", func() {
			err := sys.Advance(quantity.MustParseScalar("m", 1))
			Expect(err).To(MatchError(quantity.ErrUnitMismatch))
		})
	})

	Describe("Energy", func() {
		It("is negative for a bound pair at rest", func() {
			e, err := sys.Energy()
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Is(dimension.Energy)).To(BeTrue())

			want := -6.67430e-11 * 5.972e24 * 7.342e22 / 3.844e8
			Expect(e.Magnitude()).To(BeNumerically("~", want, math.Abs(want)*1e-12))
		})

		It("counts kinetic energy as p²/2m", func() {
			b, err := body.New(quantity.MustParseScalar("kg", 2),
				body.WithMomentum(quantity.MustParseVector("kg*m/s", 4, 1, 0, 0)))
			Expect(err).NotTo(HaveOccurred())

			ke, err := gravity.New(b).KineticEnergy()
			Expect(err).NotTo(HaveOccurred())
			Expect(ke.Magnitude()).To(BeNumerically("~", 4, 1e-12))
		})
	})

	Describe("Run", func() {
		It("records a series per step and reports drift", func() {
			steps := 0
			count := gravity.ObserverFunc(func(int, *gravity.System) { steps++ })

			res, err := gravity.Run(context.Background(), sys, gravity.RunConfig{
				Tick:  quantity.MustParseScalar("s", 60),
				Steps: 20,
			}, count)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.StepsTaken).To(Equal(20))
			Expect(steps).To(Equal(20))
			Expect(res.Energies).To(HaveLen(21))
			Expect(res.Separations).To(HaveLen(21))
			Expect(res.Times[20]).To(BeNumerically("~", 1200, 1e-9))
			Expect(res.EnergyDrift).To(BeNumerically(">=", 0))
		})

		It("stops on a cancelled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			res, err := gravity.Run(ctx, sys, gravity.RunConfig{Tick: second, Steps: 5})
			Expect(err).To(MatchError(context.Canceled))
			Expect(res.StepsTaken).To(BeZero())
		})

		It("validates its configuration", func() {
			_, err := gravity.Run(context.Background(), gravity.New(), gravity.RunConfig{Tick: second, Steps: 1})
			Expect(err).To(MatchError(gravity.ErrNoBodies))

			_, err = gravity.Run(context.Background(), sys, gravity.RunConfig{Tick: second})
			Expect(err).To(HaveOccurred())

			_, err = gravity.Run(context.Background(), sys, gravity.RunConfig{Tick: quantity.MustParseScalar("s", -1), Steps: 1})
			Expect(err).To(HaveOccurred())
		})

		It("prints pair forces when verbose", func() {
			var buf bytes.Buffer
			_, err := gravity.Run(context.Background(), sys, gravity.RunConfig{Tick: second, Steps: 2}, gravity.Verbose(&buf))
			Expect(err).NotTo(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring("step 1 earth-moon: G=6.6743e-11"))
		})
	})
})

var _ = Describe("Ensemble", func() {
	build := func() (*gravity.System, error) {
		return gravity.New(mustBody("earth", "5.972e24kg", 0), mustBody("moon", "7.342e22kg", 3.844e8)), nil
	}

	It("runs every configuration on its own system", func() {
		e := &gravity.Ensemble{
			Build: build,
			Configs: []gravity.RunConfig{
				{Tick: quantity.MustParseScalar("s", 60), Steps: 10},
				{Tick: quantity.MustParseScalar("s", 600), Steps: 1},
			},
		}
		results, err := e.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].StepsTaken).To(Equal(10))
		Expect(results[1].StepsTaken).To(Equal(1))
		Expect(results[0].Times[10]).To(BeNumerically("~", results[1].Times[1], 1e-9))
	})

	It("reports a failing run", func() {
		e := &gravity.Ensemble{
			Build:   build,
			Configs: []gravity.RunConfig{{Tick: quantity.MustParseScalar("m", 1), Steps: 1}},
		}
		_, err := e.Run(context.Background())
		Expect(err).To(MatchError(quantity.ErrUnitMismatch))
	})
})
