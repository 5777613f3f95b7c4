package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/analysis"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/gravity"
	"github.com/san-kum/gravsim/internal/quantity"
	"github.com/san-kum/gravsim/internal/units"
	"github.com/san-kum/gravsim/internal/viz"
)

var (
	lang       string
	strict     bool
	configFile string
	preset     string
	tick       string
	steps      int
	verbose    bool
	plotWidth  int
	plotHeight int
	direction  string
	perFrame   int
	initPreset string
	svgPath    string
	ticks      []string
)

// main registers the commands and exits with status 1 if the chosen
// command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "dimensioned quantities and gravitational n-body runs",
	}
	rootCmd.PersistentFlags().StringVar(&lang, "lang", config.DefaultLanguage, "unit name language (en, de)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject unknown unit shorthands")

	printCmd := &cobra.Command{
		Use:   "print [value] [unit]",
		Short: "print a quantity with its unit name",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  printQuantity,
	}
	printCmd.Flags().StringVar(&direction, "dir", "", "direction components for a vector, e.g. 1,0,0")

	parseCmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "parse quantity text such as 5.972e24kg",
		Args:  cobra.ExactArgs(1),
		RunE:  parseQuantity,
	}

	calcCmd := &cobra.Command{
		Use:   "calc [a] [op] [b]",
		Short: "combine two quantities with + - * /",
		Args:  cobra.ExactArgs(3),
		RunE:  calcQuantity,
	}

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "list registered units",
		RunE:  listUnits,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a gravitational simulation",
		RunE:  runSimulation,
	}
	addSystemFlags(runCmd)
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print pair forces after every step")
	runCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	runCmd.Flags().IntVar(&plotHeight, "height", 8, "plot height")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with live visualization",
		RunE:  runLive,
	}
	addSystemFlags(liveCmd)
	liveCmd.Flags().IntVar(&perFrame, "per-frame", 10, "steps per frame")

	periodCmd := &cobra.Command{
		Use:   "period",
		Short: "estimate the orbital period of the first pair",
		RunE:  estimatePeriod,
	}
	addSystemFlags(periodCmd)
	periodCmd.Flags().StringVar(&svgPath, "svg", "", "write the trajectories to an SVG file")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare energy drift across tick durations over the same span",
		RunE:  compareTicks,
	}
	addSystemFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&ticks, "ticks", []string{"60s", "600s", "3600s"}, "tick durations to compare")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a preset as a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetPreset(initPreset)
			if cfg == nil {
				return fmt.Errorf("unknown preset: %s (available: %v)", initPreset, config.ListPresets())
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s preset to %s\n", initPreset, args[0])
			return nil
		},
	}
	initCmd.Flags().StringVar(&initPreset, "preset", config.DefaultPreset, "preset to write")

	rootCmd.AddCommand(printCmd, parseCmd, calcCmd, unitsCmd, runCmd, liveCmd, periodCmd, compareCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSystemFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&tick, "tick", config.DefaultTick, "tick duration, e.g. 60s")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of ticks")
}

func parser() units.Parser {
	return units.Parser{Strict: strict}
}

func language() (units.Language, error) {
	return units.ParseLanguage(lang)
}

// loadConfig resolves the system in order: config file, preset, default.
// Flags set on the command line override the loaded values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	default:
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("tick") {
		cfg.Tick = tick
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("lang") {
		cfg.Language = lang
	}
	if cmd.Flags().Changed("strict") {
		cfg.StrictUnits = strict
	}
	return cfg, nil
}

func printQuantity(cmd *cobra.Command, args []string) error {
	l, err := language()
	if err != nil {
		return err
	}
	x, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", "."), 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], units.ErrInvalidNumber)
	}
	expr := ""
	if len(args) == 2 {
		expr = args[1]
	}

	v := quantity.ScalarValue(x)
	if direction != "" {
		dir, err := parseDirection(direction)
		if err != nil {
			return err
		}
		v = quantity.VectorValue(quantity.NewVector(x, dir...))
	}

	q, err := quantity.ParseWith(parser(), expr, v)
	if err != nil {
		return err
	}
	s, err := quantity.Format(q, l)
	if err != nil {
		return err
	}
	fmt.Println(s)
	if q.Kind() == quantity.KindVector {
		fmt.Println(viz.Metric("value", q.Value.String()))
	}
	return nil
}

func parseDirection(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	dir := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid direction component %q: %w", p, units.ErrInvalidNumber)
		}
		dir[i] = f
	}
	return dir, nil
}

func parseQuantity(cmd *cobra.Command, args []string) error {
	l, err := language()
	if err != nil {
		return err
	}
	x, r, err := parser().ParseQuantityText(args[0])
	if err != nil {
		return err
	}
	q := quantity.New(r.Dim, quantity.ScalarValue(x*r.Scale))

	s, err := quantity.Format(q, l)
	if err != nil {
		return err
	}
	fmt.Println(viz.Metric("number", strconv.FormatFloat(x, 'g', -1, 64)))
	fmt.Println(viz.Metric("scale", strconv.FormatFloat(r.Scale, 'g', -1, 64)))
	fmt.Println(viz.Metric("dimension", r.Dim.String()))
	fmt.Println(viz.Metric("quantity", s))
	return nil
}

func calcQuantity(cmd *cobra.Command, args []string) error {
	l, err := language()
	if err != nil {
		return err
	}
	a, err := quantity.ParseTextWith(parser(), args[0])
	if err != nil {
		return err
	}
	b, err := quantity.ParseTextWith(parser(), args[2])
	if err != nil {
		return err
	}

	var q quantity.Quantity
	switch args[1] {
	case "+":
		q, err = a.Add(b)
	case "-":
		q, err = a.Sub(b)
	case "*", "x":
		q, err = a.Mul(b)
	case "/":
		q, err = a.Div(b)
	default:
		return fmt.Errorf("unknown operator %q (want + - * /)", args[1])
	}
	if err != nil {
		return err
	}

	s, err := quantity.Format(q, l)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func listUnits(cmd *cobra.Command, args []string) error {
	l, err := language()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tSHORTHAND\tSINGULAR\tPLURAL\tDIMENSION")
	for _, id := range units.All(l) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", id.Symbol, id.Shorthand, id.Singular, id.Plural, id.Dim)
	}
	return w.Flush()
}

func buildSystem(cmd *cobra.Command) (*config.Config, *gravity.System, quantity.Quantity, units.Language, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, quantity.Quantity{}, 0, err
	}
	l, err := cfg.Lang()
	if err != nil {
		return nil, nil, quantity.Quantity{}, 0, err
	}
	sys, dt, err := cfg.Build()
	if err != nil {
		return nil, nil, quantity.Quantity{}, 0, fmt.Errorf("failed to build system: %w", err)
	}
	return cfg, sys, dt, l, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, sys, dt, l, err := buildSystem(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var observers []gravity.Observer
	if verbose {
		observers = append(observers, gravity.Verbose(os.Stdout))
	}

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("%d bodies, %d steps", len(sys.Bodies), cfg.Steps)))
	fmt.Println(viz.QuantityLine("tick", dt, l))

	res, err := gravity.Run(ctx, sys, gravity.RunConfig{Tick: dt, Steps: cfg.Steps}, observers...)
	if err != nil {
		if res != nil {
			fmt.Printf("stopped after %d steps\n", res.StepsTaken)
		}
		return err
	}

	fmt.Println(viz.QuantityLine("elapsed", sys.Elapsed, l))
	fmt.Println(viz.Metric("energy drift", fmt.Sprintf("%.3e", res.EnergyDrift)))
	if e, err := sys.Energy(); err == nil {
		fmt.Println(viz.QuantityLine("energy", e, l))
	}
	if p, err := sys.TotalMomentum(); err == nil {
		fmt.Println(viz.QuantityLine("momentum", p.Length(), l))
	}
	fmt.Println()

	for _, b := range sys.Bodies {
		fmt.Println(viz.BodyCard(b, l))
		fmt.Println()
	}

	if chart := viz.PlotRun(res, plotWidth, plotHeight); chart != "" {
		fmt.Println(chart)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	_, sys, dt, l, err := buildSystem(cmd)
	if err != nil {
		return err
	}
	return viz.Run(sys, dt, perFrame, l)
}

func estimatePeriod(cmd *cobra.Command, args []string) error {
	cfg, sys, dt, l, err := buildSystem(cmd)
	if err != nil {
		return err
	}
	if len(sys.Bodies) < 2 {
		return fmt.Errorf("period needs at least two bodies, got %d", len(sys.Bodies))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	traj := analysis.NewTrajectory()
	res, err := gravity.Run(ctx, sys, gravity.RunConfig{Tick: dt, Steps: cfg.Steps}, traj)
	if err != nil {
		return err
	}

	name := sys.Bodies[1].Name + " around " + sys.Bodies[0].Name
	fmt.Println(viz.HeaderStyle.Render(name))

	if period, err := analysis.OrbitalPeriod(res); err != nil {
		fmt.Println(viz.Metric("spectral", err.Error()))
	} else {
		fmt.Println(viz.QuantityLine("spectral", period, l))
	}

	if c := traj.Crossings(1, 0); len(c) >= 2 {
		orbits := float64(c[len(c)-1]-c[0]) / float64(len(c)-1)
		period := quantity.New(dt.Dim, quantity.ScalarValue(orbits*dt.Magnitude()))
		fmt.Println(viz.QuantityLine("crossings", period, l))
	} else {
		fmt.Println(viz.Metric("crossings", fmt.Sprintf("%d, run longer for an estimate", len(c))))
	}

	if peri, apo, err := analysis.Apsides(res); err == nil {
		fmt.Println(viz.QuantityLine("periapsis", peri, l))
		fmt.Println(viz.QuantityLine("apoapsis", apo, l))
	}

	fmt.Println()
	fmt.Print(traj.ToASCII(60, 20))

	if svgPath != "" {
		colors := make([]string, len(sys.Bodies))
		for i, b := range sys.Bodies {
			colors[i] = b.Color
		}
		if err := export.WriteTrajectorySVG(svgPath, traj.Paths, colors, 800, 800); err != nil {
			return err
		}
		fmt.Printf("trajectories written to %s\n", svgPath)
	}
	return nil
}

func compareTicks(cmd *cobra.Command, args []string) error {
	cfg, _, dt, l, err := buildSystem(cmd)
	if err != nil {
		return err
	}
	span := dt.Magnitude() * float64(cfg.Steps)

	configs := make([]gravity.RunConfig, len(ticks))
	for i, t := range ticks {
		q, err := quantity.ParseTextWith(cfg.Parser(), t)
		if err != nil {
			return fmt.Errorf("tick %q: %w", t, err)
		}
		n := int(span / q.Magnitude())
		if n < 1 {
			return fmt.Errorf("tick %q is longer than the span of %g s", t, span)
		}
		configs[i] = gravity.RunConfig{Tick: q, Steps: n}
	}

	ens := &gravity.Ensemble{
		Build: func() (*gravity.System, error) {
			sys, _, err := cfg.Build()
			return sys, err
		},
		Configs: configs,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := ens.Run(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICK\tSTEPS\tENERGY DRIFT")
	for i, r := range results {
		name, err := quantity.Format(configs[i].Tick, l)
		if err != nil {
			name = ticks[i]
		}
		fmt.Fprintf(w, "%s\t%d\t%.3e\n", name, r.StepsTaken, r.EnergyDrift)
	}
	return w.Flush()
}
