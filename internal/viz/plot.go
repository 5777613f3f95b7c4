package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravsim/internal/gravity"
)

// Plot draws series as an ASCII line chart. Width 0 lets asciigraph use
// one column per sample.
func Plot(series []float64, caption string, width, height int) string {
	if len(series) < 2 {
		return ""
	}
	opts := []asciigraph.Option{asciigraph.Height(height), asciigraph.Caption(caption), asciigraph.Precision(3)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(series, opts...)
}

// PlotRun charts the separation of the first pair and the total energy.
func PlotRun(res *gravity.Result, width, height int) string {
	if res == nil {
		return ""
	}
	var charts []string
	if c := Plot(res.Separations, "separation (m)", width, height); c != "" {
		charts = append(charts, c)
	}
	if c := Plot(res.Energies, "energy (J)", width, height); c != "" {
		charts = append(charts, c)
	}
	return strings.Join(charts, "\n\n")
}
