package analysis

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/gravity"
)

// Trajectory records the position of every body after each step. It
// implements gravity.Observer.
type Trajectory struct {
	Paths [][]r3.Vec
}

func NewTrajectory() *Trajectory {
	return &Trajectory{}
}

func (t *Trajectory) OnStep(step int, sys *gravity.System) {
	if len(t.Paths) < len(sys.Bodies) {
		t.Paths = append(t.Paths, make([][]r3.Vec, len(sys.Bodies)-len(t.Paths))...)
	}
	for i, b := range sys.Bodies {
		t.Paths[i] = append(t.Paths[i], b.Projection())
	}
}

// Crossings returns the step indices at which body i crosses the x axis
// with y going from negative to non-negative while x is positive relative
// to body ref. The spacing of crossings is one orbit.
func (t *Trajectory) Crossings(i, ref int) []int {
	if i >= len(t.Paths) || ref >= len(t.Paths) {
		return nil
	}
	var out []int
	a, b := t.Paths[i], t.Paths[ref]
	for k := 1; k < len(a) && k < len(b); k++ {
		prev := r3.Sub(a[k-1], b[k-1])
		cur := r3.Sub(a[k], b[k])
		if prev.Y < 0 && cur.Y >= 0 && cur.X > 0 {
			out = append(out, k)
		}
	}
	return out
}

// ToASCII draws the XY projection of every path, one glyph per body.
func (t *Trajectory) ToASCII(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	seen := false
	minX, maxX, minY, maxY := 0.0, 0.0, 0.0, 0.0
	for _, path := range t.Paths {
		for _, p := range path {
			if !seen {
				seen = true
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				continue
			}
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	if !seen {
		return ""
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	glyphs := []rune("•o*+x#")
	for i, path := range t.Paths {
		g := glyphs[i%len(glyphs)]
		for _, p := range path {
			col := int((p.X - minX) / rangeX * float64(width-1))
			row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
			if row >= 0 && row < height && col >= 0 && col < width {
				canvas[row][col] = g
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
