// Package export writes simulation output to files.
package export

import (
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

const background = "#0a0a0a"

// TrajectorySVG draws the XY projection of each path as a polyline, with
// the same scale on both axes so orbits keep their shape. colors[i]
// strokes paths[i]; missing colors fall back to white.
func TrajectorySVG(paths [][]r3.Vec, colors []string, width, height int) string {
	seen := false
	var minX, maxX, minY, maxY float64
	for _, path := range paths {
		for _, p := range path {
			if !seen {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				seen = true
				continue
			}
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	if !seen {
		return ""
	}

	span := max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	span *= 1.2
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	scale := float64(min(width, height)) / span

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	for i, path := range paths {
		if len(path) == 0 {
			continue
		}
		color := "#ffffff"
		if i < len(colors) && colors[i] != "" {
			color = colors[i]
		}

		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="`, color)
		for k, p := range path {
			x := float64(width)/2 + (p.X-cx)*scale
			y := float64(height)/2 - (p.Y-cy)*scale
			if k == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")

		last := path[len(path)-1]
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
`, float64(width)/2+(last.X-cx)*scale, float64(height)/2-(last.Y-cy)*scale, color)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteTrajectorySVG writes TrajectorySVG output to path.
func WriteTrajectorySVG(path string, paths [][]r3.Vec, colors []string, width, height int) error {
	svg := TrajectorySVG(paths, colors, width, height)
	if svg == "" {
		return fmt.Errorf("export: no trajectory points")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
