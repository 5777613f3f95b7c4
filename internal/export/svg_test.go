package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTrajectorySVG(t *testing.T) {
	paths := [][]r3.Vec{
		{{X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}},
		{{X: 0, Y: 0}},
	}
	svg := TrajectorySVG(paths, []string{"#ff0000"}, 200, 100)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("paths = %d, want 2", n)
	}
	if !strings.Contains(svg, `stroke="#ff0000"`) || !strings.Contains(svg, `stroke="#ffffff"`) {
		t.Error("expected given color and white fallback")
	}
	// Span 2 * 1.2 over 100 px; center (0, 0.5) maps to (100, 50).
	if !strings.Contains(svg, "M58.3,70.8") {
		t.Errorf("unexpected first point in\n%s", svg)
	}
}

func TestTrajectorySVGEmpty(t *testing.T) {
	if TrajectorySVG(nil, nil, 10, 10) != "" {
		t.Error("expected empty output")
	}
	if err := WriteTrajectorySVG(filepath.Join(t.TempDir(), "x.svg"), nil, nil, 10, 10); err == nil {
		t.Error("expected error for empty trajectory")
	}
}

func TestWriteTrajectorySVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.svg")
	paths := [][]r3.Vec{{{X: 0}, {X: 1, Y: 1}}}
	if err := WriteTrajectorySVG(path, paths, nil, 50, 50); err != nil {
		t.Fatalf("WriteTrajectorySVG failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<circle") {
		t.Error("expected a marker for the final position")
	}
}
