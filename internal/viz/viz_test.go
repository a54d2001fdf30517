package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/skysynth/internal/catalog"
	"github.com/san-kum/skysynth/internal/export"
	"github.com/san-kum/skysynth/internal/grid"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Cells[0][0] == 0x2800 {
		t.Error("Set(0,0) left the cell empty")
	}

	// Out of range dots must be ignored.
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(8, 0)
	c.Set(0, 8)

	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 4 {
			t.Errorf("row %d has %d cells, want 4", i, n)
		}
	}

	c.Clear()
	for _, row := range c.Cells {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("Clear left dots behind")
			}
		}
	}
}

func TestRenderShape(t *testing.T) {
	g := grid.New(40, 20)
	// Fill one full character cell (2x4 pixels) so block averaging
	// keeps it saturated.
	for y := 8; y < 12; y++ {
		for x := 20; x < 22; x++ {
			g.Set(x, y, 100)
		}
	}

	out, err := Render(g, 20, export.Linear)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) == 0 {
		t.Fatal("empty render")
	}
	for i, line := range lines {
		if n := len([]rune(line)); n > 20 {
			t.Errorf("row %d is %d cells wide, want <= 20", i, n)
		}
	}
	if !strings.ContainsAny(out, "@%#") {
		t.Error("bright pixel did not produce a bright glyph")
	}
}

func TestRenderBadStretch(t *testing.T) {
	if _, err := Render(grid.New(4, 4), 10, "nope"); err == nil {
		t.Error("expected error for unknown stretch")
	}
}

func TestScatter(t *testing.T) {
	cat := &catalog.Catalog{
		Brightness: catalog.ByFlux,
		Sources: []catalog.Source{
			{Flux: 1, XMean: 0, YMean: 0, XStdDev: 1, YStdDev: 1},
			{Flux: 1, XMean: 99, YMean: 99, XStdDev: 1, YStdDev: 1},
		},
	}

	out := Scatter(cat, 10, 5, 100, 100)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}

	dots := 0
	for _, line := range lines {
		for _, r := range line {
			if r != 0x2800 {
				dots++
			}
		}
	}
	if dots != 2 {
		t.Errorf("expected 2 cells with dots, got %d", dots)
	}
}

func TestHistogramStrip(t *testing.T) {
	counts := []float64{100, 10, 1, 0}
	out := HistogramStrip(counts, 4)
	runes := []rune(out)
	if len(runes) != 4 {
		t.Fatalf("strip length = %d, want 4", len(runes))
	}
	// Log scaled counts must still order the glyphs.
	for i := 1; i < len(runes); i++ {
		if runes[i] > runes[i-1] {
			t.Errorf("strip %q not monotonically falling", out)
		}
	}
	if runes[0] != '█' {
		t.Errorf("peak bin glyph = %q, want full block", runes[0])
	}
}
