package stats

import (
	"math"
	"testing"

	"github.com/san-kum/skysynth/internal/grid"
	"github.com/san-kum/skysynth/internal/noise"
)

func TestCompute(t *testing.T) {
	g := grid.New(3, 3)
	for i := range g.Pix {
		g.Pix[i] = float64(i + 1)
	}

	s := Compute(g)
	if s.Mean != 5 {
		t.Errorf("mean = %v, want 5", s.Mean)
	}
	if s.Median != 5 {
		t.Errorf("median = %v, want 5", s.Median)
	}
	if want := math.Sqrt(7.5); math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("stddev = %v, want %v", s.StdDev, want)
	}
	if s.Min != 1 || s.Max != 9 {
		t.Errorf("min/max = %v/%v, want 1/9", s.Min, s.Max)
	}
	if s.Sum != 45 {
		t.Errorf("sum = %v, want 45", s.Sum)
	}
}

func TestSigmaClippedRejectsSources(t *testing.T) {
	g, err := noise.Image(100, 100, noise.Config{Distribution: noise.Gaussian, Mean: 0, StdDev: 1}, noise.NewSource(13))
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	// Inject bright outliers standing in for sources.
	for i := 0; i < 50; i++ {
		g.Pix[i*97] = 1000
	}

	plain := Compute(g)
	if plain.Mean < 1 {
		t.Fatalf("outliers should pull the plain mean up, got %v", plain.Mean)
	}

	cs, err := SigmaClipped(g, 3, 5)
	if err != nil {
		t.Fatalf("SigmaClipped: %v", err)
	}
	if math.Abs(cs.Mean) > 0.1 {
		t.Errorf("clipped mean = %v, want ~0", cs.Mean)
	}
	if math.Abs(cs.StdDev-1) > 0.1 {
		t.Errorf("clipped stddev = %v, want ~1", cs.StdDev)
	}
	if cs.Kept >= len(g.Pix) {
		t.Error("clipping kept every pixel")
	}
	if cs.Kept < 9000 {
		t.Errorf("clipping kept only %d of %d pixels", cs.Kept, len(g.Pix))
	}
}

func TestSigmaClippedFlat(t *testing.T) {
	g := grid.New(8, 8)
	g.Fill(42)

	cs, err := SigmaClipped(g, 3, 5)
	if err != nil {
		t.Fatalf("SigmaClipped: %v", err)
	}
	if cs.Mean != 42 || cs.Median != 42 {
		t.Errorf("flat image stats = %+v, want mean/median 42", cs)
	}
	if cs.StdDev != 0 {
		t.Errorf("flat image stddev = %v, want 0", cs.StdDev)
	}
	if cs.Kept != 64 {
		t.Errorf("flat image kept %d pixels, want 64", cs.Kept)
	}
}

func TestSigmaClippedErrors(t *testing.T) {
	g := grid.New(4, 4)
	if _, err := SigmaClipped(g, 0, 5); err == nil {
		t.Error("sigma 0: expected error")
	}
	if _, err := SigmaClipped(g, 3, 0); err == nil {
		t.Error("maxIters 0: expected error")
	}
}

func TestComputeHistogram(t *testing.T) {
	g := grid.New(10, 10)
	for i := range g.Pix {
		g.Pix[i] = float64(i)
	}

	h, err := ComputeHistogram(g, 10)
	if err != nil {
		t.Fatalf("ComputeHistogram: %v", err)
	}
	if len(h.Counts) != 10 || len(h.Edges) != 11 {
		t.Fatalf("got %d counts, %d edges", len(h.Counts), len(h.Edges))
	}
	for i, c := range h.Counts {
		if c != 10 {
			t.Errorf("bin %d = %v, want 10", i, c)
		}
	}
	if h.Edges[0] != 0 {
		t.Errorf("first edge = %v, want 0", h.Edges[0])
	}
}

func TestComputeHistogramFlat(t *testing.T) {
	g := grid.New(5, 5)
	g.Fill(7)

	h, err := ComputeHistogram(g, 16)
	if err != nil {
		t.Fatalf("ComputeHistogram: %v", err)
	}
	if len(h.Counts) != 1 || h.Counts[0] != 25 {
		t.Errorf("flat histogram = %+v, want one bin of 25", h)
	}
}

func TestComputeHistogramBadBins(t *testing.T) {
	if _, err := ComputeHistogram(grid.New(2, 2), 0); err == nil {
		t.Error("bins 0: expected error")
	}
}
