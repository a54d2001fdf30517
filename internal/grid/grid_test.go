package grid

import (
	"math"
	"testing"
)

func TestNewZeroed(t *testing.T) {
	g := New(4, 3)

	if g.Width != 4 || g.Height != 3 {
		t.Errorf("expected 4x3, got %dx%d", g.Width, g.Height)
	}
	if len(g.Pix) != 12 {
		t.Fatalf("expected 12 pixels, got %d", len(g.Pix))
	}
	for i, v := range g.Pix {
		if v != 0 {
			t.Errorf("pixel %d not zero: %f", i, v)
		}
	}
}

func TestAtSetRowMajor(t *testing.T) {
	g := New(3, 2)
	g.Set(2, 1, 7.5)

	if g.At(2, 1) != 7.5 {
		t.Errorf("expected 7.5, got %f", g.At(2, 1))
	}
	if g.Pix[1*3+2] != 7.5 {
		t.Error("Set did not write row-major index")
	}
}

func TestAddShapeMismatch(t *testing.T) {
	g := New(3, 2)
	other := New(2, 3)

	if err := g.Add(other); err == nil {
		t.Error("expected shape mismatch error")
	}
}

func TestAddAndScalar(t *testing.T) {
	g := New(2, 2)
	g.Fill(1.0)
	other := New(2, 2)
	other.Fill(2.0)

	if err := g.Add(other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.AddScalar(0.5)

	for i, v := range g.Pix {
		if v != 3.5 {
			t.Errorf("pixel %d: expected 3.5, got %f", i, v)
		}
	}
}

func TestSumMeanMinMax(t *testing.T) {
	g := New(2, 2)
	g.Pix = []float64{1, 2, 3, 4}

	if g.Sum() != 10 {
		t.Errorf("expected sum 10, got %f", g.Sum())
	}
	if g.Mean() != 2.5 {
		t.Errorf("expected mean 2.5, got %f", g.Mean())
	}
	min, max := g.MinMax()
	if min != 1 || max != 4 {
		t.Errorf("expected min 1 max 4, got %f %f", min, max)
	}
}

func TestCloneIndependent(t *testing.T) {
	g := New(2, 1)
	g.Set(0, 0, 5)
	c := g.Clone()
	c.Set(0, 0, 9)

	if g.At(0, 0) != 5 {
		t.Error("clone shares backing storage with original")
	}
}

func TestIsValid(t *testing.T) {
	g := New(2, 1)
	if !g.IsValid() {
		t.Error("zeroed grid should be valid")
	}

	g.Set(1, 0, math.NaN())
	if g.IsValid() {
		t.Error("NaN pixel should invalidate grid")
	}

	g.Set(1, 0, math.Inf(1))
	if g.IsValid() {
		t.Error("Inf pixel should invalidate grid")
	}
}
