package synth

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/skysynth/internal/config"
	"github.com/san-kum/skysynth/internal/noise"
)

func skyScene() *config.Scene {
	return &config.Scene{
		Name:       "sky",
		Width:      32,
		Height:     32,
		Seed:       9,
		Oversample: 1,
		Background: &noise.Config{Distribution: noise.Gaussian, Mean: 5, StdDev: 2},
	}
}

func TestEnsembleDeterministic(t *testing.T) {
	a, err := NewEnsemble(skyScene(), 4, 100).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := NewEnsemble(skyScene(), 4, 100).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(a) != 4 || len(b) != 4 {
		t.Fatalf("got %d and %d datasets, want 4", len(a), len(b))
	}
	for i := range a {
		for j := range a[i].Image.Pix {
			if a[i].Image.Pix[j] != b[i].Image.Pix[j] {
				t.Fatalf("run %d pixel %d differs between ensembles", i, j)
			}
		}
	}
}

func TestEnsembleSeedsDiffer(t *testing.T) {
	ds, err := NewEnsemble(skyScene(), 2, 7).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	same := true
	for i := range ds[0].Image.Pix {
		if ds[0].Image.Pix[i] != ds[1].Image.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("consecutive seeds produced identical images")
	}
}

func TestEnsembleMeanConverges(t *testing.T) {
	ds, err := NewEnsemble(skyScene(), 8, 1).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	total := 0.0
	for _, d := range ds {
		total += d.Image.Mean()
	}
	if m := total / float64(len(ds)); math.Abs(m-5) > 0.2 {
		t.Errorf("ensemble mean = %v, want ~5", m)
	}
}

func TestEnsembleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewEnsemble(skyScene(), 2, 1).Run(ctx); err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestEnsembleBadScene(t *testing.T) {
	s := skyScene()
	s.Width = 0
	if _, err := NewEnsemble(s, 2, 1).Run(context.Background()); err == nil {
		t.Error("expected error for zero width scene")
	}
}
