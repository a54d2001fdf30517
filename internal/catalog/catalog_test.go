package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/skysynth/internal/noise"
)

func TestValidate(t *testing.T) {
	ok := &Catalog{
		Brightness: ByFlux,
		Sources:    []Source{{Flux: 100, XMean: 5, YMean: 5, XStdDev: 1, YStdDev: 2}},
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid catalog: %v", err)
	}

	if err := (&Catalog{Sources: ok.Sources}).Validate(); !errors.Is(err, ErrNoBrightness) {
		t.Errorf("missing brightness: got %v, want ErrNoBrightness", err)
	}

	bad := &Catalog{
		Brightness: ByAmplitude,
		Sources: []Source{
			{Amplitude: 1, XStdDev: 1, YStdDev: 1},
			{Amplitude: 1, XStdDev: 0, YStdDev: 1},
		},
	}
	err := bad.Validate()
	if !errors.Is(err, ErrBadStdDev) {
		t.Fatalf("zero stddev: got %v, want ErrBadStdDev", err)
	}
	if !strings.Contains(err.Error(), "source 1") {
		t.Errorf("error %q does not name the offending source", err)
	}
}

func TestRandomRanges(t *testing.T) {
	r := Ranges{
		Flux:    &Range{Min: 500, Max: 1000},
		X:       Range{Min: 0, Max: 500},
		Y:       Range{Min: 0, Max: 300},
		XStdDev: Range{Min: 1, Max: 5},
		YStdDev: Range{Min: 1, Max: 5},
	}
	c, err := Random(500, r, noise.NewSource(12345))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if c.Brightness != ByFlux {
		t.Errorf("Brightness = %q, want flux", c.Brightness)
	}
	if len(c.Sources) != 500 {
		t.Fatalf("len(Sources) = %d, want 500", len(c.Sources))
	}
	for i, s := range c.Sources {
		if s.Flux < 500 || s.Flux >= 1000 {
			t.Fatalf("source %d: flux %v out of range", i, s.Flux)
		}
		if s.XMean < 0 || s.XMean >= 500 || s.YMean < 0 || s.YMean >= 300 {
			t.Fatalf("source %d: position (%v, %v) out of range", i, s.XMean, s.YMean)
		}
		if s.XStdDev < 1 || s.XStdDev >= 5 || s.YStdDev < 1 || s.YStdDev >= 5 {
			t.Fatalf("source %d: stddev (%v, %v) out of range", i, s.XStdDev, s.YStdDev)
		}
		if s.Theta < 0 || s.Theta >= 2*math.Pi {
			t.Fatalf("source %d: theta %v out of [0, 2pi)", i, s.Theta)
		}
		if s.Amplitude != 0 {
			t.Fatalf("source %d: amplitude set on a flux catalog", i)
		}
	}
}

func TestRandomAmplitudeWins(t *testing.T) {
	r := Ranges{
		Flux:      &Range{Min: 1, Max: 2},
		Amplitude: &Range{Min: 50, Max: 100},
		X:         Range{Max: 10},
		Y:         Range{Max: 10},
		XStdDev:   Range{Min: 1, Max: 2},
		YStdDev:   Range{Min: 1, Max: 2},
	}
	c, err := Random(20, r, noise.NewSource(1))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if c.Brightness != ByAmplitude {
		t.Fatalf("Brightness = %q, want amplitude", c.Brightness)
	}
	for i, s := range c.Sources {
		if s.Amplitude < 50 || s.Amplitude >= 100 {
			t.Fatalf("source %d: amplitude %v out of range", i, s.Amplitude)
		}
		if s.Flux != 0 {
			t.Fatalf("source %d: flux set on an amplitude catalog", i)
		}
	}
}

func TestRandomErrors(t *testing.T) {
	base := Ranges{
		Flux:    &Range{Min: 1, Max: 2},
		XStdDev: Range{Min: 1, Max: 2},
		YStdDev: Range{Min: 1, Max: 2},
	}

	if _, err := Random(-1, base, noise.NewSource(1)); err == nil {
		t.Error("negative count: expected error")
	}

	if _, err := Random(5, Ranges{}, noise.NewSource(1)); !errors.Is(err, ErrNoBrightness) {
		t.Errorf("no brightness range: got %v, want ErrNoBrightness", err)
	}

	rev := base
	rev.X = Range{Min: 10, Max: 5}
	if _, err := Random(5, rev, noise.NewSource(1)); err == nil {
		t.Error("reversed range: expected error")
	}
}

func TestRandomDeterminism(t *testing.T) {
	r := Ranges{
		Flux:    &Range{Min: 500, Max: 1000},
		X:       Range{Max: 100},
		Y:       Range{Max: 100},
		XStdDev: Range{Min: 1, Max: 5},
		YStdDev: Range{Min: 1, Max: 5},
	}

	a, err := Random(50, r, noise.NewSource(99))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	b, err := Random(50, r, noise.NewSource(99))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	for i := range a.Sources {
		if a.Sources[i] != b.Sources[i] {
			t.Fatalf("source %d differs for equal seeds", i)
		}
	}

	c, err := Random(50, r, noise.NewSource(100))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	same := true
	for i := range a.Sources {
		if a.Sources[i] != c.Sources[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical catalogs")
	}
}
