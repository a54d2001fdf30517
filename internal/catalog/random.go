package catalog

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Range bounds a uniformly drawn catalog column.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Ranges bounds every column of a random catalog. Set exactly one of
// Flux or Amplitude; Amplitude wins when both are set.
type Ranges struct {
	Flux      *Range `yaml:"flux,omitempty"`
	Amplitude *Range `yaml:"amplitude,omitempty"`
	X         Range  `yaml:"x"`
	Y         Range  `yaml:"y"`
	XStdDev   Range  `yaml:"xstddev"`
	YStdDev   Range  `yaml:"ystddev"`
}

// Random draws n sources from r using src. Columns are drawn one at a
// time, brightness first, then x, y, widths and theta, so a catalog is
// reproducible from its seed regardless of how the sources are used
// afterwards. Theta is uniform over [0, 2pi).
func Random(n int, r Ranges, src rand.Source) (*Catalog, error) {
	if n < 0 {
		return nil, fmt.Errorf("catalog: source count must be non-negative, got %d", n)
	}

	bright := ByFlux
	brightRange := r.Flux
	if r.Amplitude != nil {
		bright = ByAmplitude
		brightRange = r.Amplitude
	}
	if brightRange == nil {
		return nil, ErrNoBrightness
	}

	named := []struct {
		name string
		rng  Range
	}{
		{string(bright), *brightRange},
		{"x", r.X},
		{"y", r.Y},
		{"xstddev", r.XStdDev},
		{"ystddev", r.YStdDev},
	}
	for _, c := range named {
		if c.rng.Min > c.rng.Max {
			return nil, fmt.Errorf("catalog: invalid %s range [%v, %v]", c.name, c.rng.Min, c.rng.Max)
		}
	}

	uniform := func(rng Range) []float64 {
		u := distuv.Uniform{Min: rng.Min, Max: rng.Max, Src: src}
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = u.Rand()
		}
		return vals
	}

	bvals := uniform(*brightRange)
	xs := uniform(r.X)
	ys := uniform(r.Y)
	xsd := uniform(r.XStdDev)
	ysd := uniform(r.YStdDev)
	thetas := uniform(Range{Max: 2 * math.Pi})

	sources := make([]Source, n)
	for i := range sources {
		if bright == ByAmplitude {
			sources[i].Amplitude = bvals[i]
		} else {
			sources[i].Flux = bvals[i]
		}
		sources[i].XMean = xs[i]
		sources[i].YMean = ys[i]
		sources[i].XStdDev = xsd[i]
		sources[i].YStdDev = ysd[i]
		sources[i].Theta = thetas[i]
	}
	return &Catalog{Brightness: bright, Sources: sources}, nil
}
