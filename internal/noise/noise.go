// Package noise generates background noise images and applies shot
// noise to existing images.
package noise

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/skysynth/internal/grid"
)

// Distribution selects the noise model.
type Distribution string

const (
	Gaussian Distribution = "gaussian"
	Poisson  Distribution = "poisson"
)

// ParseDistribution converts a user supplied name into a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gaussian":
		return Gaussian, nil
	case "poisson":
		return Poisson, nil
	default:
		return "", fmt.Errorf("%w: %q (use gaussian or poisson)", ErrUnknownDistribution, s)
	}
}

// Config describes a noise field. Mean is the Gaussian mean or the
// Poisson expectation. StdDev is only meaningful for Gaussian noise.
type Config struct {
	Distribution Distribution `yaml:"distribution"`
	Mean         float64      `yaml:"mean"`
	StdDev       float64      `yaml:"stddev"`
}

// Validate reports whether the config describes a drawable distribution.
func (c Config) Validate() error {
	switch c.Distribution {
	case Gaussian:
		if c.StdDev < 0 {
			return fmt.Errorf("%w: %v", ErrNegativeStdDev, c.StdDev)
		}
	case Poisson:
		if c.Mean < 0 {
			return fmt.Errorf("%w: %v", ErrNegativeMean, c.Mean)
		}
	default:
		return fmt.Errorf("%w: %q (use gaussian or poisson)", ErrUnknownDistribution, c.Distribution)
	}
	return nil
}

// NewSource returns a deterministic random source for the given seed.
// Equal seeds always produce equal streams.
func NewSource(seed int64) rand.Source {
	s := uint64(seed)
	return rand.NewPCG(s, s)
}

// Image draws a width x height noise image from cfg using src.
func Image(width, height int, cfg Config, src rand.Source) (*grid.Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("noise: image shape must be positive, got %dx%d", width, height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := grid.New(width, height)
	switch cfg.Distribution {
	case Gaussian:
		n := distuv.Normal{Mu: cfg.Mean, Sigma: cfg.StdDev, Src: src}
		for i := range g.Pix {
			g.Pix[i] = n.Rand()
		}
	case Poisson:
		p := distuv.Poisson{Lambda: cfg.Mean, Src: src}
		for i := range g.Pix {
			g.Pix[i] = p.Rand()
		}
	}
	return g, nil
}

// ApplyPoisson replaces every pixel with a Poisson draw whose
// expectation is the pixel value, simulating shot noise. The input
// must be non-negative and is not modified.
func ApplyPoisson(g *grid.Grid, src rand.Source) (*grid.Grid, error) {
	for _, v := range g.Pix {
		if v < 0 {
			return nil, ErrNegativeData
		}
	}
	out := grid.New(g.Width, g.Height)
	p := distuv.Poisson{Src: src}
	for i, v := range g.Pix {
		if v == 0 {
			continue
		}
		p.Lambda = v
		out.Pix[i] = p.Rand()
	}
	return out, nil
}
