// Package catalog models tables of elliptical Gaussian sources.
//
// A catalog carries one brightness column, either total flux or peak
// amplitude, plus position, width and orientation per source. Columns
// use the conventional source-table names (flux, amplitude, x_mean,
// y_mean, x_stddev, y_stddev, theta) when serialized.
package catalog

import "fmt"

// Brightness names the column that sets source intensity.
type Brightness string

const (
	ByFlux      Brightness = "flux"
	ByAmplitude Brightness = "amplitude"
)

// Source is one elliptical Gaussian. Only the field named by the
// owning catalog's Brightness is meaningful between Flux and
// Amplitude. Theta is the counterclockwise rotation in radians.
type Source struct {
	Flux      float64 `yaml:"flux,omitempty" json:"flux,omitempty"`
	Amplitude float64 `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
	XMean     float64 `yaml:"x_mean" json:"x_mean"`
	YMean     float64 `yaml:"y_mean" json:"y_mean"`
	XStdDev   float64 `yaml:"x_stddev" json:"x_stddev"`
	YStdDev   float64 `yaml:"y_stddev" json:"y_stddev"`
	Theta     float64 `yaml:"theta" json:"theta"`
}

// Catalog is an ordered set of sources sharing a brightness column.
type Catalog struct {
	Brightness Brightness
	Sources    []Source
}

// Validate checks that the catalog can be rendered: a known brightness
// column and strictly positive widths on every source.
func (c *Catalog) Validate() error {
	if c.Brightness != ByFlux && c.Brightness != ByAmplitude {
		return fmt.Errorf("%w (got %q)", ErrNoBrightness, c.Brightness)
	}
	for i, s := range c.Sources {
		if s.XStdDev <= 0 || s.YStdDev <= 0 {
			return fmt.Errorf("source %d: %w", i, ErrBadStdDev)
		}
	}
	return nil
}
