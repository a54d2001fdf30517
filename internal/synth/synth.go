package synth

import (
	"fmt"

	"github.com/san-kum/skysynth/internal/catalog"
	"github.com/san-kum/skysynth/internal/config"
	"github.com/san-kum/skysynth/internal/grid"
	"github.com/san-kum/skysynth/internal/noise"
	"github.com/san-kum/skysynth/internal/profile"
)

// Dataset pairs a rendered image with the catalog that produced it.
type Dataset struct {
	Image   *grid.Grid
	Catalog *catalog.Catalog
}

// RenderCatalog rasterizes every source in c onto a fresh
// width x height image. Flux catalogs are converted to peak
// amplitudes before evaluation. Sources accumulate, so overlapping
// profiles sum.
func RenderCatalog(width, height int, c *catalog.Catalog, oversample int) (*grid.Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("synth: image shape must be positive, got %dx%d", width, height)
	}
	if oversample < 1 {
		return nil, fmt.Errorf("synth: oversample factor must be >= 1, got %d", oversample)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g := grid.New(width, height)
	for i, s := range c.Sources {
		gauss := profile.Gaussian2D{
			Amplitude: amplitudeOf(c.Brightness, s),
			XMean:     s.XMean,
			YMean:     s.YMean,
			XStdDev:   s.XStdDev,
			YStdDev:   s.YStdDev,
			Theta:     s.Theta,
		}
		if err := profile.Discretize(g, gauss, oversample); err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
	}
	return g, nil
}

func amplitudeOf(b catalog.Brightness, s catalog.Source) float64 {
	if b == catalog.ByFlux {
		return profile.AmplitudeFromFlux(s.Flux, s.XStdDev, s.YStdDev)
	}
	return s.Amplitude
}

// Build renders a scene into a dataset: materialize the catalog,
// rasterize it, add background noise, then optionally apply shot
// noise to the composite.
func Build(scene *config.Scene) (*Dataset, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}

	catSrc := noise.NewSource(scene.Seed)
	noiseSrc := noise.NewSource(scene.Seed)

	var cat *catalog.Catalog
	switch {
	case scene.Random != nil:
		var err error
		cat, err = catalog.Random(scene.Random.Count, scene.Random.Ranges, catSrc)
		if err != nil {
			return nil, err
		}
	case len(scene.Sources) > 0:
		cat = &catalog.Catalog{Brightness: scene.Brightness, Sources: scene.Sources}
	default:
		cat = &catalog.Catalog{Brightness: catalog.ByFlux}
	}

	img, err := RenderCatalog(scene.Width, scene.Height, cat, scene.Oversample)
	if err != nil {
		return nil, err
	}

	if scene.Background != nil {
		bg, err := noise.Image(scene.Width, scene.Height, *scene.Background, noiseSrc)
		if err != nil {
			return nil, err
		}
		if err := img.Add(bg); err != nil {
			return nil, err
		}
	}

	if scene.ShotNoise {
		img, err = noise.ApplyPoisson(img, noiseSrc)
		if err != nil {
			return nil, err
		}
	}
	return &Dataset{Image: img, Catalog: cat}, nil
}
