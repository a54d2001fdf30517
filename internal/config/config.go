package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/skysynth/internal/catalog"
	"github.com/san-kum/skysynth/internal/noise"
)

const (
	DefaultWidth  = 256
	DefaultHeight = 256
	DefaultSeed   = 1
	DefaultCount  = 50
)

// Scene describes one synthetic image end to end: shape, seed,
// background noise and the source catalog, either explicit or drawn
// at random. A scene file is the unit that Load, Save and the preset
// table trade in.
type Scene struct {
	Name       string             `yaml:"name"`
	Width      int                `yaml:"width"`
	Height     int                `yaml:"height"`
	Seed       int64              `yaml:"seed"`
	Oversample int                `yaml:"oversample"`
	Unit       string             `yaml:"unit,omitempty"`
	Background *noise.Config      `yaml:"background,omitempty"`
	ShotNoise  bool               `yaml:"shot_noise,omitempty"`
	Brightness catalog.Brightness `yaml:"brightness,omitempty"`
	Sources    []catalog.Source   `yaml:"sources,omitempty"`
	Random     *RandomSources     `yaml:"random,omitempty"`
}

// RandomSources asks for Count sources drawn from the given ranges.
type RandomSources struct {
	Count  int            `yaml:"count"`
	Ranges catalog.Ranges `yaml:",inline"`
}

func DefaultScene() *Scene {
	return &Scene{
		Name:       "default",
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Seed:       DefaultSeed,
		Oversample: 1,
		Background: &noise.Config{Distribution: noise.Gaussian, Mean: 5, StdDev: 2},
		Random: &RandomSources{
			Count: DefaultCount,
			Ranges: catalog.Ranges{
				Flux:    &catalog.Range{Min: 500, Max: 1000},
				X:       catalog.Range{Max: DefaultWidth},
				Y:       catalog.Range{Max: DefaultHeight},
				XStdDev: catalog.Range{Min: 1, Max: 5},
				YStdDev: catalog.Range{Min: 1, Max: 5},
			},
		},
	}
}

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Scene{Oversample: 1}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func Save(path string, s *Scene) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the scene before any pixels are drawn. Explicit
// sources and a random catalog are mutually exclusive.
func (s *Scene) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("config: image shape must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Oversample < 1 {
		return fmt.Errorf("config: oversample must be >= 1, got %d", s.Oversample)
	}
	if len(s.Sources) > 0 && s.Random != nil {
		return fmt.Errorf("config: scene %q has both explicit sources and a random catalog", s.Name)
	}
	if len(s.Sources) > 0 {
		cat := catalog.Catalog{Brightness: s.Brightness, Sources: s.Sources}
		if err := cat.Validate(); err != nil {
			return err
		}
	}
	if s.Random != nil && s.Random.Count < 0 {
		return fmt.Errorf("config: random source count must be non-negative, got %d", s.Random.Count)
	}
	if s.Background != nil {
		if err := s.Background.Validate(); err != nil {
			return err
		}
	}
	return nil
}
