package config

import (
	"math"
	"sort"

	"github.com/san-kum/skysynth/internal/catalog"
	"github.com/san-kum/skysynth/internal/noise"
)

// Presets holds ready-made scenes. The 4gaussians and 100gaussians
// entries are the classic demonstration images with their historical
// parameters; the rest cover common fixtures like flat fields and
// crowded star fields.
var Presets = map[string]*Scene{
	"4gaussians": {
		Name: "4gaussians", Width: 200, Height: 100, Seed: 12345, Oversample: 1,
		Background: &noise.Config{Distribution: noise.Gaussian, Mean: 5, StdDev: 5},
		Brightness: catalog.ByAmplitude,
		Sources: []catalog.Source{
			{Amplitude: 50, XMean: 160, YMean: 70, XStdDev: 15.2, YStdDev: 2.6, Theta: 145 * math.Pi / 180},
			{Amplitude: 70, XMean: 25, YMean: 40, XStdDev: 5.1, YStdDev: 2.5, Theta: 20 * math.Pi / 180},
			{Amplitude: 150, XMean: 150, YMean: 25, XStdDev: 3, YStdDev: 3, Theta: 0},
			{Amplitude: 210, XMean: 90, YMean: 60, XStdDev: 8.1, YStdDev: 4.7, Theta: 60 * math.Pi / 180},
		},
	},
	"100gaussians": {
		Name: "100gaussians", Width: 500, Height: 300, Seed: 12345, Oversample: 1,
		Background: &noise.Config{Distribution: noise.Gaussian, Mean: 5, StdDev: 2},
		Random: &RandomSources{
			Count: 100,
			Ranges: catalog.Ranges{
				Flux:    &catalog.Range{Min: 500, Max: 1000},
				X:       catalog.Range{Max: 500},
				Y:       catalog.Range{Max: 300},
				XStdDev: catalog.Range{Min: 1, Max: 5},
				YStdDev: catalog.Range{Min: 1, Max: 5},
			},
		},
	},
	"sparse": {
		Name: "sparse", Width: 512, Height: 512, Seed: 7, Oversample: 4,
		Background: &noise.Config{Distribution: noise.Gaussian, Mean: 10, StdDev: 3},
		Random: &RandomSources{
			Count: 25,
			Ranges: catalog.Ranges{
				Flux:    &catalog.Range{Min: 1000, Max: 5000},
				X:       catalog.Range{Max: 512},
				Y:       catalog.Range{Max: 512},
				XStdDev: catalog.Range{Min: 1.5, Max: 4},
				YStdDev: catalog.Range{Min: 1.5, Max: 4},
			},
		},
	},
	"crowded": {
		Name: "crowded", Width: 256, Height: 256, Seed: 21, Oversample: 1,
		Background: &noise.Config{Distribution: noise.Gaussian, Mean: 20, StdDev: 4},
		Random: &RandomSources{
			Count: 400,
			Ranges: catalog.Ranges{
				Flux:    &catalog.Range{Min: 100, Max: 800},
				X:       catalog.Range{Max: 256},
				Y:       catalog.Range{Max: 256},
				XStdDev: catalog.Range{Min: 1, Max: 3},
				YStdDev: catalog.Range{Min: 1, Max: 3},
			},
		},
	},
	"flat": {
		Name: "flat", Width: 128, Height: 128, Seed: 3, Oversample: 1,
		Background: &noise.Config{Distribution: noise.Poisson, Mean: 1000},
	},
	"deep": {
		Name: "deep", Width: 300, Height: 300, Seed: 11, Oversample: 1,
		Unit:       "electron",
		Background: &noise.Config{Distribution: noise.Gaussian, Mean: 100, StdDev: 0},
		ShotNoise:  true,
		Random: &RandomSources{
			Count: 60,
			Ranges: catalog.Ranges{
				Flux:    &catalog.Range{Min: 2000, Max: 10000},
				X:       catalog.Range{Max: 300},
				Y:       catalog.Range{Max: 300},
				XStdDev: catalog.Range{Min: 1, Max: 4},
				YStdDev: catalog.Range{Min: 1, Max: 4},
			},
		},
	},
}

func GetPreset(name string) *Scene {
	s, ok := Presets[name]
	if !ok {
		return nil
	}
	return s
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
