package synth

import "github.com/san-kum/skysynth/internal/config"

// FourGaussians renders the classic demonstration image: four
// elliptical Gaussians of varying width and orientation on a noisy
// 200x100 background.
func FourGaussians() (*Dataset, error) {
	return Build(config.GetPreset("4gaussians"))
}

// HundredGaussians renders a 500x300 field of 100 random sources with
// fluxes between 500 and 1000 on a gentle noise floor.
func HundredGaussians() (*Dataset, error) {
	return Build(config.GetPreset("100gaussians"))
}
