// Package profile provides continuous 2D source profiles and their
// discretization onto pixel grids.
//
// Profiles are evaluated in pixel coordinates, where pixel (i, j) has
// its center at x=i, y=j:
//
//   - [Gaussian2D]: elliptical Gaussian with an arbitrary rotation angle
//   - [Discretize]: point-sampled or oversampled rendering onto a grid
//
// # Flux vs Amplitude
//
// A source can be specified by its peak amplitude or by its total flux.
// For a Gaussian the two are related by
//
//	amplitude = flux / (2 * pi * xstddev * ystddev)
//
// # Sampling
//
// Point sampling evaluates the profile once per pixel center and does
// not conserve the total flux of sources narrower than about a pixel.
// Oversampled rendering averages the profile over an NxN subpixel grid
// and should be used for very small sources:
//
//	profile.Discretize(img, src, 10)
package profile
