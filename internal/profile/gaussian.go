package profile

import "math"

// Profile is a continuous function of pixel coordinates.
type Profile interface {
	Eval(x, y float64) float64
}

// Gaussian2D is an elliptical two-dimensional Gaussian. Theta is the
// rotation of the x-stddev axis in radians, measured counterclockwise
// from the positive x axis.
type Gaussian2D struct {
	Amplitude float64
	XMean     float64
	YMean     float64
	XStdDev   float64
	YStdDev   float64
	Theta     float64
}

// AmplitudeFromFlux converts a total flux into the peak amplitude of a
// Gaussian with the given widths.
func AmplitudeFromFlux(flux, xstddev, ystddev float64) float64 {
	return flux / (2 * math.Pi * xstddev * ystddev)
}

func (g Gaussian2D) Eval(x, y float64) float64 {
	cost := math.Cos(g.Theta)
	sint := math.Sin(g.Theta)
	cost2 := cost * cost
	sint2 := sint * sint
	sin2t := math.Sin(2 * g.Theta)
	xstd2 := g.XStdDev * g.XStdDev
	ystd2 := g.YStdDev * g.YStdDev

	a := 0.5 * (cost2/xstd2 + sint2/ystd2)
	b := 0.5 * (sin2t/xstd2 - sin2t/ystd2)
	c := 0.5 * (sint2/xstd2 + cost2/ystd2)

	dx := x - g.XMean
	dy := y - g.YMean
	return g.Amplitude * math.Exp(-(a*dx*dx + b*dx*dy + c*dy*dy))
}

// TotalFlux returns the analytic integral of the Gaussian over the
// whole plane.
func (g Gaussian2D) TotalFlux() float64 {
	return g.Amplitude * 2 * math.Pi * g.XStdDev * g.YStdDev
}
