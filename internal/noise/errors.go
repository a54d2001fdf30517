package noise

import "errors"

var (
	// ErrUnknownDistribution indicates a distribution name that is
	// neither gaussian nor poisson.
	ErrUnknownDistribution = errors.New("noise: unknown distribution")

	// ErrNegativeStdDev indicates a Gaussian stddev below zero.
	ErrNegativeStdDev = errors.New("noise: stddev must be non-negative")

	// ErrNegativeMean indicates a Poisson mean below zero.
	ErrNegativeMean = errors.New("noise: poisson mean must be non-negative")

	// ErrNegativeData indicates input pixels below zero, which cannot
	// serve as Poisson expectations.
	ErrNegativeData = errors.New("noise: data must not contain negative values")
)
