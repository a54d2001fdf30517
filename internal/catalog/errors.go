package catalog

import "errors"

var (
	// ErrNoBrightness indicates a catalog with neither a flux nor an
	// amplitude column.
	ErrNoBrightness = errors.New("catalog: either flux or amplitude must be present")

	// ErrBadStdDev indicates a source width that is zero or negative.
	ErrBadStdDev = errors.New("catalog: stddev must be positive")
)
