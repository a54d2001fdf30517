// Package stats computes summary statistics over images.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/skysynth/internal/grid"
)

// Summary holds the headline statistics of one image.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	Sum    float64
}

// Compute returns the summary statistics of g.
func Compute(g *grid.Grid) Summary {
	pix := append([]float64(nil), g.Pix...)
	sort.Float64s(pix)
	return Summary{
		Mean:   stat.Mean(pix, nil),
		Median: stat.Quantile(0.5, stat.Empirical, pix, nil),
		StdDev: stat.StdDev(pix, nil),
		Min:    pix[0],
		Max:    pix[len(pix)-1],
		Sum:    g.Sum(),
	}
}

// ClippedStats holds statistics after iterative sigma clipping.
type ClippedStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Iters  int
	Kept   int
}

// SigmaClipped iteratively rejects pixels more than sigma standard
// deviations from the median and recomputes on the survivors. It
// stops when an iteration rejects nothing or maxIters is reached.
// This estimates the background level of an image with sources in it.
func SigmaClipped(g *grid.Grid, sigma float64, maxIters int) (ClippedStats, error) {
	if sigma <= 0 {
		return ClippedStats{}, fmt.Errorf("stats: sigma must be positive, got %v", sigma)
	}
	if maxIters < 1 {
		return ClippedStats{}, fmt.Errorf("stats: maxIters must be >= 1, got %d", maxIters)
	}

	pix := append([]float64(nil), g.Pix...)
	sort.Float64s(pix)

	iters := 0
	for ; iters < maxIters && len(pix) > 1; iters++ {
		med := stat.Quantile(0.5, stat.Empirical, pix, nil)
		sd := stat.StdDev(pix, nil)
		lo := med - sigma*sd
		hi := med + sigma*sd

		start := sort.SearchFloat64s(pix, lo)
		end := sort.Search(len(pix), func(i int) bool { return pix[i] > hi })
		if start == 0 && end == len(pix) {
			break
		}
		pix = pix[start:end]
	}

	cs := ClippedStats{
		Mean:   stat.Mean(pix, nil),
		Median: stat.Quantile(0.5, stat.Empirical, pix, nil),
		Iters:  iters,
		Kept:   len(pix),
	}
	if len(pix) > 1 {
		cs.StdDev = stat.StdDev(pix, nil)
	}
	return cs, nil
}

// Histogram is a set of equal width bins over the pixel values.
// Edges has one more entry than Counts.
type Histogram struct {
	Edges  []float64
	Counts []float64
}

// ComputeHistogram bins the pixels of g into the given number of
// equal width bins spanning the full value range. A constant image
// collapses to a single bin.
func ComputeHistogram(g *grid.Grid, bins int) (Histogram, error) {
	if bins < 1 {
		return Histogram{}, fmt.Errorf("stats: bins must be >= 1, got %d", bins)
	}

	pix := append([]float64(nil), g.Pix...)
	sort.Float64s(pix)
	lo, hi := pix[0], pix[len(pix)-1]

	if lo == hi {
		return Histogram{
			Edges:  []float64{lo, math.Nextafter(hi, math.Inf(1))},
			Counts: []float64{float64(len(pix))},
		}, nil
	}

	edges := make([]float64, bins+1)
	step := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + step*float64(i)
	}
	// Nudge the top edge so the maximum lands in the last bin.
	edges[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, edges, pix, nil)
	return Histogram{Edges: edges, Counts: counts}, nil
}
