package viz

import (
	"math"
	"strings"

	"github.com/san-kum/skysynth/internal/export"
	"github.com/san-kum/skysynth/internal/grid"
)

// shadeRamp orders glyphs from faint to bright.
var shadeRamp = []rune(" .:-=+*#%@")

// Render draws g as character art at most cols characters wide. The
// image is stretched like a PNG export, then block averaged into
// cells. Terminal cells are roughly twice as tall as wide, so each
// cell bins twice as many rows as columns to keep the aspect.
func Render(g *grid.Grid, cols int, stretch export.Stretch) (string, error) {
	img, err := export.Gray(g, stretch)
	if err != nil {
		return "", err
	}

	if cols < 1 {
		cols = 1
	}
	sx := (g.Width + cols - 1) / cols
	if sx < 1 {
		sx = 1
	}
	sy := 2 * sx

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	var b strings.Builder
	for top := 0; top < h; top += sy {
		for left := 0; left < w; left += sx {
			sum, n := 0, 0
			for y := top; y < top+sy && y < h; y++ {
				for x := left; x < left+sx && x < w; x++ {
					sum += int(img.GrayAt(x, y).Y)
					n++
				}
			}
			idx := (sum / n) * len(shadeRamp) / 256
			if idx >= len(shadeRamp) {
				idx = len(shadeRamp) - 1
			}
			b.WriteRune(shadeRamp[idx])
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// HistogramStrip renders bin counts as a one line bar strip. Counts
// are log scaled because sky histograms pile up in the background
// bins.
func HistogramStrip(counts []float64, width int) string {
	if width < 1 {
		return ""
	}
	if len(counts) == 0 {
		return strings.Repeat("─", width)
	}

	bars := []rune("▁▂▃▄▅▆▇█")

	max := 0.0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return strings.Repeat(string(bars[0]), width)
	}

	logMax := math.Log1p(max)
	var b strings.Builder
	for i := 0; i < width; i++ {
		c := counts[i*len(counts)/width]
		norm := math.Log1p(c) / logMax
		idx := int(norm * float64(len(bars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(bars) {
			idx = len(bars) - 1
		}
		b.WriteRune(bars[idx])
	}
	return b.String()
}
