package profile

import (
	"fmt"

	"github.com/san-kum/skysynth/internal/grid"
)

// Discretize evaluates p on every pixel of g and accumulates the result
// in place. A factor of 1 samples p at pixel centers. Larger factors
// average p over a factor x factor subpixel grid per pixel, which
// preserves total flux for sources narrower than a pixel.
func Discretize(g *grid.Grid, p Profile, factor int) error {
	if factor < 1 {
		return fmt.Errorf("profile: oversample factor must be >= 1, got %d", factor)
	}

	if factor == 1 {
		for y := 0; y < g.Height; y++ {
			row := y * g.Width
			fy := float64(y)
			for x := 0; x < g.Width; x++ {
				g.Pix[row+x] += p.Eval(float64(x), fy)
			}
		}
		return nil
	}

	// Subpixel k of pixel i has its center at i - 0.5 + (k+0.5)/factor.
	inv := 1.0 / float64(factor)
	norm := inv * inv
	for y := 0; y < g.Height; y++ {
		row := y * g.Width
		for x := 0; x < g.Width; x++ {
			sum := 0.0
			for sy := 0; sy < factor; sy++ {
				yy := float64(y) - 0.5 + (float64(sy)+0.5)*inv
				for sx := 0; sx < factor; sx++ {
					xx := float64(x) - 0.5 + (float64(sx)+0.5)*inv
					sum += p.Eval(xx, yy)
				}
			}
			g.Pix[row+x] += sum * norm
		}
	}
	return nil
}
