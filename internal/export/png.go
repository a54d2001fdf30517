// Package export renders images to viewable formats.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"

	"github.com/san-kum/skysynth/internal/grid"
)

// Stretch maps normalized pixel values onto display intensity. Sky
// images have a few very bright pixels over a faint background, so a
// nonlinear stretch is usually what you want.
type Stretch string

const (
	Linear Stretch = "linear"
	Sqrt   Stretch = "sqrt"
	Log    Stretch = "log"
	Asinh  Stretch = "asinh"
)

// ParseStretch converts a user supplied name into a Stretch.
func ParseStretch(s string) (Stretch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "sqrt":
		return Sqrt, nil
	case "log":
		return Log, nil
	case "asinh":
		return Asinh, nil
	default:
		return "", fmt.Errorf("export: unknown stretch %q (use linear, sqrt, log or asinh)", s)
	}
}

func stretchFunc(s Stretch) (func(float64) float64, error) {
	switch s {
	case Linear:
		return func(v float64) float64 { return v }, nil
	case Sqrt:
		return math.Sqrt, nil
	case Log:
		// log stretch with the conventional a=1000 softening
		norm := math.Log(1001)
		return func(v float64) float64 { return math.Log(1000*v+1) / norm }, nil
	case Asinh:
		norm := math.Asinh(10)
		return func(v float64) float64 { return math.Asinh(v/0.1) / norm }, nil
	default:
		return nil, fmt.Errorf("export: unknown stretch %q (use linear, sqrt, log or asinh)", s)
	}
}

// Gray renders g into an 8-bit grayscale image. Values are min-max
// normalized, passed through the stretch, and the rows are flipped so
// row 0 ends up at the bottom, the usual sky image orientation.
func Gray(g *grid.Grid, stretch Stretch) (*image.Gray, error) {
	fn, err := stretchFunc(stretch)
	if err != nil {
		return nil, err
	}

	lo, hi := g.MinMax()
	span := hi - lo
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := 0.0
			if span > 0 {
				v = fn((g.At(x, y) - lo) / span)
			}
			v = math.Min(math.Max(v, 0), 1)
			img.SetGray(x, g.Height-1-y, color.Gray{Y: uint8(math.Round(v * 255))})
		}
	}
	return img, nil
}

// WritePNG encodes g as a PNG, magnified by the integer scale with
// nearest-neighbor so individual pixels stay visible.
func WritePNG(w io.Writer, g *grid.Grid, stretch Stretch, scale int) error {
	if scale < 1 {
		return fmt.Errorf("export: scale must be >= 1, got %d", scale)
	}
	img, err := Gray(g, stretch)
	if err != nil {
		return err
	}

	out := image.Image(img)
	if scale > 1 {
		dst := image.NewGray(image.Rect(0, 0, g.Width*scale, g.Height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		out = dst
	}
	return png.Encode(w, out)
}
