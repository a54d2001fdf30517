package grid

import (
	"fmt"
	"math"
)

// Grid is a 2D image of float64 pixels stored in row-major order.
// Pixel (x, y) has its center at continuous coordinates (x, y);
// row 0 is the bottom row (y = 0) in sky orientation.
type Grid struct {
	Width  int
	Height int
	Pix    []float64
}

func New(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

func (g *Grid) At(x, y int) float64 {
	return g.Pix[y*g.Width+x]
}

func (g *Grid) Set(x, y int, v float64) {
	g.Pix[y*g.Width+x] = v
}

func (g *Grid) Clone() *Grid {
	c := New(g.Width, g.Height)
	copy(c.Pix, g.Pix)
	return c
}

func (g *Grid) Fill(v float64) {
	for i := range g.Pix {
		g.Pix[i] = v
	}
}

// Add accumulates other into g pixel by pixel.
func (g *Grid) Add(other *Grid) error {
	if other.Width != g.Width || other.Height != g.Height {
		return fmt.Errorf("grid: shape mismatch %dx%d vs %dx%d",
			g.Width, g.Height, other.Width, other.Height)
	}
	for i := range g.Pix {
		g.Pix[i] += other.Pix[i]
	}
	return nil
}

func (g *Grid) AddScalar(v float64) {
	for i := range g.Pix {
		g.Pix[i] += v
	}
}

func (g *Grid) Scale(f float64) {
	for i := range g.Pix {
		g.Pix[i] *= f
	}
}

func (g *Grid) Sum() float64 {
	sum := 0.0
	for _, v := range g.Pix {
		sum += v
	}
	return sum
}

func (g *Grid) Mean() float64 {
	if len(g.Pix) == 0 {
		return 0
	}
	return g.Sum() / float64(len(g.Pix))
}

func (g *Grid) MinMax() (min, max float64) {
	if len(g.Pix) == 0 {
		return 0, 0
	}
	min, max = g.Pix[0], g.Pix[0]
	for _, v := range g.Pix {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// IsValid reports whether every pixel is finite.
func (g *Grid) IsValid() bool {
	for _, v := range g.Pix {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
