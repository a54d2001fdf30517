package viz

import "strings"

// Braille patterns: 2x4 dots per character cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot matrix sized in character cells. The
// drawable area is (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Cells         [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Cells:  make([][]rune, h),
	}
	for i := range c.Cells {
		c.Cells[i] = make([]rune, w)
		for j := range c.Cells[i] {
			c.Cells[i][j] = 0x2800
		}
	}
	return c
}

// Set turns on the dot at (x, y) in dot coordinates. Dots outside the
// canvas are ignored, so callers can plot near edges without clamping.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Cells[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every dot.
func (c *Canvas) Clear() {
	for i := range c.Cells {
		for j := range c.Cells[i] {
			c.Cells[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Cells {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
