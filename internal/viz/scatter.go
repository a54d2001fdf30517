package viz

import "github.com/san-kum/skysynth/internal/catalog"

// Scatter plots source positions as braille dots on a cols x rows
// character canvas. The image extent (imgW, imgH) maps onto the full
// canvas with y increasing upward.
func Scatter(cat *catalog.Catalog, cols, rows, imgW, imgH int) string {
	c := NewCanvas(cols, rows)
	if imgW < 1 || imgH < 1 {
		return c.String()
	}

	dotsX := cols * 2
	dotsY := rows * 4
	for _, s := range cat.Sources {
		x := int(s.XMean / float64(imgW) * float64(dotsX))
		y := int(s.YMean / float64(imgH) * float64(dotsY))
		c.Set(x, dotsY-1-y)
	}
	return c.String()
}
