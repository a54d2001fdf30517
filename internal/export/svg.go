package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/skysynth/internal/catalog"
	"github.com/san-kum/skysynth/internal/profile"
)

// ChartSVG draws a finder chart of the catalog: one ellipse per source
// at its one sigma contour, fill opacity scaled by peak amplitude. The
// viewBox is the image pixel frame with the origin at the lower left,
// matching the FITS orientation.
func ChartSVG(cat *catalog.Catalog, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#e8e8e8" stroke="#707070" stroke-width="0.3">
`, width, height, width, height))

	amps := make([]float64, len(cat.Sources))
	maxAmp := 0.0
	for i, s := range cat.Sources {
		amp := s.Amplitude
		if cat.Brightness == catalog.ByFlux {
			amp = profile.AmplitudeFromFlux(s.Flux, s.XStdDev, s.YStdDev)
		}
		amps[i] = amp
		if amp > maxAmp {
			maxAmp = amp
		}
	}

	for i, s := range cat.Sources {
		cx := s.XMean
		cy := float64(height) - s.YMean // svg y grows downward

		opacity := 1.0
		if maxAmp > 0 {
			opacity = 0.15 + 0.85*amps[i]/maxAmp
		}

		// Counterclockwise theta in image coordinates flips sign
		// once y points down.
		deg := -s.Theta * 180 / math.Pi

		sb.WriteString(fmt.Sprintf(`<ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill-opacity="%.2f" transform="rotate(%.1f %.2f %.2f)"/>
`, cx, cy, s.XStdDev, s.YStdDev, opacity, deg, cx, cy))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
