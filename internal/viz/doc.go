// Package viz renders images and catalogs in the terminal.
//
// Three renderers cover the common cases:
//
//   - [Render]: character art view of an image through a stretch
//   - [Scatter]: Braille dot plot of catalog source positions
//   - [HistogramStrip]: one line bar strip of a pixel histogram
//
// The lipgloss styles shared by the preview UI also live here.
package viz
