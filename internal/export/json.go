package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/skysynth/internal/catalog"
	"github.com/san-kum/skysynth/internal/config"
	"github.com/san-kum/skysynth/internal/grid"
)

// ExportData is the JSON shape of a complete dataset: scene
// parameters, the source catalog and the pixel rows.
type ExportData struct {
	Name       string             `json:"name"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	Seed       int64              `json:"seed"`
	Oversample int                `json:"oversample"`
	Unit       string             `json:"unit,omitempty"`
	Brightness catalog.Brightness `json:"brightness"`
	Sources    []catalog.Source   `json:"sources"`
	Pixels     [][]float64        `json:"pixels"`
}

// WriteJSON writes the dataset as one indented JSON document. Pixels
// are grouped into rows, bottom row first.
func WriteJSON(w io.Writer, scene *config.Scene, img *grid.Grid, cat *catalog.Catalog) error {
	rows := make([][]float64, img.Height)
	for y := range rows {
		rows[y] = img.Pix[y*img.Width : (y+1)*img.Width]
	}

	data := ExportData{
		Name:       scene.Name,
		Width:      img.Width,
		Height:     img.Height,
		Seed:       scene.Seed,
		Oversample: scene.Oversample,
		Unit:       scene.Unit,
		Brightness: cat.Brightness,
		Sources:    cat.Sources,
		Pixels:     rows,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
