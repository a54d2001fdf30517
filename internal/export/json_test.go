package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/san-kum/skysynth/internal/catalog"
	"github.com/san-kum/skysynth/internal/config"
	"github.com/san-kum/skysynth/internal/grid"
)

func TestWriteJSON(t *testing.T) {
	g := grid.New(3, 2)
	for i := range g.Pix {
		g.Pix[i] = float64(i)
	}
	cat := &catalog.Catalog{
		Brightness: catalog.ByFlux,
		Sources:    []catalog.Source{{Flux: 500, XMean: 1, YMean: 1, XStdDev: 1, YStdDev: 1}},
	}
	scene := &config.Scene{Name: "tiny", Width: 3, Height: 2, Seed: 4, Oversample: 1}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, scene, g, cat); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != "tiny" || got.Width != 3 || got.Height != 2 {
		t.Errorf("header = %+v", got)
	}
	if got.Brightness != catalog.ByFlux {
		t.Errorf("brightness = %q, want flux", got.Brightness)
	}
	if len(got.Sources) != 1 || got.Sources[0].Flux != 500 {
		t.Errorf("sources = %+v", got.Sources)
	}
	if len(got.Pixels) != 2 || len(got.Pixels[0]) != 3 {
		t.Fatalf("pixel rows = %dx%d, want 2x3", len(got.Pixels), len(got.Pixels[0]))
	}
	if got.Pixels[1][2] != 5 {
		t.Errorf("pixel (2,1) = %v, want 5", got.Pixels[1][2])
	}
}
