package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	colFlux      = "flux"
	colAmplitude = "amplitude"
	colXMean     = "x_mean"
	colYMean     = "y_mean"
	colXStdDev   = "x_stddev"
	colYStdDev   = "y_stddev"
	colTheta     = "theta"
)

// WriteCSV writes the catalog with a header row, brightness column
// first.
func WriteCSV(w io.Writer, c *Catalog) error {
	if c.Brightness != ByFlux && c.Brightness != ByAmplitude {
		return fmt.Errorf("%w (got %q)", ErrNoBrightness, c.Brightness)
	}

	cw := csv.NewWriter(w)
	header := []string{string(c.Brightness), colXMean, colYMean, colXStdDev, colYStdDev, colTheta}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	rec := make([]string, len(header))
	for _, s := range c.Sources {
		b := s.Flux
		if c.Brightness == ByAmplitude {
			b = s.Amplitude
		}
		for i, v := range []float64{b, s.XMean, s.YMean, s.XStdDev, s.YStdDev, s.Theta} {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write source: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a catalog written by WriteCSV or any CSV with the
// conventional column names. A flux column wins over amplitude when
// both appear. Column order does not matter.
func ReadCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var bright Brightness
	if _, ok := idx[colFlux]; ok {
		bright = ByFlux
	} else if _, ok := idx[colAmplitude]; ok {
		bright = ByAmplitude
	} else {
		return nil, ErrNoBrightness
	}
	for _, name := range []string{colXMean, colYMean, colXStdDev, colYStdDev, colTheta} {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("catalog: missing column %q", name)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	c := &Catalog{Brightness: bright, Sources: make([]Source, 0, len(rows))}
	for n, row := range rows {
		get := func(name string) (float64, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx[name]]), 64)
			if err != nil {
				return 0, fmt.Errorf("row %d, column %s: %w", n+1, name, err)
			}
			return v, nil
		}

		var s Source
		fields := []struct {
			name string
			dst  *float64
		}{
			{string(bright), nil},
			{colXMean, &s.XMean},
			{colYMean, &s.YMean},
			{colXStdDev, &s.XStdDev},
			{colYStdDev, &s.YStdDev},
			{colTheta, &s.Theta},
		}
		if bright == ByFlux {
			fields[0].dst = &s.Flux
		} else {
			fields[0].dst = &s.Amplitude
		}
		for _, f := range fields {
			v, err := get(f.name)
			if err != nil {
				return nil, err
			}
			*f.dst = v
		}
		c.Sources = append(c.Sources, s)
	}
	return c, nil
}
