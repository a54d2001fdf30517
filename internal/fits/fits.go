// Package fits reads and writes images as single-HDU FITS files.
package fits

import (
	"errors"
	"fmt"
	"io"

	"github.com/astrogo/fitsio"

	"github.com/san-kum/skysynth/internal/grid"
)

// imageBitpix is IEEE double precision, the only pixel format used
// for generated images.
const imageBitpix = -64

// WriteImage writes g as the primary HDU with any extra header cards
// appended after the mandatory ones.
func WriteImage(w io.Writer, g *grid.Grid, cards ...fitsio.Card) error {
	f, err := fitsio.Create(w)
	if err != nil {
		return fmt.Errorf("create fits: %w", err)
	}

	img := fitsio.NewImage(imageBitpix, []int{g.Width, g.Height})
	defer img.Close()

	if err := img.Header().Append(cards...); err != nil {
		f.Close()
		return fmt.Errorf("append header: %w", err)
	}
	if err := img.Write(&g.Pix); err != nil {
		f.Close()
		return fmt.Errorf("write pixels: %w", err)
	}
	if err := f.Write(img); err != nil {
		f.Close()
		return fmt.Errorf("write hdu: %w", err)
	}
	return f.Close()
}

// ReadImage loads the primary HDU written by WriteImage.
func ReadImage(r io.Reader) (*grid.Grid, error) {
	f, err := fitsio.Open(r)
	if err != nil {
		return nil, fmt.Errorf("open fits: %w", err)
	}
	defer f.Close()

	img, ok := f.HDU(0).(fitsio.Image)
	if !ok {
		return nil, errors.New("fits: primary HDU is not an image")
	}
	hdr := img.Header()
	if hdr.Bitpix() != imageBitpix {
		return nil, fmt.Errorf("fits: unsupported bitpix %d (expected %d)", hdr.Bitpix(), imageBitpix)
	}
	axes := hdr.Axes()
	if len(axes) != 2 {
		return nil, fmt.Errorf("fits: expected a 2D image, got %d axes", len(axes))
	}
	width, height := axes[0], axes[1]
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("fits: bad image shape %dx%d", width, height)
	}

	g := grid.New(width, height)
	if err := img.Read(&g.Pix); err != nil {
		return nil, fmt.Errorf("read pixels: %w", err)
	}
	return g, nil
}

// WCSCards returns the simplest valid celestial coordinate system for
// an image of the given shape: a tangent plane projection with the
// reference pixel at the image center.
func WCSCards(width, height int) []fitsio.Card {
	return []fitsio.Card{
		{Name: "CTYPE1", Value: "RA---TAN", Comment: "gnomonic projection"},
		{Name: "CTYPE2", Value: "DEC--TAN", Comment: "gnomonic projection"},
		{Name: "CRPIX1", Value: width / 2, Comment: "reference pixel on axis 1"},
		{Name: "CRPIX2", Value: height / 2, Comment: "reference pixel on axis 2"},
		{Name: "CRVAL1", Value: 0.0, Comment: "RA at reference pixel [deg]"},
		{Name: "CRVAL2", Value: 0.0, Comment: "Dec at reference pixel [deg]"},
	}
}

// UnitCard records the physical unit of the pixel values.
func UnitCard(unit string) fitsio.Card {
	return fitsio.Card{Name: "BUNIT", Value: unit, Comment: "unit of the array values"}
}
