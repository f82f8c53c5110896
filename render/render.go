/*
Package render draws a raster for display.

The raster itself has no notion of color or scale. Bitmap adapts it to the
standard image interfaces and Canvas scales it by a zoom factor and the
pixel aspect ratio, optionally overlaying a pixel grid, in the same way as
the editing pane of a desktop editor.
*/
package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/bodgit/udg/raster"
	"golang.org/x/image/bmp"
)

// Palette maps pixel values to colors, the background is black
var Palette = color.Palette{color.Black, color.White}

var errUnknownFormat = errors.New("render: unknown output format")

type bitmap struct {
	r *raster.Raster
}

// Bitmap returns r as a paletted image. Pixels are not copied so later
// changes to r are visible through the image.
func Bitmap(r *raster.Raster) image.PalettedImage {
	return bitmap{r}
}

func (b bitmap) ColorModel() color.Model { return Palette }

func (b bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.r.Width(), b.r.Height())
}

func (b bitmap) At(x, y int) color.Color {
	return Palette[b.r.Pixel(x, y)]
}

func (b bitmap) ColorIndexAt(x, y int) uint8 {
	return b.r.Pixel(x, y)
}

// Formats lists the formats understood by Encode
var Formats = []string{"png", "bmp"}

// Encode writes m to w in the named format
func Encode(w io.Writer, m image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, m)
	case "bmp":
		return bmp.Encode(w, m)
	default:
		return errUnknownFormat
	}
}
