/*
Package image implements the UDG image decoder and encoder.

The file is a 12 byte header followed by the pixels. The header holds the
width and height in pixels as big-endian 32-bit signed integers followed by
the pixel aspect ratio as a big-endian 32-bit IEEE-754 float. Each pixel is
then stored as one byte, row by row, so the file is exactly 12 + width *
height bytes in size. There is no compression or signature.
*/
package image

import "github.com/bodgit/udg/raster"

const (
	headerSize = 12
	tileSize   = raster.TileSize

	// MaxSize is the largest width or height accepted when decoding
	MaxSize = 4096
)

type header struct {
	Width  int32
	Height int32
	Ratio  float32
}

// Config holds the dimensions and pixel aspect ratio of an image without
// decoding the pixels
type Config struct {
	Width, Height int
	Ratio         raster.Ratio
}
