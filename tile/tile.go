/*
Package tile implements the textual block export of a raster.

Each 8 by 8 tile is split into a top and bottom half of 8 by 4 pixels. Each
half is packed into a 32-bit word, most significant bit first, reading the
pixels left to right and top to bottom. Words are written as unpadded
lowercase hexadecimal prefixed with '&' and wrapped in braces:

	{&ff818181},{&818181ff},{&0},{&0},
	{&0},{&0},{&18000000},{&18}

The two halves of a tile and the tiles of a row are separated by commas, rows
of tiles are separated by a comma and a newline.
*/
package tile

import "github.com/bodgit/udg/raster"

const (
	tileWidth  = raster.TileSize
	tileHeight = tileWidth
	halfHeight = tileHeight >> 1
	halfBits   = tileWidth * halfHeight
	maxDigits  = halfBits >> 2

	sigil        = '&'
	openBrace    = '{'
	closeBrace   = '}'
	separator    = ','
	rowSeparator = ",\n"
)

// Block is the packed top and bottom halves of a single tile
type Block struct {
	Top, Bottom uint32
}

// Table is every block of a raster, indexed by tile row then tile column
type Table [][]Block

// Groups returns the number of words in the table, two for every tile
func (t Table) Groups() (n int) {
	for _, row := range t {
		n += len(row) << 1
	}
	return
}
