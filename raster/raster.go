/*
Package raster implements the 1-bit indexed bitmap behind a set of User
Defined Graphics.

A raster is always a whole number of 8 by 8 tiles in each direction; any
requested dimension is rounded up to the next multiple of 8. Each pixel is
either 0, the background, or 1, the foreground.
*/
package raster

import "errors"

const (
	// TileSize is the width and height of a tile in pixels
	TileSize = 8

	// Background is the index of an unset pixel
	Background uint8 = 0
	// Foreground is the index of a set pixel
	Foreground uint8 = 1
)

// ErrInvalidSize is returned when a raster is requested with a non-positive
// width or height
var ErrInvalidSize = errors.New("raster: width and height must be greater than 0")

// Raster is a tile-aligned 1-bit bitmap. The zero value is not usable, use
// New or NewTiles.
type Raster struct {
	width, height int
	pix           []uint8
}

func align(n int) int {
	if mod := n % TileSize; mod != 0 {
		return n + TileSize - mod
	}
	return n
}

// New returns a raster of at least width by height pixels with every pixel
// cleared to the background.
func New(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	width, height = align(width), align(height)
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}, nil
}

// NewTiles returns a raster measured in tiles rather than pixels
func NewTiles(widthTiles, heightTiles int) (*Raster, error) {
	return New(widthTiles*TileSize, heightTiles*TileSize)
}

// Width returns the width in pixels
func (r *Raster) Width() int { return r.width }

// Height returns the height in pixels
func (r *Raster) Height() int { return r.height }

// Tiles returns the number of tiles across and down
func (r *Raster) Tiles() (int, int) {
	return r.width / TileSize, r.height / TileSize
}

func (r *Raster) in(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// Pixel returns the pixel at (x, y), anything outside of the raster reads as
// the background
func (r *Raster) Pixel(x, y int) uint8 {
	if !r.in(x, y) {
		return Background
	}
	return r.pix[y*r.width+x]
}

// SetPixel sets the pixel at (x, y) to v. Coordinates outside of the raster
// or a value other than 0 or 1 are silently ignored.
func (r *Raster) SetPixel(x, y int, v uint8) {
	if !r.in(x, y) || v > Foreground {
		return
	}
	r.pix[y*r.width+x] = v
}

// ResizeTo returns a new raster of the given size with the contents of r
// centred within it. Any part of r that falls outside of the new raster is
// cropped. r is not modified.
func (r *Raster) ResizeTo(width, height int) (*Raster, error) {
	n, err := New(width, height)
	if err != nil {
		return nil, err
	}

	dx := (n.width - r.width) / 2
	dy := (n.height - r.height) / 2

	for y := 0; y < r.height; y++ {
		ny := y + dy
		if ny < 0 || ny >= n.height {
			continue
		}
		for x := 0; x < r.width; x++ {
			n.SetPixel(x+dx, ny, r.pix[y*r.width+x])
		}
	}

	return n, nil
}

// Clone returns a deep copy of r
func (r *Raster) Clone() *Raster {
	dup := *r
	dup.pix = append([]uint8(nil), r.pix...)
	return &dup
}

// Equal reports whether r and o have the same dimensions and pixels
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.width != o.width || r.height != o.height {
		return false
	}
	for i := range r.pix {
		if r.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Count returns the number of foreground pixels
func (r *Raster) Count() (n int) {
	for _, p := range r.pix {
		n += int(p)
	}
	return
}
