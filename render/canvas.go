package render

import (
	"image"
	"image/color"
	"math"

	"github.com/bodgit/udg/raster"
	"golang.org/x/image/draw"
)

const (
	// MinZoom and MaxZoom bound the zoom factor
	MinZoom = 0.125
	MaxZoom = 32.0
	// DefaultZoom is the initial zoom factor of a new canvas
	DefaultZoom = 16.0

	// The grid is only drawn above this zoom factor
	gridZoom  = 2.0
	gridAlpha = 0x40
)

var (
	tileLine  = color.NRGBA{0xff, 0xff, 0xff, gridAlpha}
	pixelLine = color.NRGBA{0x80, 0x80, 0x80, gridAlpha}
)

// ZoomLevel is a named zoom factor
type ZoomLevel struct {
	Name string
	Zoom float64
}

// ZoomLevels are the zoom factors offered to a user
var ZoomLevels = []ZoomLevel{
	{"25%", 0.25},
	{"50%", 0.5},
	{"100%", 1},
	{"200%", 2},
	{"400%", 4},
	{"800%", 8},
	{"1600%", 16},
	{"3200%", 32},
}

// Canvas scales a raster for display
type Canvas struct {
	Zoom  float64
	Ratio raster.Ratio
	Grid  bool
}

// NewCanvas returns a canvas at the default zoom with a normal pixel aspect
// ratio and the grid enabled
func NewCanvas() *Canvas {
	return &Canvas{
		Zoom:  DefaultZoom,
		Ratio: raster.Normal,
		Grid:  true,
	}
}

func (c *Canvas) hzoom() float64 {
	return c.Zoom * float64(c.Ratio)
}

// SetZoom moves the zoom factor towards z by halving or doubling it until it
// reaches or passes z. It returns false and does nothing if z is out of range.
func (c *Canvas) SetZoom(z float64) bool {
	if z < MinZoom || z > MaxZoom {
		return false
	}
	switch {
	case c.Zoom <= 0:
		c.Zoom = z
	case z < c.Zoom:
		for c.Zoom > z {
			c.Zoom /= 2
		}
	case z > c.Zoom:
		for c.Zoom < z {
			c.Zoom *= 2
		}
	}
	return true
}

// Size returns the size of r once scaled
func (c *Canvas) Size(r *raster.Raster) image.Point {
	return image.Pt(int(float64(r.Width())*c.hzoom()), int(float64(r.Height())*c.Zoom))
}

func (c *Canvas) drawGrid(m draw.Image, r *raster.Raster) {
	b := m.Bounds()
	hz := c.hzoom()

	line := func(rect image.Rectangle, tile bool) {
		col := pixelLine
		if tile {
			col = tileLine
		}
		draw.Draw(m, rect, image.NewUniform(col), image.Point{}, draw.Over)
	}

	for x := 1; x < r.Width(); x++ {
		dx := int(float64(x) * hz)
		line(image.Rect(dx, b.Min.Y, dx+1, b.Max.Y), x%raster.TileSize == 0)
	}
	for y := 1; y < r.Height(); y++ {
		dy := int(float64(y) * c.Zoom)
		line(image.Rect(b.Min.X, dy, b.Max.X, dy+1), y%raster.TileSize == 0)
	}
}

// Draw returns r scaled by the zoom factor and pixel aspect ratio
func (c *Canvas) Draw(r *raster.Raster) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: c.Size(r)})
	if dst.Bounds().Empty() {
		return dst
	}

	src := Bitmap(r)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if c.Grid && c.Zoom > gridZoom {
		c.drawGrid(dst, r)
	}

	return dst
}

// PixelAt maps the point p within a pane of the given size, with the scaled
// raster centred in it, to raster coordinates
func (c *Canvas) PixelAt(pane, p image.Point, r *raster.Raster) (int, int, bool) {
	size := c.Size(r)
	if size.X <= 0 || size.Y <= 0 {
		return 0, 0, false
	}

	offset := pane.Sub(size).Div(2)
	x := int(math.Floor(float64(p.X-offset.X) / c.hzoom()))
	y := int(math.Floor(float64(p.Y-offset.Y) / c.Zoom))

	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return 0, 0, false
	}
	return x, y, true
}
