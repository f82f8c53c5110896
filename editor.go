package udg

import (
	"errors"
	"fmt"
	"log"

	"github.com/bodgit/udg/raster"
	"github.com/bodgit/udg/render"
	"github.com/bodgit/udg/tile"
)

const (
	// MaxWidthTiles is the widest image that can be created or resized to
	MaxWidthTiles = 40
	// MaxHeightTiles is the tallest image that can be created or resized to
	MaxHeightTiles = 25
)

var (
	// ErrNoImage is returned by commands that need an image before one has
	// been created or opened
	ErrNoImage = errors.New("udg: no image")
	// ErrTileRange is returned when an image size is outside of 1x1 to
	// MaxWidthTiles x MaxHeightTiles
	ErrTileRange = errors.New("udg: image size out of range")
)

// Editor is a single editing session. It owns the current raster and is
// changed only by the commands passed to Do. It is not safe for concurrent
// use.
type Editor struct {
	raster *raster.Raster
	canvas *render.Canvas
	colour uint8
	logger *log.Logger
}

// NewEditor returns an editor with no image, painting in the foreground color
func NewEditor(logger *log.Logger) *Editor {
	return &Editor{
		canvas: render.NewCanvas(),
		colour: raster.Foreground,
		logger: logger,
	}
}

// Do executes each command in turn, stopping at the first error
func (e *Editor) Do(cmds ...Command) error {
	for _, c := range cmds {
		if err := c.Execute(e); err != nil {
			return err
		}
	}
	return nil
}

// Raster returns the current raster, or nil if there is no image. It must
// not be modified directly.
func (e *Editor) Raster() *raster.Raster {
	return e.raster
}

// Ratio returns the pixel aspect ratio of the current image
func (e *Editor) Ratio() raster.Ratio {
	return e.canvas.Ratio
}

// Colour returns the pixel value used for painting
func (e *Editor) Colour() uint8 {
	return e.colour
}

// Zoom returns the display zoom factor
func (e *Editor) Zoom() float64 {
	return e.canvas.Zoom
}

// Canvas returns a copy of the canvas the current image is displayed on
func (e *Editor) Canvas() render.Canvas {
	return *e.canvas
}

// Export returns the block text of the current image
func (e *Editor) Export() string {
	if e.raster == nil {
		return ""
	}
	return tile.Export(e.raster)
}

// Status describes the current image followed by its block text
func (e *Editor) Status() string {
	if e.raster == nil {
		return " "
	}
	tx, ty := e.raster.Tiles()
	return fmt.Sprintf("%dx%d px (%dx%d chars), %s\n%s", e.raster.Width(), e.raster.Height(), tx, ty, e.canvas.Ratio, e.Export())
}

func checkTiles(width, height int) error {
	if width < 1 || width > MaxWidthTiles || height < 1 || height > MaxHeightTiles {
		return ErrTileRange
	}
	return nil
}
