package udg

import (
	"image"
	"io"

	udgimage "github.com/bodgit/udg/image"
	"github.com/bodgit/udg/raster"
)

// Command changes the state of an editor
type Command interface {
	Execute(e *Editor) error
}

// NewImage replaces the current image with a blank one. A zero Ratio means
// raster.Normal.
type NewImage struct {
	WidthTiles, HeightTiles int
	Ratio                   raster.Ratio
}

// Execute implements Command
func (c NewImage) Execute(e *Editor) error {
	if err := checkTiles(c.WidthTiles, c.HeightTiles); err != nil {
		return err
	}
	r, err := raster.NewTiles(c.WidthTiles, c.HeightTiles)
	if err != nil {
		return err
	}
	e.raster = r
	e.canvas.Ratio = raster.Normal
	if c.Ratio != 0 {
		e.canvas.Ratio = raster.NormalizeRatio(float32(c.Ratio))
	}
	e.logger.Printf("New %dx%d image\n", r.Width(), r.Height())
	return nil
}

// Resize changes the size of the current image, keeping its contents centred.
// Nothing changes if the size is the same. A zero Ratio keeps the current
// ratio.
type Resize struct {
	WidthTiles, HeightTiles int
	Ratio                   raster.Ratio
}

// Execute implements Command
func (c Resize) Execute(e *Editor) error {
	if e.raster == nil {
		return ErrNoImage
	}
	if err := checkTiles(c.WidthTiles, c.HeightTiles); err != nil {
		return err
	}
	if tx, ty := e.raster.Tiles(); tx != c.WidthTiles || ty != c.HeightTiles {
		r, err := e.raster.ResizeTo(c.WidthTiles*raster.TileSize, c.HeightTiles*raster.TileSize)
		if err != nil {
			return err
		}
		e.logger.Printf("Resized %dx%d image to %dx%d\n", e.raster.Width(), e.raster.Height(), r.Width(), r.Height())
		e.raster = r
	}
	if c.Ratio != 0 {
		e.canvas.Ratio = raster.NormalizeRatio(float32(c.Ratio))
	}
	return nil
}

// SetColour selects the pixel value used for painting. Anything other than 0
// or 1 is ignored.
type SetColour struct {
	Index uint8
}

// Execute implements Command
func (c SetColour) Execute(e *Editor) error {
	if c.Index <= raster.Foreground {
		e.colour = c.Index
	}
	return nil
}

// Paint sets the pixel at (X, Y) to the current colour. Coordinates outside
// of the image are ignored.
type Paint struct {
	X, Y int
}

// Execute implements Command
func (c Paint) Execute(e *Editor) error {
	if e.raster == nil {
		return ErrNoImage
	}
	e.raster.SetPixel(c.X, c.Y, e.colour)
	return nil
}

// Click paints the pixel under the point At in a pane of size Pane with the
// image displayed centred in it. Points outside of the image are ignored.
type Click struct {
	Pane, At image.Point
}

// Execute implements Command
func (c Click) Execute(e *Editor) error {
	if e.raster == nil {
		return ErrNoImage
	}
	if x, y, ok := e.canvas.PixelAt(c.Pane, c.At, e.raster); ok {
		e.raster.SetPixel(x, y, e.colour)
	}
	return nil
}

// SetZoom changes the display zoom factor, see render.Canvas.SetZoom
type SetZoom struct {
	Zoom float64
}

// Execute implements Command
func (c SetZoom) Execute(e *Editor) error {
	e.canvas.SetZoom(c.Zoom)
	return nil
}

// SetRatio changes the pixel aspect ratio
type SetRatio struct {
	Ratio raster.Ratio
}

// Execute implements Command
func (c SetRatio) Execute(e *Editor) error {
	e.canvas.Ratio = raster.NormalizeRatio(float32(c.Ratio))
	return nil
}

// Open replaces the current image with one read from Reader. On error the
// current image is left untouched.
type Open struct {
	Reader io.Reader
}

// Execute implements Command
func (c Open) Execute(e *Editor) error {
	r, ratio, err := udgimage.Decode(c.Reader)
	if err != nil {
		return err
	}
	e.raster, e.canvas.Ratio = r, ratio
	e.logger.Printf("Opened %dx%d image\n", r.Width(), r.Height())
	return nil
}

// Save writes the current image to Writer
type Save struct {
	Writer io.Writer
}

// Execute implements Command
func (c Save) Execute(e *Editor) error {
	if e.raster == nil {
		return ErrNoImage
	}
	return udgimage.Encode(c.Writer, e.raster, e.canvas.Ratio)
}
