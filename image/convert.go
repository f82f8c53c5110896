package image

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/udg/raster"
	"github.com/ericpauley/go-quantize/quantize"
)

const colors = 2

func luma(c color.Color) uint16 {
	return color.Gray16Model.Convert(c).(color.Gray16).Y
}

// The lighter of two colors is the foreground, a lone color (or two of the
// same brightness) is the foreground only if it's closer to white than black
func foreground(p color.Palette) []bool {
	fg := make([]bool, len(p))
	switch len(p) {
	case 0:
	case 1:
		fg[0] = luma(p[0]) >= 0x8000
	default:
		switch l0, l1 := luma(p[0]), luma(p[1]); {
		case l0 > l1:
			fg[0] = true
		case l0 < l1:
			fg[1] = true
		default:
			fg[0] = l0 >= 0x8000
			fg[1] = fg[0]
		}
	}
	return fg
}

// FromImage converts m into a raster, reducing it to two colors first if
// necessary. The raster is rounded up to whole tiles with m in the top-left
// corner.
func FromImage(m image.Image) (*raster.Raster, error) {
	b := m.Bounds()
	if b.Empty() || b.Dx() > MaxSize || b.Dy() > MaxSize {
		return nil, errBadSize
	}

	r, err := raster.New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > colors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	fg := foreground(pm.Palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if i := int(pm.ColorIndexAt(x, y)); i < len(fg) && fg[i] {
				r.SetPixel(x-b.Min.X, y-b.Min.Y, raster.Foreground)
			}
		}
	}

	return r, nil
}
