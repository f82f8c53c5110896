package image

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/bodgit/udg/raster"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(r *raster.Raster, ratio raster.Ratio) error {
	h := header{
		Width:  int32(r.Width()),
		Height: int32(r.Height()),
		Ratio:  float32(ratio),
	}
	if err := binary.Write(e.w, binary.BigEndian, &h); err != nil {
		return err
	}

	row := make([]byte, r.Width())
	for y := 0; y < r.Height(); y++ {
		for x := range row {
			row[x] = r.Pixel(x, y)
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the raster r with the pixel aspect ratio to w in UDG format.
// An unsupported ratio is normalized first.
func Encode(w io.Writer, r *raster.Raster, ratio raster.Ratio) error {
	if !ratio.Valid() {
		ratio = raster.NormalizeRatio(float32(ratio))
	}

	e := encoder{w: w}

	return e.encode(r, ratio)
}

// Marshal returns the raster r with the pixel aspect ratio in UDG format
func Marshal(r *raster.Raster, ratio raster.Ratio) []byte {
	b := bytes.NewBuffer(make([]byte, 0, headerSize+r.Width()*r.Height()))
	// Writing to a bytes.Buffer can't fail
	_ = Encode(b, r, ratio)
	return b.Bytes()
}
