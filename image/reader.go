package image

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/bodgit/udg/raster"
)

var (
	errNotEnough = errors.New("image: not enough image data")
	errTooMuch   = errors.New("image: too much image data")
	errBadSize   = errors.New("image: invalid image dimensions")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	config Config
	raster *raster.Raster
}

func validSize(n int32) bool {
	return n > 0 && n <= MaxSize && n%tileSize == 0
}

func (d *decoder) readHeader() error {
	var h header
	if err := binary.Read(d.r, binary.BigEndian, &h); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}

	if !validSize(h.Width) || !validSize(h.Height) {
		return errBadSize
	}

	d.config = Config{
		Width:  int(h.Width),
		Height: int(h.Height),
		Ratio:  raster.NormalizeRatio(h.Ratio),
	}
	return nil
}

func (d *decoder) readPixels() error {
	pix := make([]byte, d.config.Width*d.config.Height)
	if err := readFull(d.r, pix); err != nil {
		return err
	}

	r, err := raster.New(d.config.Width, d.config.Height)
	if err != nil {
		return err
	}

	for i, p := range pix {
		if p != 0 {
			r.SetPixel(i%d.config.Width, i/d.config.Width, raster.Foreground)
		}
	}
	d.raster = r
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if configOnly {
		return nil
	}

	if err := d.readPixels(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	var tmp [1]byte
	if n, err := r.Read(tmp[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	return nil
}

// Decode reads a UDG image from r and returns the raster and its pixel
// aspect ratio
func Decode(r io.Reader) (*raster.Raster, raster.Ratio, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, 0, err
	}
	return d.raster, d.config.Ratio, nil
}

// DecodeConfig returns the dimensions and pixel aspect ratio of a UDG image
// without decoding the pixels.
func DecodeConfig(r io.Reader) (Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return Config{}, err
	}
	return d.config, nil
}

// Unmarshal decodes a UDG image held in b
func Unmarshal(b []byte) (*raster.Raster, raster.Ratio, error) {
	return Decode(bytes.NewReader(b))
}
