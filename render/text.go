package render

import (
	"bufio"
	"io"

	"github.com/bodgit/udg/raster"
)

const (
	setRune   = '#'
	clearRune = '.'
)

// WriteText writes r to w as lines of text, one character per pixel
func WriteText(w io.Writer, r *raster.Raster) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			c := byte(clearRune)
			if r.Pixel(x, y) == raster.Foreground {
				c = setRune
			}
			if err := bw.WriteByte(c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
