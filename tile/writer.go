package tile

import (
	"io"
	"strconv"
	"strings"

	"github.com/bodgit/udg/raster"
)

func packHalf(r *raster.Raster, x, y int) uint32 {
	var v uint32
	for dy := 0; dy < halfHeight; dy++ {
		for dx := 0; dx < tileWidth; dx++ {
			v <<= 1
			if r.Pixel(x+dx, y+dy) > 0 {
				v |= 1
			}
		}
	}
	return v
}

// Pack returns the block table of r
func Pack(r *raster.Raster) Table {
	tx, ty := r.Tiles()
	t := make(Table, ty)
	for y := range t {
		t[y] = make([]Block, tx)
		for x := range t[y] {
			t[y][x] = Block{
				Top:    packHalf(r, x*tileWidth, y*tileHeight),
				Bottom: packHalf(r, x*tileWidth, y*tileHeight+halfHeight),
			}
		}
	}
	return t
}

func formatWord(v uint64) string {
	s := strconv.FormatUint(v, 16)
	if len(s) > maxDigits {
		s = s[:maxDigits]
	}
	return s
}

func writeWord(b *strings.Builder, v uint32) {
	b.WriteByte(openBrace)
	b.WriteByte(sigil)
	b.WriteString(formatWord(uint64(v)))
	b.WriteByte(closeBrace)
}

func (t Table) String() string {
	var b strings.Builder
	for y, row := range t {
		if y > 0 {
			b.WriteString(rowSeparator)
		}
		for x, block := range row {
			if x > 0 {
				b.WriteByte(separator)
			}
			writeWord(&b, block.Top)
			b.WriteByte(separator)
			writeWord(&b, block.Bottom)
		}
	}
	return b.String()
}

// Export returns the block text of r
func Export(r *raster.Raster) string {
	return Pack(r).String()
}

// Encode writes the block text of r to w
func Encode(w io.Writer, r *raster.Raster) error {
	_, err := io.WriteString(w, Export(r))
	return err
}
