package tile

import (
	"errors"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/bodgit/udg/raster"
)

var (
	errEmpty      = errors.New("tile: no blocks")
	errBadGroup   = errors.New("tile: malformed block")
	errOddGroups  = errors.New("tile: odd number of blocks in row")
	errRaggedRows = errors.New("tile: rows differ in length")
)

func parseWord(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != openBrace || s[len(s)-1] != closeBrace {
		return 0, errBadGroup
	}
	s = strings.TrimSpace(s[1 : len(s)-1])
	if len(s) < 2 || s[0] != sigil || len(s)-1 > maxDigits {
		return 0, errBadGroup
	}
	v, err := strconv.ParseUint(s[1:], 16, halfBits)
	if err != nil {
		return 0, errBadGroup
	}
	return uint32(v), nil
}

func parseRow(s string) ([]Block, error) {
	groups := strings.Split(strings.TrimSuffix(strings.TrimSpace(s), string(separator)), string(separator))
	if len(groups)&1 != 0 {
		return nil, errOddGroups
	}
	row := make([]Block, 0, len(groups)>>1)
	for i := 0; i < len(groups); i += 2 {
		top, err := parseWord(groups[i])
		if err != nil {
			return nil, err
		}
		bottom, err := parseWord(groups[i+1])
		if err != nil {
			return nil, err
		}
		row = append(row, Block{Top: top, Bottom: bottom})
	}
	return row, nil
}

// ParseTable parses block text back into a table. Blank lines are ignored.
func ParseTable(s string) (Table, error) {
	var t Table
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, err
		}
		if len(t) > 0 && len(row) != len(t[0]) {
			return nil, errRaggedRows
		}
		t = append(t, row)
	}
	if len(t) == 0 {
		return nil, errEmpty
	}
	return t, nil
}

func unpackHalf(r *raster.Raster, x, y int, v uint32) {
	for dy := 0; dy < halfHeight; dy++ {
		for dx := 0; dx < tileWidth; dx++ {
			r.SetPixel(x+dx, y+dy, uint8(v>>(halfBits-1)&1))
			v <<= 1
		}
	}
}

// Raster returns the raster described by the table
func (t Table) Raster() (*raster.Raster, error) {
	if len(t) == 0 || len(t[0]) == 0 {
		return nil, errEmpty
	}
	r, err := raster.NewTiles(len(t[0]), len(t))
	if err != nil {
		return nil, err
	}
	for y, row := range t {
		if len(row) != len(t[0]) {
			return nil, errRaggedRows
		}
		for x, block := range row {
			unpackHalf(r, x*tileWidth, y*tileHeight, block.Top)
			unpackHalf(r, x*tileWidth, y*tileHeight+halfHeight, block.Bottom)
		}
	}
	return r, nil
}

// Parse is the inverse of Export, the dimensions of the raster are implied by
// the number of rows and blocks per row
func Parse(s string) (*raster.Raster, error) {
	t, err := ParseTable(s)
	if err != nil {
		return nil, err
	}
	return t.Raster()
}

// Decode reads block text from r
func Decode(r io.Reader) (*raster.Raster, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}
