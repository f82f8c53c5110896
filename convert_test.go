package udg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	udgimage "github.com/bodgit/udg/image"
	"github.com/bodgit/udg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, file string, encode func(*os.File, image.Image) error) {
	m := image.NewGray(image.Rect(0, 0, 8, 8))
	m.SetGray(2, 3, color.Gray{0xff})
	m.SetGray(5, 6, color.Gray{0xff})

	f, err := os.Create(file)
	require.NoError(t, err)
	require.NoError(t, encode(f, m))
	require.NoError(t, f.Close())
}

func readUDG(t *testing.T, file string) *raster.Raster {
	b, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	r, ratio, err := udgimage.Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, raster.Normal, ratio)
	return r
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0o755))

	encodePNG := func(f *os.File, m image.Image) error { return png.Encode(f, m) }
	encodeBMP := func(f *os.File, m image.Image) error { return bmp.Encode(f, m) }

	writeImage(t, filepath.Join(dir, "a.png"), encodePNG)
	writeImage(t, filepath.Join(dir, "sub", "b.BMP"), encodeBMP)
	writeImage(t, filepath.Join(dir, ".hidden", "c.png"), encodePNG)
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	buf := new(bytes.Buffer)
	u := New(log.New(buf, "", 0))
	require.NoError(t, u.Convert(dir))

	for _, file := range []string{filepath.Join(dir, "a.udg"), filepath.Join(dir, "sub", "b.udg")} {
		r := readUDG(t, file)
		assert.Equal(t, 2, r.Count())
		assert.Equal(t, raster.Foreground, r.Pixel(2, 3))
		assert.Equal(t, raster.Foreground, r.Pixel(5, 6))
	}

	_, err := os.Stat(filepath.Join(dir, ".hidden", "c.udg"))
	assert.True(t, os.IsNotExist(err))

	assert.Contains(t, buf.String(), "notes.txt")
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "single.png")
	writeImage(t, file, func(f *os.File, m image.Image) error { return png.Encode(f, m) })

	u := New(log.New(ioutil.Discard, "", 0))
	require.NoError(t, u.Convert(file))
	assert.Equal(t, 2, readUDG(t, filepath.Join(dir, "single.udg")).Count())
}

func TestConvertBadImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644))

	u := New(log.New(ioutil.Discard, "", 0))
	assert.Error(t, u.Convert(dir))
}
