package udg

import (
	"path/filepath"
	"testing"

	"github.com/bodgit/udg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLibrary(t *testing.T) *Library {
	l, err := NewLibrary(filepath.Join(t.TempDir(), "udg.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func glyph(t *testing.T, width, height int, points ...[2]int) *raster.Raster {
	r, err := raster.New(width, height)
	require.NoError(t, err)
	for _, p := range points {
		r.SetPixel(p[0], p[1], raster.Foreground)
	}
	return r
}

func TestLibrary(t *testing.T) {
	l := newLibrary(t)

	a := glyph(t, 8, 8, [2]int{0, 0}, [2]int{7, 7})
	b := glyph(t, 16, 8, [2]int{15, 0})

	require.NoError(t, l.Add("alien", a, raster.Double))
	require.NoError(t, l.Add("ship", b, raster.Normal))

	r, ratio, err := l.Get("alien")
	require.NoError(t, err)
	assert.True(t, a.Equal(r))
	assert.Equal(t, raster.Double, ratio)

	entries, err := l.List()
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "alien", Width: 8, Height: 8, Ratio: raster.Double},
		{Name: "ship", Width: 16, Height: 8, Ratio: raster.Normal},
	}, entries)

	_, _, err = l.Get("missing")
	assert.Equal(t, ErrNotFound, err)

	assert.Equal(t, errEmptyName, l.Add("", a, raster.Normal))
}

func TestLibraryDeduplicates(t *testing.T) {
	l := newLibrary(t)

	a := glyph(t, 8, 8, [2]int{3, 3})
	require.NoError(t, l.Add("one", a, raster.Normal))
	require.NoError(t, l.Add("two", a.Clone(), raster.Half))

	n, err := l.Glyphs()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Replacing an entry drops the glyph nothing else uses
	require.NoError(t, l.Add("one", glyph(t, 8, 8), raster.Normal))
	require.NoError(t, l.Add("two", glyph(t, 8, 8), raster.Normal))
	n, err = l.Glyphs()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLibraryRemove(t *testing.T) {
	l := newLibrary(t)

	require.NoError(t, l.Add("one", glyph(t, 8, 8), raster.Normal))
	require.NoError(t, l.Remove("one"))
	assert.Equal(t, ErrNotFound, l.Remove("one"))

	entries, err := l.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	n, err := l.Glyphs()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLibraryReopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "udg.db")

	l, err := NewLibrary(file)
	require.NoError(t, err)
	a := glyph(t, 8, 16, [2]int{4, 12})
	require.NoError(t, l.Add("glyph", a, raster.Half))
	require.NoError(t, l.Close())

	l, err = NewLibrary(file)
	require.NoError(t, err)
	defer l.Close()

	r, ratio, err := l.Get("glyph")
	require.NoError(t, err)
	assert.True(t, a.Equal(r))
	assert.Equal(t, raster.Half, ratio)
}
