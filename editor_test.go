package udg

import (
	"bytes"
	"image"
	"io/ioutil"
	"log"
	"strings"
	"testing"

	udgimage "github.com/bodgit/udg/image"
	"github.com/bodgit/udg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditor() *Editor {
	return NewEditor(log.New(ioutil.Discard, "", 0))
}

func TestEditorDefaults(t *testing.T) {
	e := newEditor()
	assert.Nil(t, e.Raster())
	assert.Equal(t, raster.Foreground, e.Colour())
	assert.Equal(t, raster.Normal, e.Ratio())
	assert.Equal(t, 16.0, e.Zoom())
	assert.Equal(t, " ", e.Status())
	assert.Equal(t, "", e.Export())

	assert.Equal(t, ErrNoImage, e.Do(Paint{0, 0}))
	assert.Equal(t, ErrNoImage, e.Do(Click{}))
	assert.Equal(t, ErrNoImage, e.Do(Resize{1, 1, 0}))
	assert.Equal(t, ErrNoImage, e.Do(Save{new(bytes.Buffer)}))
}

func TestNewImage(t *testing.T) {
	e := newEditor()
	require.NoError(t, e.Do(NewImage{WidthTiles: 2, HeightTiles: 1, Ratio: raster.Double}))
	assert.Equal(t, 16, e.Raster().Width())
	assert.Equal(t, 8, e.Raster().Height())
	assert.Equal(t, raster.Double, e.Ratio())
	assert.Equal(t, "16x8 px (2x1 chars), Double Pixel\n{&0},{&0},{&0},{&0}", e.Status())

	require.NoError(t, e.Do(NewImage{WidthTiles: 1, HeightTiles: 1}))
	assert.Equal(t, raster.Normal, e.Ratio())

	for _, size := range [][2]int{{0, 1}, {1, 0}, {MaxWidthTiles + 1, 1}, {1, MaxHeightTiles + 1}} {
		assert.Equal(t, ErrTileRange, e.Do(NewImage{WidthTiles: size[0], HeightTiles: size[1]}))
	}
	require.NoError(t, e.Do(NewImage{WidthTiles: MaxWidthTiles, HeightTiles: MaxHeightTiles}))
}

func TestPaint(t *testing.T) {
	e := newEditor()
	require.NoError(t, e.Do(
		NewImage{WidthTiles: 1, HeightTiles: 1},
		Paint{0, 0},
		Paint{7, 7},
		Paint{100, 100},
	))
	assert.Equal(t, "8x8 px (1x1 chars), Normal\n{&80000000},{&1}", e.Status())

	require.NoError(t, e.Do(SetColour{0}, Paint{0, 0}))
	assert.Equal(t, "{&0},{&1}", e.Export())

	// Invalid colours are ignored
	require.NoError(t, e.Do(SetColour{2}))
	assert.Equal(t, raster.Background, e.Colour())
}

func TestClick(t *testing.T) {
	e := newEditor()
	require.NoError(t, e.Do(NewImage{WidthTiles: 1, HeightTiles: 1}, SetZoom{4}))

	// 32x32 image centred in a 64x64 pane
	pane := image.Pt(64, 64)
	require.NoError(t, e.Do(
		Click{pane, image.Pt(16, 16)},
		Click{pane, image.Pt(47, 47)},
		Click{pane, image.Pt(0, 0)},
	))
	assert.Equal(t, raster.Foreground, e.Raster().Pixel(0, 0))
	assert.Equal(t, raster.Foreground, e.Raster().Pixel(7, 7))
	assert.Equal(t, 2, e.Raster().Count())
}

func TestResize(t *testing.T) {
	e := newEditor()
	require.NoError(t, e.Do(NewImage{WidthTiles: 1, HeightTiles: 1}, Paint{0, 0}))
	before := e.Raster()

	require.NoError(t, e.Do(Resize{WidthTiles: 1, HeightTiles: 1}))
	assert.True(t, before == e.Raster())

	require.NoError(t, e.Do(Resize{WidthTiles: 3, HeightTiles: 2, Ratio: raster.Half}))
	assert.Equal(t, 24, e.Raster().Width())
	assert.Equal(t, 16, e.Raster().Height())
	assert.Equal(t, raster.Foreground, e.Raster().Pixel(8, 4))
	assert.Equal(t, raster.Half, e.Ratio())

	// The old raster is never modified
	assert.Equal(t, raster.Foreground, before.Pixel(0, 0))

	assert.Equal(t, ErrTileRange, e.Do(Resize{WidthTiles: 0, HeightTiles: 1}))
}

func TestSetRatioAndZoom(t *testing.T) {
	e := newEditor()
	require.NoError(t, e.Do(SetRatio{raster.Ratio(0.6)}, SetZoom{3}))
	assert.Equal(t, raster.Half, e.Ratio())
	assert.Equal(t, 2.0, e.Zoom())

	require.NoError(t, e.Do(SetZoom{100}))
	assert.Equal(t, 2.0, e.Zoom())
	assert.Equal(t, 2.0, e.Canvas().Zoom)
}

func TestOpenSave(t *testing.T) {
	e := newEditor()
	require.NoError(t, e.Do(NewImage{WidthTiles: 2, HeightTiles: 2, Ratio: raster.Double}, Paint{3, 9}, Paint{15, 0}))

	b := new(bytes.Buffer)
	require.NoError(t, e.Do(Save{b}))
	saved := b.Bytes()

	o := newEditor()
	require.NoError(t, o.Do(Open{bytes.NewReader(saved)}))
	assert.True(t, e.Raster().Equal(o.Raster()))
	assert.Equal(t, raster.Double, o.Ratio())
	assert.Equal(t, e.Status(), o.Status())
}

func TestOpenFailureKeepsImage(t *testing.T) {
	e := newEditor()
	require.NoError(t, e.Do(NewImage{WidthTiles: 1, HeightTiles: 1, Ratio: raster.Half}, Paint{1, 1}))
	before := e.Raster().Clone()
	status := e.Status()

	r, err := raster.New(16, 16)
	require.NoError(t, err)
	short := udgimage.Marshal(r, raster.Double)
	short = short[:len(short)-1]

	assert.Error(t, e.Do(Open{bytes.NewReader(short)}))
	assert.Error(t, e.Do(Open{strings.NewReader("")}))
	assert.True(t, before.Equal(e.Raster()))
	assert.Equal(t, raster.Half, e.Ratio())
	assert.Equal(t, status, e.Status())
}
