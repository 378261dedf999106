package fontface_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/pixgui/backend/fontface"
)

func TestDefaultMetrics(t *testing.T) {
	face := fontface.Default()
	assert.Equal(t, 13, fontface.LineHeight(face))
	assert.Equal(t, 11, fontface.Ascent(face))
	assert.Equal(t, 21, fontface.MeasureString(face, "abc"))
	assert.Equal(t, 0, fontface.MeasureString(face, ""))
}

func TestParse(t *testing.T) {
	face, err := fontface.Parse(goregular.TTF, 16)
	require.NoError(t, err)
	assert.Positive(t, fontface.LineHeight(face))
	assert.Greater(t, fontface.MeasureString(face, "WWW"), fontface.MeasureString(face, "iii"))

	_, err = fontface.Parse(goregular.TTF, 0)
	require.Error(t, err)

	_, err = fontface.Parse([]byte("not a font"), 16)
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o600))

	face, err := fontface.Load(path, 14)
	require.NoError(t, err)
	assert.Positive(t, fontface.LineHeight(face))

	_, err = fontface.Load(filepath.Join(t.TempDir(), "missing.ttf"), 14)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildAtlas(t *testing.T) {
	face := fontface.Default()
	atlas, err := fontface.BuildAtlas(face, 32, 126)
	require.NoError(t, err)

	assert.Equal(t, 13, atlas.LineHeight)
	assert.Equal(t, 11, atlas.Ascent)
	assert.Equal(t, fontface.MeasureString(face, "Hello, world"), atlas.Measure("Hello, world"))

	a, ok := atlas.Glyph('A')
	require.True(t, ok)
	assert.Equal(t, 7, a.Advance)
	assert.Positive(t, a.W)
	assert.Positive(t, a.H)
	assert.Less(t, a.U0, a.U1)
	assert.Less(t, a.V0, a.V1)

	// The glyph's texels hold coverage.
	b := atlas.Image.Bounds()
	x0 := int(a.U0 * float32(b.Dx()))
	y0 := int(a.V0 * float32(b.Dy()))
	covered := false
	for y := y0; y < y0+a.H; y++ {
		for x := x0; x < x0+a.W; x++ {
			if atlas.Image.AlphaAt(x, y).A > 0 {
				covered = true
			}
		}
	}
	assert.True(t, covered, "glyph A has no coverage in the atlas")

	space, ok := atlas.Glyph(' ')
	require.True(t, ok)
	assert.Equal(t, 7, space.Advance)

	// Runes outside the atlas fall back to '?'.
	q, _ := atlas.Glyph('?')
	fallback, ok := atlas.Glyph('é')
	require.True(t, ok)
	assert.Equal(t, q, fallback)
}

func TestAtlasLayout(t *testing.T) {
	atlas, err := fontface.BuildAtlas(fontface.Default(), 32, 126)
	require.NoError(t, err)

	var xs []int
	atlas.Layout("a b", 10, 0, func(g fontface.Glyph, gx, gy int) {
		xs = append(xs, gx-g.BearingX)
		assert.GreaterOrEqual(t, gy, 0)
		assert.LessOrEqual(t, gy+g.H, atlas.LineHeight)
	})
	// Bitmap glyphs fill their whole cell, the space included.
	assert.Equal(t, []int{10, 17, 24}, xs)
}
