package atlas_test

import (
	"image"
	"testing"

	"github.com/gogpu/mapsym"
	"github.com/gogpu/mapsym/atlas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowsShareRegions(t *testing.T) {
	m := atlas.NewDefaultManager()
	stroke := mapsym.WithStroke(&mapsym.Stroke{Width: 2})

	a, err := mapsym.NewArrow(mapsym.LineBoth(), 10, stroke, mapsym.WithAtlas(m))
	require.NoError(t, err)
	b, err := mapsym.NewArrow(mapsym.LineBoth(), 10, stroke, mapsym.WithAtlas(m))
	require.NoError(t, err)

	assert.Same(t, a.Image(), b.Image())
	assert.Equal(t, a.Origin(), b.Origin())
	assert.Equal(t, image.Pt(1, 1), a.Origin())
	assert.Equal(t, image.Pt(256, 256), a.ImageSize())
	assert.Equal(t, image.Pt(14, 8), a.Size())

	s := m.Stats()
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, 1, s.Symbols)
}

func TestArrowHitImages(t *testing.T) {
	m := atlas.NewDefaultManager()

	triangle := mapsym.Shape{0, 0, 1, 0.5, 0, 1}

	open, err := mapsym.NewArrow(triangle, 20,
		mapsym.WithStroke(&mapsym.Stroke{Width: 1}), mapsym.WithAtlas(m))
	require.NoError(t, err)
	filled, err := mapsym.NewArrow(triangle, 20,
		mapsym.WithFill(&mapsym.Fill{}), mapsym.WithAtlas(m))
	require.NoError(t, err)

	require.Len(t, m.HitPages(), 1)
	assert.Same(t, m.HitPages()[0], open.HitDetectionImage())
	assert.NotSame(t, open.Image(), open.HitDetectionImage())
	assert.Same(t, filled.Image(), filled.HitDetectionImage())
	assert.NotEqual(t, open.Origin(), filled.Origin())

	// Inside the triangle, away from its edges: filled only for hit detection.
	_, _, _, al := open.HitDetectionSymbolImage().At(6, 11).RGBA()
	assert.Equal(t, uint32(0xffff), al)
	_, _, _, al = open.SymbolImage().At(6, 11).RGBA()
	assert.Zero(t, al)
}

func TestArrowTooLargeForAtlas(t *testing.T) {
	m := atlas.NewDefaultManager()

	a, err := mapsym.NewArrow(mapsym.LineBoth(), 3000, mapsym.WithAtlas(m))
	assert.Nil(t, a)
	require.ErrorIs(t, err, mapsym.ErrSymbolTooLarge)

	var tooLarge *mapsym.SymbolTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 3000, tooLarge.Width)
	assert.Equal(t, uint64(1), m.Stats().Rejected)
	assert.Empty(t, m.Pages())
}

func TestArrowSolidAfterDashedOnSharedPage(t *testing.T) {
	m := atlas.NewDefaultManager()
	segment := mapsym.Shape{0, 0, 1, 0}

	dashed, err := mapsym.NewArrow(segment, 40, mapsym.WithAtlas(m), mapsym.WithStroke(&mapsym.Stroke{
		Width:    2,
		LineCap:  mapsym.LineCapButt,
		LineDash: []float64{4, 4},
	}))
	require.NoError(t, err)
	solid, err := mapsym.NewArrow(segment, 40, mapsym.WithAtlas(m), mapsym.WithStroke(&mapsym.Stroke{
		Width:   2,
		LineCap: mapsym.LineCapButt,
	}))
	require.NoError(t, err)
	require.Same(t, dashed.Image(), solid.Image(), "both symbols must share one page")

	gapsIn := func(img image.Image) int {
		n := 0
		for x := 3; x < 41; x++ {
			if _, _, _, a := img.At(x, 1).RGBA(); a == 0 {
				n++
			}
		}
		return n
	}
	assert.Positive(t, gapsIn(dashed.SymbolImage()), "first symbol is dashed")
	assert.Zero(t, gapsIn(solid.SymbolImage()), "dash pattern leaked into the next symbol")
	assert.Zero(t, gapsIn(solid.HitDetectionSymbolImage()), "dash pattern leaked into the hit page")
}
