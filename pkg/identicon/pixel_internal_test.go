package identicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-identicon/pkg/identicon/model"
)

func TestBuildPixelMap(t *testing.T) {
	t.Parallel()

	img := buildPixelMap(model.Image{Grid: []model.GridCell{
		{Value: 2, Index: 0},
		{Value: 4, Index: 13},
		{Value: 6, Index: 24},
	}})

	assert.Equal(t, []model.Rect{
		{Min: model.Point{X: 0, Y: 0}, Max: model.Point{X: 50, Y: 50}},
		{Min: model.Point{X: 150, Y: 100}, Max: model.Point{X: 200, Y: 150}},
		{Min: model.Point{X: 200, Y: 200}, Max: model.Point{X: 250, Y: 250}},
	}, img.PixelMap)
}

func TestBuildPixelMapEmptyGrid(t *testing.T) {
	t.Parallel()

	img := buildPixelMap(model.Image{})
	assert.Empty(t, img.PixelMap)
}

func TestBuildPixelMapBounds(t *testing.T) {
	t.Parallel()

	img := buildPixelMap(dropOddCells(buildGrid(model.Image{Hash: elixirDigest})))
	require.Len(t, img.PixelMap, len(img.Grid))

	for _, rect := range img.PixelMap {
		assert.GreaterOrEqual(t, rect.Min.X, 0)
		assert.GreaterOrEqual(t, rect.Min.Y, 0)
		assert.LessOrEqual(t, rect.Max.X, CanvasSize)
		assert.LessOrEqual(t, rect.Max.Y, CanvasSize)
		assert.Equal(t, rect.Min.X+CellSize, rect.Max.X)
		assert.Equal(t, rect.Min.Y+CellSize, rect.Max.Y)
	}
}
