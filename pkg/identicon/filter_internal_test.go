package identicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-identicon/pkg/identicon/model"
)

func TestDropOddCells(t *testing.T) {
	t.Parallel()

	img := dropOddCells(buildGrid(model.Image{Hash: elixirDigest}))
	require.Len(t, img.Grid, 15)

	expectedIndices := []int{0, 4, 5, 6, 8, 9, 10, 11, 13, 14, 15, 19, 20, 22, 24}
	for i, cell := range img.Grid {
		assert.Zero(t, cell.Value%2)
		assert.Equal(t, expectedIndices[i], cell.Index)
	}
}

func TestDropOddCellsKeepsNothing(t *testing.T) {
	t.Parallel()

	img := dropOddCells(model.Image{Grid: []model.GridCell{
		{Value: 1, Index: 0},
		{Value: 3, Index: 1},
		{Value: 255, Index: 2},
	}})
	assert.Empty(t, img.Grid)
}

func TestDropOddCellsKeepsEverything(t *testing.T) {
	t.Parallel()

	grid := []model.GridCell{
		{Value: 0, Index: 0},
		{Value: 2, Index: 1},
		{Value: 254, Index: 2},
	}
	img := dropOddCells(model.Image{Grid: grid})
	assert.Equal(t, grid, img.Grid)
}
