package identicon

import (
	"github.com/askiada/go-identicon/pkg/identicon/model"
)

// dropOddCells keeps the cells whose value is even; those are the ones
// that get painted. Odd-valued cells stay at the background colour.
// Relative order is preserved, and an empty result is valid.
func dropOddCells(img model.Image) model.Image {
	kept := make([]model.GridCell, 0, len(img.Grid))

	for _, cell := range img.Grid {
		if cell.Value%2 == 0 {
			kept = append(kept, cell)
		}
	}

	img.Grid = kept

	return img
}
