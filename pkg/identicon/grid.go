package identicon

import (
	"github.com/askiada/go-identicon/pkg/identicon/model"
)

const (
	gridRows    = 5
	gridColumns = 5
	groupSize   = 3
)

// mirrorRow reflects a three-value group around its last element:
// [a b c] becomes [a b c b a]. The palindrome is what gives the final
// image its left-right symmetry.
func mirrorRow(group []byte) []byte {
	row := make([]byte, 0, gridColumns)
	row = append(row, group[:groupSize]...)
	row = append(row, group[1], group[0])

	return row
}

// buildGrid chunks the digest into consecutive groups of three bytes,
// mirrors each group into a row of five and indexes the flattened
// result 0..24. A trailing group shorter than three bytes is dropped,
// never padded.
func buildGrid(img model.Image) model.Image {
	grid := make([]model.GridCell, 0, gridRows*gridColumns)

	for start := 0; start+groupSize <= len(img.Hash); start += groupSize {
		for _, value := range mirrorRow(img.Hash[start : start+groupSize]) {
			grid = append(grid, model.GridCell{Value: value, Index: len(grid)})
		}
	}

	img.Grid = grid

	return img
}
