package identicon

import (
	"github.com/askiada/go-identicon/pkg/identicon/model"
)

const (
	// CellSize is the edge length of one grid cell in pixels.
	CellSize = 50
	// CanvasSize is the edge length of the rendered image in pixels.
	CanvasSize = CellSize * gridColumns
)

// buildPixelMap converts every surviving cell index into the pixel
// rectangle it covers on the canvas: index i sits at row i/5, column
// i%5, and each cell spans CellSize pixels.
func buildPixelMap(img model.Image) model.Image {
	pixelMap := make([]model.Rect, 0, len(img.Grid))

	for _, cell := range img.Grid {
		row := cell.Index / gridColumns
		column := cell.Index % gridColumns

		topLeft := model.Point{X: column * CellSize, Y: row * CellSize}
		pixelMap = append(pixelMap, model.Rect{
			Min: topLeft,
			Max: model.Point{X: topLeft.X + CellSize, Y: topLeft.Y + CellSize},
		})
	}

	img.PixelMap = pixelMap

	return img
}
