package identicon

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-identicon/pkg/identicon/model"
)

// draw paints every rectangle of the pixel map with the picked colour
// on a fresh canvas and serialises the canvas once. The canvas only
// lives for the duration of this call.
func (g *Generator) draw(img model.Image) (model.Image, error) {
	if img.Color == nil {
		return img, ErrNoColor
	}

	canvas := g.factory.NewCanvas(CanvasSize, CanvasSize)
	fill := canvas.Solid(img.Color)

	for _, rect := range img.PixelMap {
		err := canvas.FillRect(rect, fill)
		if err != nil {
			return img, errors.Wrapf(err, "unable to fill rectangle %+v", rect)
		}
	}

	data, err := canvas.Encode()
	if err != nil {
		return img, errors.Wrap(err, "unable to encode canvas")
	}

	img.Bytes = data

	return img, nil
}
