package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1"

	"github.com/askiada/go-identicon/pkg/identicon/model"
)

// ErrUnknownFill is returned when a fill handle was not created by the
// canvas it is used on.
var ErrUnknownFill = errors.New("fill was not created by this canvas")

// PNG creates canvases backed by an NRGBA buffer and serialised with
// the standard PNG encoder. The zero value is ready to use.
type PNG struct {
	// Background is the colour unfilled pixels keep. Nil means white.
	Background *colors.RGBColor
}

// NewCanvas creates a blank canvas of the given size, painted with the
// background colour.
func (p *PNG) NewCanvas(width, height int) Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	background := image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if p.Background != nil {
		background = image.NewUniform(nrgba(p.Background))
	}
	draw.Draw(img, img.Bounds(), background, image.Point{}, draw.Src)

	return &pngCanvas{img: img}
}

type pngCanvas struct {
	img *image.NRGBA
}

func (c *pngCanvas) Solid(colour *colors.RGBColor) Fill {
	return image.NewUniform(nrgba(colour))
}

func (c *pngCanvas) FillRect(rect model.Rect, fill Fill) error {
	src, ok := fill.(image.Image)
	if !ok {
		return errors.Wrapf(ErrUnknownFill, "fill %T", fill)
	}

	bounds := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	draw.Draw(c.img, bounds, src, image.Point{}, draw.Src)

	return nil
}

func (c *pngCanvas) Encode() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := png.Encode(buf, c.img)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode png")
	}

	return buf.Bytes(), nil
}

func nrgba(colour *colors.RGBColor) color.NRGBA {
	return color.NRGBA{R: colour.R, G: colour.G, B: colour.B, A: 255}
}

var _ Factory = (*PNG)(nil)
