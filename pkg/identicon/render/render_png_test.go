package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	colors "gopkg.in/go-playground/colors.v1"

	"github.com/askiada/go-identicon/pkg/identicon/model"
	"github.com/askiada/go-identicon/pkg/identicon/render"
)

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	return img
}

func pixelAt(t *testing.T, img image.Image, x, y int) color.NRGBA {
	t.Helper()

	nrgba, ok := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	require.True(t, ok)

	return nrgba
}

func TestPNGCanvas(t *testing.T) {
	t.Parallel()

	colour, err := colors.RGB(116, 181, 101)
	require.NoError(t, err)

	factory := &render.PNG{}
	canvas := factory.NewCanvas(100, 100)

	fill := canvas.Solid(colour)
	err = canvas.FillRect(model.Rect{
		Min: model.Point{X: 0, Y: 0},
		Max: model.Point{X: 50, Y: 50},
	}, fill)
	require.NoError(t, err)

	data, err := canvas.Encode()
	require.NoError(t, err)

	img := decode(t, data)
	assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 116, G: 181, B: 101, A: 255}, pixelAt(t, img, 25, 25))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixelAt(t, img, 75, 75))
}

func TestPNGCanvasBackground(t *testing.T) {
	t.Parallel()

	background, err := colors.RGB(10, 20, 30)
	require.NoError(t, err)

	factory := &render.PNG{Background: background}
	canvas := factory.NewCanvas(10, 10)

	data, err := canvas.Encode()
	require.NoError(t, err)

	img := decode(t, data)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, pixelAt(t, img, 5, 5))
}

func TestPNGCanvasUnknownFill(t *testing.T) {
	t.Parallel()

	factory := &render.PNG{}
	canvas := factory.NewCanvas(10, 10)

	err := canvas.FillRect(model.Rect{
		Min: model.Point{X: 0, Y: 0},
		Max: model.Point{X: 5, Y: 5},
	}, "not a fill")
	assert.ErrorIs(t, err, render.ErrUnknownFill)
}

func TestPNGCanvasEmptyPixelMap(t *testing.T) {
	t.Parallel()

	factory := &render.PNG{}
	canvas := factory.NewCanvas(250, 250)

	data, err := canvas.Encode()
	require.NoError(t, err)

	img := decode(t, data)
	assert.Equal(t, image.Rect(0, 0, 250, 250), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixelAt(t, img, 125, 125))
}
