package render

import (
	colors "gopkg.in/go-playground/colors.v1"

	"github.com/askiada/go-identicon/pkg/identicon/model"
)

// Fill is an opaque fill handle. It is only valid for the canvas that
// produced it.
type Fill interface{}

// Canvas is a drawing surface for a single identicon.
type Canvas interface {
	// Solid derives an opaque fill from an RGB colour.
	Solid(colour *colors.RGBColor) Fill
	// FillRect paints the axis-aligned rectangle with the fill.
	FillRect(rect model.Rect, fill Fill) error
	// Encode serialises the canvas to an encoded image.
	Encode() ([]byte, error)
}

// Factory creates blank canvases of a given size in pixels.
type Factory interface {
	NewCanvas(width, height int) Canvas
}
