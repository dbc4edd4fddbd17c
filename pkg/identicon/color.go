package identicon

import (
	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1"

	"github.com/askiada/go-identicon/pkg/identicon/model"
)

// colorBytes is how many digest bytes the colour consumes.
const colorBytes = 3

// pickColor sets the fill colour to the first three digest bytes, in
// red, green, blue order. A digest shorter than three bytes cannot
// happen with the fixed 16-byte hash, but fails fast anyway.
func pickColor(img model.Image) (model.Image, error) {
	if len(img.Hash) < colorBytes {
		return img, errors.Wrapf(ErrShortDigest, "digest holds %d bytes", len(img.Hash))
	}

	colour, err := colors.RGB(img.Hash[0], img.Hash[1], img.Hash[2])
	if err != nil {
		return img, errors.Wrap(err, "unable to build rgb colour")
	}

	img.Color = colour

	return img, nil
}
