package identicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-identicon/pkg/identicon/model"
)

func TestPickColor(t *testing.T) {
	t.Parallel()

	img, err := pickColor(model.Image{Hash: elixirDigest})
	require.NoError(t, err)
	require.NotNil(t, img.Color)
	assert.Equal(t, uint8(116), img.Color.R)
	assert.Equal(t, uint8(181), img.Color.G)
	assert.Equal(t, uint8(101), img.Color.B)
}

func TestPickColorShortDigest(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		digest []byte
	}{
		{name: "nil digest", digest: nil},
		{name: "one byte", digest: []byte{1}},
		{name: "two bytes", digest: []byte{1, 2}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			img, err := pickColor(model.Image{Hash: testCase.digest})
			assert.ErrorIs(t, err, ErrShortDigest)
			assert.Nil(t, img.Color)
		})
	}
}
