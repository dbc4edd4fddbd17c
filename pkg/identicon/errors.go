package identicon

import (
	"github.com/pkg/errors"
)

var (
	ErrGeneratorMustBeSet = errors.New("generator must be set")
	ErrHasherMustBeSet    = errors.New("hasher must be set")
	ErrShortDigest        = errors.New("digest must hold at least 3 bytes")
	ErrNoColor            = errors.New("colour must be picked before drawing")
)
