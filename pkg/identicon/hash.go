package identicon

import (
	"crypto/md5" //nolint:gosec // stable 16-byte digest, not integrity protection
)

// Hasher is the digest strategy for the hash stage. Implementations
// must be deterministic across runs and across platforms for the same
// input bytes.
type Hasher interface {
	Hash(data []byte) []byte
}

// MD5Hasher is the default Hasher. It produces the fixed 16-byte
// digest the grid stage folds into 5 mirrored rows.
type MD5Hasher struct{}

func (MD5Hasher) Hash(data []byte) []byte {
	sum := md5.Sum(data) //nolint:gosec // see type comment
	return sum[:]
}
