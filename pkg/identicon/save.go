package identicon

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultFolder is where identicons are written unless a saver is
// configured.
const DefaultFolder = "img"

// Saver persists an encoded identicon under a name derived from the
// original input. It returns the path the image was written to.
type Saver interface {
	Save(input string, data []byte) (string, error)
}

// FolderSaver writes identicons as <dir>/<input>.png. The input is
// used verbatim as the filename stem, so inputs containing path
// separators escape the folder; callers wanting safe names must clean
// the input first. The folder must exist, a missing folder surfaces as
// a write error.
type FolderSaver struct {
	Dir string
}

func (s FolderSaver) Save(input string, data []byte) (string, error) {
	path := filepath.Join(s.Dir, input+".png")

	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		return "", errors.Wrapf(err, "unable to write %s", path)
	}

	return path, nil
}

var _ Saver = FolderSaver{}
