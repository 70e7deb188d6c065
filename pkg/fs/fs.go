package fs

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/spf13/afero"
)

// NewBaseFilesystem creates a new Afero OS filesystem
func NewBaseFilesystem() afero.Afero {
	return afero.Afero{Fs: afero.NewOsFs()}
}

// OutputOpener opens the destination reports are written to
type OutputOpener func(path string) (io.WriteCloser, error)

// NewOutputOpener returns an OutputOpener backed by fs, used with dig.
// "-" and "" select stdout, which is never closed.
func NewOutputOpener(fs afero.Afero) OutputOpener {
	return func(path string) (io.WriteCloser, error) {
		if path == "" || path == constants.StdoutPath {
			return nopCloser{os.Stdout}, nil
		}
		f, err := fs.Create(path)
		if err != nil {
			return nil, errors.Wrapf(err, "create output file %q", path)
		}
		return f, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
