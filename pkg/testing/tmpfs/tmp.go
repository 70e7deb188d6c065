// Package tmpfs hands tests a real directory, wrapped as an afero
// filesystem rooted at it. Use it where MemMapFs semantics differ from the
// OS, e.g. creating a file under a directory that does not exist.
package tmpfs

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func Tmpdir(t *testing.T) (string, func()) {
	req := require.New(t)
	d, err := ioutil.TempDir("", "treesize-test")
	req.NoError(err)

	return d, func() {
		os.RemoveAll(d)
	}
}

func Tmpfs(t *testing.T) (afero.Afero, func()) {
	dir, cleanup := Tmpdir(t)
	fs := afero.Afero{
		Fs: afero.NewBasePathFs(afero.NewOsFs(), dir),
	}
	return fs, cleanup
}
