package fs

import (
	"fmt"
	"os"
	"testing"

	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/replicatedhq/treesize/pkg/testing/tmpfs"
	"github.com/stretchr/testify/require"
)

func TestOutputOpener(t *testing.T) {
	req := require.New(t)
	fs, cleanup := tmpfs.Tmpfs(t)
	defer cleanup()

	open := NewOutputOpener(fs)

	w, err := open("/report.txt")
	req.NoError(err)
	_, err = fmt.Fprint(w, "95437")
	req.NoError(err)
	req.NoError(w.Close())

	contents, err := fs.ReadFile("/report.txt")
	req.NoError(err)
	req.Equal("95437", string(contents))

	_, err = open("/missing/dir/report.txt")
	req.Error(err)
	req.Contains(err.Error(), "create output file")

	stdout, err := open(constants.StdoutPath)
	req.NoError(err)
	req.Equal(nopCloser{os.Stdout}, stdout)
	req.NoError(stdout.Close())

	stdout, err = open("")
	req.NoError(err)
	req.Equal(nopCloser{os.Stdout}, stdout)
}
