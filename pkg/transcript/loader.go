package transcript

import (
	"context"
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/replicatedhq/treesize/pkg/filetree"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// A Loader reads a transcript from somewhere and returns the tree it
// describes.
type Loader interface {
	Load(ctx context.Context, path string) (*filetree.Node, error)
}

// NewLoader builds an aferoLoader, used with dig
func NewLoader(
	fs afero.Afero,
	logger log.Logger,
	v *viper.Viper,
) Loader {
	return &aferoLoader{
		FS:     fs,
		Logger: logger,
		Viper:  v,
		Stdin:  os.Stdin,
	}
}

type aferoLoader struct {
	FS     afero.Afero
	Logger log.Logger
	Viper  *viper.Viper
	Stdin  io.Reader
}

// Load builds a fresh tree from the transcript at path; "-" reads stdin.
func (a *aferoLoader) Load(ctx context.Context, path string) (*filetree.Node, error) {
	debug := level.Debug(log.With(a.Logger, "method", "transcript.Load", "path", path))

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "load transcript")
	}

	policy, err := ParseConflictPolicy(a.Viper.GetString(constants.ConflictPolicyFlag))
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if path == "" || path == constants.StdinPath {
		debug.Log("event", "transcript.open.stdin")
		r = a.Stdin
	} else {
		debug.Log("event", "transcript.open")
		f, err := a.FS.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open transcript %q", path)
		}
		defer f.Close()
		r = f
	}

	root, err := Build(r, WithConflictPolicy(policy), WithLogger(a.Logger))
	if err != nil {
		debug.Log("event", "transcript.build.fail", "err", err)
		return nil, errors.Wrapf(err, "interpret transcript %q", path)
	}

	debug.Log("event", "transcript.build", "nodes", filetree.CountNodes(root))
	return root, nil
}
