package treesize

import (
	"context"
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/replicatedhq/treesize/pkg/filetree"
	"github.com/replicatedhq/treesize/pkg/fs"
	"github.com/replicatedhq/treesize/pkg/query"
	"github.com/replicatedhq/treesize/pkg/report"
	"github.com/replicatedhq/treesize/pkg/transcript"
	"github.com/replicatedhq/treesize/pkg/util/warnings"
	"github.com/replicatedhq/treesize/pkg/version"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// App rebuilds a tree from a transcript and writes one of the reports
type App struct {
	Viper  *viper.Viper
	Logger log.Logger
	UI     cli.Ui
	FS     afero.Afero

	Loader     transcript.Loader
	Renderer   *report.Renderer
	OpenOutput fs.OutputOpener
}

// NewApp is the dig constructor for App
func NewApp(
	v *viper.Viper,
	logger log.Logger,
	ui cli.Ui,
	fs afero.Afero,
	loader transcript.Loader,
	renderer *report.Renderer,
	openOutput fs.OutputOpener,
) *App {
	return &App{
		Viper:      v,
		Logger:     logger,
		UI:         ui,
		FS:         fs,
		Loader:     loader,
		Renderer:   renderer,
		OpenOutput: openOutput,
	}
}

// Report writes the bounded-sum and minimum-to-free reports for the
// transcript at path.
func (a *App) Report(ctx context.Context, path string) error {
	debug := level.Debug(log.With(a.Logger, "method", "report"))

	params := query.Params{
		Threshold:   a.Viper.GetInt64(constants.ThresholdFlag),
		TotalSpace:  a.Viper.GetInt64(constants.TotalSpaceFlag),
		SpaceNeeded: a.Viper.GetInt64(constants.SpaceNeededFlag),
	}
	if params.Threshold < 0 || params.TotalSpace < 0 || params.SpaceNeeded < 0 {
		return warnings.Newf("--%s, --%s and --%s must not be negative", constants.ThresholdFlag, constants.TotalSpaceFlag, constants.SpaceNeededFlag)
	}

	root, err := a.load(ctx, path)
	if err != nil {
		return err
	}

	debug.Log("event", "analyze", "threshold", params.Threshold, "totalSpace", params.TotalSpace, "spaceNeeded", params.SpaceNeeded)
	analysis, err := query.Analyze(root, params)
	if err != nil {
		return errors.Wrap(err, "analyze tree")
	}
	debug.Log("event", "analyze.complete", "boundedSum", analysis.BoundedSum, "toFree", analysis.ToFree.Path(), "toFreeSize", analysis.ToFree.Size)

	return a.write(func(w io.Writer) error {
		return a.Renderer.Report(w, report.FromAnalysis(analysis))
	})
}

// Tree writes the reconstructed tree for the transcript at path.
func (a *App) Tree(ctx context.Context, path string) error {
	root, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	return a.write(func(w io.Writer) error {
		return a.Renderer.Tree(w, root)
	})
}

// Dirs lists the directories whose size lies within --min-size and
// --max-size.
func (a *App) Dirs(ctx context.Context, path string) error {
	debug := level.Debug(log.With(a.Logger, "method", "dirs"))

	r := query.Range{
		Min: a.Viper.GetInt64(constants.MinSizeFlag),
		Max: a.Viper.GetInt64(constants.MaxSizeFlag),
	}
	if r.Max < 0 {
		r.Max = query.Unbounded
	}
	if r.Min > r.Max {
		return warnings.Newf("--%s %d is larger than --%s %d", constants.MinSizeFlag, r.Min, constants.MaxSizeFlag, r.Max)
	}

	root, err := a.load(ctx, path)
	if err != nil {
		return err
	}

	dirs, err := query.ListDirectories(root, r, a.Viper.GetBool(constants.IncludeRootFlag))
	if err != nil {
		return errors.Wrap(err, "list directories")
	}
	debug.Log("event", "dirs.listed", "range", r, "count", len(dirs))

	return a.write(func(w io.Writer) error {
		return a.Renderer.Dirs(w, report.FromDirs(dirs))
	})
}

func (a *App) load(ctx context.Context, path string) (*filetree.Node, error) {
	if path == "" {
		path = a.Viper.GetString(constants.TranscriptFlag)
	}
	if path == "" {
		path = constants.StdinPath
	}

	level.Debug(a.Logger).Log(
		"event", "load",
		"path", path,
		"version", version.Version(),
		"gitSHA", version.GitSHA(),
	)
	root, err := a.Loader.Load(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "load tree")
	}
	return root, nil
}

func (a *App) write(render func(w io.Writer) error) error {
	out := a.Viper.GetString(constants.OutFlag)
	w, err := a.OpenOutput(out)
	if err != nil {
		return err
	}

	if err := render(w); err != nil {
		w.Close()
		return errors.Wrap(err, "render output")
	}
	return errors.Wrapf(w.Close(), "close output %q", out)
}

// RunAndMaybeExit runs one of the App operations and hands any error to
// ExitWithError.
func (a *App) RunAndMaybeExit(ctx context.Context, path string, run func(context.Context, string) error) error {
	if err := run(ctx, path); err != nil {
		a.ExitWithError(err)
		return err
	}
	return nil
}
