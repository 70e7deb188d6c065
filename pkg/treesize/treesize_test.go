package treesize

import (
	"context"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/replicatedhq/treesize/pkg/fs"
	"github.com/replicatedhq/treesize/pkg/report"
	"github.com/replicatedhq/treesize/pkg/test-mocks/ui"
	"github.com/replicatedhq/treesize/pkg/testing/logger"
	"github.com/replicatedhq/treesize/pkg/testing/matchers"
	"github.com/replicatedhq/treesize/pkg/transcript"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const canonical = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

type fixture struct {
	app *App
	fs  afero.Afero
	ui  *ui.MockUi
}

func newFixture(t *testing.T, mc *gomock.Controller, set map[string]interface{}) fixture {
	memFS := afero.Afero{Fs: afero.NewMemMapFs()}
	require.NoError(t, memFS.WriteFile("/transcript.txt", []byte(canonical), 0644))

	v := viper.New()
	v.Set(constants.OutFlag, "/out.txt")
	v.Set(constants.NoOSExitFlag, true)
	v.Set(constants.ThresholdFlag, constants.DefaultThreshold)
	v.Set(constants.TotalSpaceFlag, constants.DefaultTotalSpace)
	v.Set(constants.SpaceNeededFlag, constants.DefaultSpaceNeeded)
	v.Set(constants.MaxSizeFlag, -1)
	for key, value := range set {
		v.Set(key, value)
	}

	testLogger := &logger.TestLogger{T: t}
	mockUI := ui.NewMockUi(mc)
	renderer, err := report.NewRenderer(v)
	require.NoError(t, err)

	return fixture{
		app: NewApp(
			v,
			testLogger,
			mockUI,
			memFS,
			transcript.NewLoader(memFS, testLogger, v),
			renderer,
			fs.NewOutputOpener(memFS),
		),
		fs: memFS,
		ui: mockUI,
	}
}

func (f fixture) output(t *testing.T) string {
	contents, err := f.fs.ReadFile("/out.txt")
	require.NoError(t, err)
	return string(contents)
}

func TestReport(t *testing.T) {
	tests := []struct {
		name   string
		set    map[string]interface{}
		expect string
	}{
		{
			name: "defaults",
			expect: "Total size of directories of at most 100000: 95437\n" +
				"Smallest directory to free: /d (24933642)\n",
		},
		{
			name: "template",
			set: map[string]interface{}{
				constants.OutputFlag:   "template",
				constants.TemplateFlag: "{{ .BoundedSum }} {{ .ToFree.Size }}",
			},
			expect: "95437 24933642",
		},
		{
			name: "smaller threshold",
			set: map[string]interface{}{
				constants.ThresholdFlag: 1000,
			},
			expect: "Total size of directories of at most 1000: 584\n" +
				"Smallest directory to free: /d (24933642)\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mc := gomock.NewController(t)
			defer mc.Finish()
			f := newFixture(t, mc, test.set)

			err := f.app.Report(context.Background(), "/transcript.txt")
			require.NoError(t, err)
			require.Equal(t, test.expect, f.output(t))
		})
	}
}

func TestReportUsesTranscriptFlag(t *testing.T) {
	mc := gomock.NewController(t)
	defer mc.Finish()
	f := newFixture(t, mc, map[string]interface{}{
		constants.TranscriptFlag: "/transcript.txt",
		constants.OutputFlag:     "template",
		constants.TemplateFlag:   "{{ .BoundedSum }}",
	})

	require.NoError(t, f.app.Report(context.Background(), ""))
	require.Equal(t, "95437", f.output(t))
}

func TestTree(t *testing.T) {
	mc := gomock.NewController(t)
	defer mc.Finish()
	f := newFixture(t, mc, nil)

	require.NoError(t, f.app.Tree(context.Background(), "/transcript.txt"))
	require.Equal(t, `- / (dir, size=48381165)
  - a (dir, size=94853)
    - e (dir, size=584)
      - i (file, size=584)
    - f (file, size=29116)
    - g (file, size=2557)
    - h.lst (file, size=62596)
  - b.txt (file, size=14848514)
  - c.dat (file, size=8504156)
  - d (dir, size=24933642)
    - d.ext (file, size=5626152)
    - d.log (file, size=8033020)
    - j (file, size=4060174)
    - k (file, size=7214296)
`, f.output(t))
}

func TestDirs(t *testing.T) {
	tests := []struct {
		name   string
		set    map[string]interface{}
		expect string
	}{
		{
			name: "all directories without root",
			set: map[string]interface{}{
				constants.OutputFlag:   "template",
				constants.TemplateFlag: "{{ range . }}{{ .Path }}={{ .Size }};{{ end }}",
			},
			expect: "/a/e=584;/a=94853;/d=24933642;",
		},
		{
			name: "with root and bounds",
			set: map[string]interface{}{
				constants.OutputFlag:      "template",
				constants.TemplateFlag:    "{{ range . }}{{ .Path }};{{ end }}",
				constants.IncludeRootFlag: true,
				constants.MinSizeFlag:     90000,
			},
			expect: "/a;/d;/;",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mc := gomock.NewController(t)
			defer mc.Finish()
			f := newFixture(t, mc, test.set)

			require.NoError(t, f.app.Dirs(context.Background(), "/transcript.txt"))
			require.Equal(t, test.expect, f.output(t))
		})
	}
}

func TestDirsRejectsInvertedRange(t *testing.T) {
	mc := gomock.NewController(t)
	defer mc.Finish()
	f := newFixture(t, mc, map[string]interface{}{
		constants.MinSizeFlag: 10,
		constants.MaxSizeFlag: 5,
	})

	err := f.app.Dirs(context.Background(), "/transcript.txt")
	require.Error(t, err)
	require.True(t, isInputError(err))
}

func TestRunAndMaybeExit(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		set      map[string]interface{}
		path     string
		expectUI func(mockUI *ui.MockUi)
	}{
		{
			name: "success writes nothing to the ui",
			path: "/transcript.txt",
		},
		{
			name:  "navigation error is a warning",
			files: map[string]string{"/bad.txt": "$ cd /\n$ cd ..\n"},
			path:  "/bad.txt",
			expectUI: func(mockUI *ui.MockUi) {
				mockUI.EXPECT().Warn(&matchers.Contains{Value: "line 2: cd .. from /: already at the root"})
			},
		},
		{
			name:  "parse error is a warning",
			files: map[string]string{"/bad.txt": "$ ls\nnot a listing\n"},
			path:  "/bad.txt",
			expectUI: func(mockUI *ui.MockUi) {
				mockUI.EXPECT().Warn(&matchers.Contains{Value: "line 2"})
			},
		},
		{
			name: "inconsistent space requirement is a warning",
			path: "/transcript.txt",
			set: map[string]interface{}{
				constants.SpaceNeededFlag: 90000000,
			},
			expectUI: func(mockUI *ui.MockUi) {
				mockUI.EXPECT().Warn(&matchers.Contains{Value: "no directory frees the required"})
			},
		},
		{
			name: "file sizes overflowing the tree are a warning",
			files: map[string]string{
				"/big.txt": "$ ls\n5000000000000000000 a\ndir d\n$ cd d\n$ ls\n5000000000000000000 b\n",
			},
			path: "/big.txt",
			expectUI: func(mockUI *ui.MockUi) {
				mockUI.EXPECT().Warn(&matchers.Contains{Value: "line 6: total size of the tree overflows int64"})
			},
		},
		{
			name: "overflowing bounded sum is a warning",
			files: map[string]string{
				"/nested.txt": "$ ls\ndir a\n$ cd a\n$ ls\ndir b\n$ cd b\n$ ls\n4000000000000000000 f\n",
			},
			path: "/nested.txt",
			set: map[string]interface{}{
				constants.ThresholdFlag: int64(math.MaxInt64),
			},
			expectUI: func(mockUI *ui.MockUi) {
				mockUI.EXPECT().Warn(&matchers.Contains{Value: "bounded sum at /a/b: size overflows int64"})
			},
		},
		{
			name: "negative flags are a warning",
			path: "/transcript.txt",
			set: map[string]interface{}{
				constants.ThresholdFlag: -1,
			},
			expectUI: func(mockUI *ui.MockUi) {
				mockUI.EXPECT().Warn(&matchers.StartsWith{Value: "--threshold"})
			},
		},
		{
			name: "missing transcript is unexpected",
			path: "/missing.txt",
			expectUI: func(mockUI *ui.MockUi) {
				mockUI.EXPECT().Error(&matchers.StartsWith{Value: "There was an unexpected error! load tree"})
				mockUI.EXPECT().Output("")
				mockUI.EXPECT().Info(constants.RerunWithDebug)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mc := gomock.NewController(t)
			defer mc.Finish()
			f := newFixture(t, mc, test.set)
			for name, contents := range test.files {
				require.NoError(t, f.fs.WriteFile(name, []byte(contents), 0644))
			}
			if test.expectUI != nil {
				test.expectUI(f.ui)
			}

			err := f.app.RunAndMaybeExit(context.Background(), test.path, f.app.Report)
			if test.expectUI == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestDebugLogHint(t *testing.T) {
	mc := gomock.NewController(t)
	defer mc.Finish()
	f := newFixture(t, mc, map[string]interface{}{
		constants.DebugLogFlag: "/debug.log",
	})
	require.NoError(t, f.fs.WriteFile("/debug.log", []byte("event=x\n"), 0644))

	f.ui.EXPECT().Error(gomock.Any())
	f.ui.EXPECT().Output("")
	f.ui.EXPECT().Info(&matchers.Contains{Value: `"/debug.log"`})

	f.app.ExitWithError(context.DeadlineExceeded)
}
