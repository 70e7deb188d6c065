package version

import (
	"fmt"
	"time"
)

// set with -ldflags "-X github.com/replicatedhq/treesize/pkg/version.version=..."
var (
	version   = "dev"
	gitSHA    = ""
	buildTime = ""
)

var (
	build Build
)

// Build describes the binary that is running
type Build struct {
	Version      string    `json:"version"`
	GitSHA       string    `json:"git,omitempty"`
	BuildTime    time.Time `json:"buildTime,omitempty"`
	TimeFallback string    `json:"time_fallback,omitempty"`
}

// Init parses the linker provided build metadata. It is cheap and safe to
// call more than once.
func Init() {
	build.Version = version
	if len(gitSHA) >= 7 {
		build.GitSHA = gitSHA[:7]
	}
	var err error
	build.BuildTime, err = time.Parse(time.RFC3339, buildTime)
	if err != nil {
		build.TimeFallback = buildTime
	}
}

func GetBuild() Build {
	return build
}

func Version() string {
	return build.Version
}

func GitSHA() string {
	return build.GitSHA
}

func BuildTime() time.Time {
	return build.BuildTime
}

// String is the one line form printed by "treesize version"
func String() string {
	b := GetBuild()
	s := b.Version
	if b.GitSHA != "" {
		s = fmt.Sprintf("%s (%s)", s, b.GitSHA)
	}
	if !b.BuildTime.IsZero() {
		s = fmt.Sprintf("%s built %s", s, b.BuildTime.Format(time.RFC3339))
	} else if b.TimeFallback != "" {
		s = fmt.Sprintf("%s built %s", s, b.TimeFallback)
	}
	return s
}
