package treesize

import (
	"fmt"
	"os"

	"github.com/go-kit/kit/log/level"
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/replicatedhq/treesize/pkg/query"
	"github.com/replicatedhq/treesize/pkg/transcript"
	"github.com/replicatedhq/treesize/pkg/util/warnings"
)

// ExitWithError can be called if something goes wrong to print some friendly output
func (a *App) ExitWithError(err error) {
	if isInputError(err) {
		a.ExitWithWarn(err)
		return
	}

	if a.Viper.GetString(constants.LogLevelFlag) == "debug" {
		a.UI.Error(fmt.Sprintf("There was an unexpected error! %+v", err))
	} else {
		a.UI.Error(fmt.Sprintf("There was an unexpected error! %v", err))
	}
	level.Warn(a.Logger).Log("event", "exit.withErr", "errorWithStack", fmt.Sprintf("%+v", err))
	a.UI.Output("")
	a.preserveDebugLogsOrRequestReRun()

	a.exit()
}

// ExitWithWarn reports a problem with the transcript or the flags, no stack
// trace and no request for debug logs.
func (a *App) ExitWithWarn(err error) {
	level.Info(a.Logger).Log("event", "exit.withWarn", "err", err)
	a.UI.Warn(fmt.Sprintf("%v", warnings.StripStackIfWarning(err)))
	a.exit()
}

func (a *App) exit() {
	if !a.Viper.GetBool(constants.NoOSExitFlag) {
		os.Exit(1)
	}
}

func (a *App) preserveDebugLogsOrRequestReRun() {
	debugLogFile := a.Viper.GetString(constants.DebugLogFlag)
	if debugLogFile == "" {
		a.UI.Info(constants.RerunWithDebug)
		return
	}
	// make sure it exists
	if exists, err := a.FS.Exists(debugLogFile); err != nil || !exists {
		a.UI.Info(constants.RerunWithDebug)
		return
	}
	a.UI.Info(fmt.Sprintf(constants.DebugLogWritten, debugLogFile))
}

func isInputError(err error) bool {
	return warnings.IsWarning(err) ||
		transcript.IsParseError(err) ||
		transcript.IsNavigationError(err) ||
		transcript.IsConflictError(err) ||
		query.IsInconsistencyError(err) ||
		query.IsOverflowError(err)
}
