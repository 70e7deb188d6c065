package logger

import (
	"fmt"
	"io"
	golog "log"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-stack/stack"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type compositeLogger struct {
	loggers []log.Logger
}

func (c *compositeLogger) Log(keyvals ...interface{}) error {
	var multiErr *multierror.Error
	for _, logger := range c.loggers {
		multiErr = multierror.Append(multiErr, logger.Log(keyvals...))
	}
	return multiErr.ErrorOrNil()
}

// New builds a logger from viper, used with dig. Events go to stderr so
// that reports written to stdout stay machine readable. When --debug-log is
// set, a debug level copy of every event is also written to that file.
func New(v *viper.Viper, fs afero.Afero) log.Logger {
	return build(v, fs, os.Stderr)
}

func build(v *viper.Viper, fs afero.Afero, w io.Writer) log.Logger {
	fullPathCaller := pathCaller(6)
	var stderrLogger log.Logger //nolint:gosimple
	stderrLogger = withFormat(v.GetString(constants.LogFormatFlag), w)
	stderrLogger = log.With(stderrLogger, "ts", log.DefaultTimestampUTC)
	stderrLogger = log.With(stderrLogger, "caller", fullPathCaller)
	stderrLogger = withLevel(stderrLogger, v.GetString(constants.LogLevelFlag))

	debugLogFile := v.GetString(constants.DebugLogFlag)
	if debugLogFile == "" {
		golog.SetOutput(log.NewStdlibAdapter(level.Debug(stderrLogger)))
		return stderrLogger
	}

	err := fs.RemoveAll(debugLogFile)
	if err != nil {
		level.Warn(stderrLogger).Log("msg", "failed to remove existing debug log file", "path", debugLogFile, "error", err)
		golog.SetOutput(log.NewStdlibAdapter(level.Debug(stderrLogger)))
		return stderrLogger
	}
	debugLogWriter, err := fs.Create(debugLogFile)
	if err != nil {
		level.Warn(stderrLogger).Log("msg", "failed to initialize debug log file", "path", debugLogFile, "error", err)
		golog.SetOutput(log.NewStdlibAdapter(level.Debug(stderrLogger)))
		return stderrLogger
	}

	var debugLogger log.Logger
	debugLogger = withFormat(v.GetString(constants.LogFormatFlag), debugLogWriter)
	debugLogger = log.With(debugLogger, "ts", log.DefaultTimestampUTC)
	debugLogger = log.With(debugLogger, "caller", fullPathCaller)
	debugLogger = withLevel(debugLogger, "debug")

	realLogger := &compositeLogger{
		loggers: []log.Logger{
			stderrLogger,
			debugLogger,
		},
	}

	golog.SetOutput(log.NewStdlibAdapter(level.Debug(realLogger)))
	return realLogger
}

func withFormat(format string, w io.Writer) log.Logger {
	switch format {
	case "json":
		return log.NewJSONLogger(w)
	case "logfmt":
		return log.NewLogfmtLogger(w)
	default:
		return log.NewLogfmtLogger(w)
	}
}

func withLevel(logger log.Logger, lvl string) log.Logger {
	switch lvl {
	case "debug":
		return level.NewFilter(logger, level.AllowDebug())
	case "info":
		return level.NewFilter(logger, level.AllowInfo())
	case "warn":
		return level.NewFilter(logger, level.AllowWarn())
	case "error":
		return level.NewFilter(logger, level.AllowError())
	case "off", "":
		return level.NewFilter(logger, level.AllowNone())
	default:
		logger.Log("msg", "Unknown log level, using debug", "received", lvl)
		return level.NewFilter(logger, level.AllowDebug())
	}
}

func pathCaller(depth int) log.Valuer {
	return func() interface{} {
		return fmt.Sprintf("%+s", stack.Caller(depth))
	}
}
