package constants

// RerunWithDebug is printed after an unexpected error when no debug log was written
const RerunWithDebug = `Please re-run with --log-level=debug and include the output in any bug report.`

// DebugLogWritten is printed after an unexpected error when a debug log is available
const DebugLogWritten = `A debug log has been written to %q, please include it in any bug report.`
