package constants

// AppName is used for the binary, the env prefix and the config file name
const AppName = "treesize"

// StdinPath selects standard input wherever a transcript path is accepted
const StdinPath = "-"

// StdoutPath selects standard output wherever an output path is accepted
const StdoutPath = "-"

const (
	// DefaultThreshold is the upper bound of the bounded-sum report
	DefaultThreshold int64 = 100000
	// DefaultTotalSpace is the capacity of the device the transcript was captured on
	DefaultTotalSpace int64 = 70000000
	// DefaultSpaceNeeded is the free space the minimum-to-free report aims for
	DefaultSpaceNeeded int64 = 30000000
)
