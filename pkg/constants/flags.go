package constants

const (
	// ConfigFlag points at an optional yaml config file
	ConfigFlag = "config"
	// LogLevelFlag is one of debug, info, warn, error, off
	LogLevelFlag = "log-level"
	// LogFormatFlag is one of logfmt, json
	LogFormatFlag = "log-format"
	// DebugLogFlag is a file that receives a debug level copy of the log
	DebugLogFlag = "debug-log"
	// TranscriptFlag is the transcript to read when no argument is given
	TranscriptFlag = "transcript"
	// ConflictPolicyFlag is one of replace, merge, strict
	ConflictPolicyFlag = "conflict-policy"

	// OutputFlag is one of text, json, yaml, template
	OutputFlag = "output"
	// TemplateFlag is the go template used by --output=template
	TemplateFlag = "template"
	// OutFlag is the file reports are written to
	OutFlag = "out"
	// HumanFlag prints sizes in human readable units
	HumanFlag = "human"
	// NoColorFlag disables colored terminal messages
	NoColorFlag = "no-color"
	// NoOSExitFlag keeps ExitWithError from calling os.Exit, for tests
	NoOSExitFlag = "no-os-exit"

	// ThresholdFlag bounds the directories summed by the report command
	ThresholdFlag = "threshold"
	// TotalSpaceFlag is the device capacity for the minimum-to-free report
	TotalSpaceFlag = "total-space"
	// SpaceNeededFlag is the free space the minimum-to-free report aims for
	SpaceNeededFlag = "space-needed"

	// MinSizeFlag is the inclusive lower bound of the dirs command
	MinSizeFlag = "min-size"
	// MaxSizeFlag is the inclusive upper bound of the dirs command, negative for none
	MaxSizeFlag = "max-size"
	// IncludeRootFlag lets the root directory take part in the dirs listing
	IncludeRootFlag = "include-root"
)
