package transcript

import (
	"strconv"
	"strings"
)

const (
	// CommandMarker starts every command line of a transcript.
	CommandMarker = "$"

	cdCommand   = "cd"
	lsCommand   = "ls"
	dirListing  = "dir"
	rootTarget  = "/"
	upTarget    = ".."
	currentName = "."
)

// Instruction is one parsed transcript line.
type Instruction interface {
	instruction()
}

// Cd moves the cursor to Target: "/", ".." or a child directory name.
type Cd struct {
	Target string
}

// Ls starts a run of listing entries for the cursor directory.
type Ls struct{}

// DirEntry declares a child directory of the listed directory.
type DirEntry struct {
	Name string
}

// FileEntry declares a child file of the listed directory.
type FileEntry struct {
	Name string
	Size int64
}

func (Cd) instruction()        {}
func (Ls) instruction()        {}
func (DirEntry) instruction()  {}
func (FileEntry) instruction() {}

// IsCommand reports whether line starts with the command marker.
func IsCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), CommandMarker)
}

// ParseLine classifies a single non-blank transcript line. lineNo is only
// used to annotate errors.
func ParseLine(line string, lineNo int) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, &ParseError{Line: lineNo, Text: line, Reason: "empty line"}
	}

	if fields[0] == CommandMarker {
		return parseCommand(fields[1:], line, lineNo)
	}
	return parseListing(fields, line, lineNo)
}

func parseCommand(args []string, line string, lineNo int) (Instruction, error) {
	if len(args) == 0 {
		return nil, &ParseError{Line: lineNo, Text: line, Reason: "missing command"}
	}

	switch args[0] {
	case cdCommand:
		if len(args) != 2 {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "cd takes exactly one argument"}
		}
		return Cd{Target: args[1]}, nil
	case lsCommand:
		if len(args) != 1 {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "ls takes no arguments"}
		}
		return Ls{}, nil
	default:
		return nil, &ParseError{Line: lineNo, Text: line, Reason: "unknown command " + strconv.Quote(args[0])}
	}
}

func parseListing(fields []string, line string, lineNo int) (Instruction, error) {
	if len(fields) != 2 {
		return nil, &ParseError{Line: lineNo, Text: line, Reason: "listing entry must be \"dir <name>\" or \"<size> <name>\""}
	}

	name := fields[1]
	if reason := validateName(name); reason != "" {
		return nil, &ParseError{Line: lineNo, Text: line, Reason: reason}
	}

	if fields[0] == dirListing {
		return DirEntry{Name: name}, nil
	}

	size, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, &ParseError{Line: lineNo, Text: line, Reason: "invalid file size " + strconv.Quote(fields[0])}
	}
	if size < 0 {
		return nil, &ParseError{Line: lineNo, Text: line, Reason: "negative file size"}
	}
	return FileEntry{Name: name, Size: size}, nil
}

// validateName returns why name cannot be a single path segment, or "".
func validateName(name string) string {
	switch {
	case name == currentName || name == upTarget:
		return "reserved name " + strconv.Quote(name)
	case strings.Contains(name, "/"):
		return "name contains a path separator"
	}
	return ""
}
