package transcript

import (
	"strings"

	"github.com/pkg/errors"
)

// ConflictPolicy decides what a listing entry does when its name is
// already registered in the listed directory.
type ConflictPolicy int

const (
	// PolicyReplace lets the last listing win, whatever the kinds involved.
	// A directory listed again with "dir x" becomes a fresh empty directory.
	PolicyReplace ConflictPolicy = iota
	// PolicyMerge keeps an existing directory (and everything below it) when
	// it is listed again as a directory. Other collisions replace.
	PolicyMerge
	// PolicyStrict behaves like PolicyMerge but rejects entries that change
	// the kind of an existing child with a ConflictError.
	PolicyStrict
)

var policyNames = map[ConflictPolicy]string{
	PolicyReplace: "replace",
	PolicyMerge:   "merge",
	PolicyStrict:  "strict",
}

func (p ConflictPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseConflictPolicy maps a configuration value onto a policy. The empty
// string selects PolicyReplace.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return PolicyReplace, nil
	}
	for policy, name := range policyNames {
		if name == value {
			return policy, nil
		}
	}
	return PolicyReplace, errors.Errorf("unknown conflict policy %q, expected one of replace, merge, strict", s)
}
