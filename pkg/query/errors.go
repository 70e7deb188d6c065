package query

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/replicatedhq/treesize/pkg/filetree"
)

// InconsistencyError means the tree does not describe enough usage for a
// query to have an answer, e.g. no directory reaches the space deficit.
type InconsistencyError struct {
	Deficit int64
	Largest int64
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("no directory frees the required %d, the largest holds %d", e.Deficit, e.Largest)
}

// IsInconsistencyError reports whether the root cause of err is an *InconsistencyError.
func IsInconsistencyError(err error) bool {
	_, ok := errors.Cause(err).(*InconsistencyError)
	return ok
}

// IsOverflowError reports whether err comes from a size or sum that does not
// fit in an int64.
func IsOverflowError(err error) bool {
	return errors.Cause(err) == filetree.ErrSizeOverflow
}
