package query

import (
	"fmt"
	"math"
)

// Unbounded is the Max of a Range without an upper limit.
const Unbounded int64 = math.MaxInt64

// Range is an inclusive [Min, Max] interval of directory sizes.
type Range struct {
	Min int64
	Max int64
}

// All matches every size.
func All() Range {
	return Range{Min: 0, Max: Unbounded}
}

// AtMost matches sizes no larger than max.
func AtMost(max int64) Range {
	return Range{Min: 0, Max: max}
}

// AtLeast matches sizes no smaller than min.
func AtLeast(min int64) Range {
	return Range{Min: min, Max: Unbounded}
}

// Contains reports whether size lies within the range, bounds included.
func (r Range) Contains(size int64) bool {
	return size >= r.Min && size <= r.Max
}

func (r Range) String() string {
	if r.Max == Unbounded {
		return fmt.Sprintf("[%d, +inf]", r.Min)
	}
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}
