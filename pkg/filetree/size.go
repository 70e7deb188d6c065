package filetree

import (
	"math"

	"github.com/pkg/errors"
)

// ErrSizeOverflow is returned when an aggregated size does not fit in an int64.
var ErrSizeOverflow = errors.New("size overflows int64")

// AddSizes adds two non-negative sizes, reporting false instead of wrapping
// when the sum does not fit in an int64.
func AddSizes(a, b int64) (int64, bool) {
	if b > math.MaxInt64-a {
		return math.MaxInt64, false
	}
	return a + b, true
}

// CheckedSize returns the aggregated size of n: a file's own size, or the
// sum of every file below a directory. A sum that does not fit in an int64
// is ErrSizeOverflow. Nothing is cached, so the result always reflects the
// current children. The walk uses an explicit stack so that tree depth is
// not bounded by the goroutine stack.
func CheckedSize(n *Node) (int64, error) {
	if n == nil {
		return 0, nil
	}
	if !n.IsDir() {
		return n.size, nil
	}

	var total int64
	stack := []*Node{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range current.children {
			if child.IsDir() {
				stack = append(stack, child)
				continue
			}
			var ok bool
			if total, ok = AddSizes(total, child.size); !ok {
				return 0, errors.Wrapf(ErrSizeOverflow, "size of %s", n.Path())
			}
		}
	}
	return total, nil
}

// Size is CheckedSize saturated at math.MaxInt64, so a directory is never
// reported smaller than anything below it.
func Size(n *Node) int64 {
	size, err := CheckedSize(n)
	if err != nil {
		return math.MaxInt64
	}
	return size
}

// Size is shorthand for the package level Size.
func (n *Node) Size() int64 {
	return Size(n)
}
