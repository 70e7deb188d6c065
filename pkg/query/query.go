// Package query answers size questions about a reconstructed tree. Every
// call walks the tree afresh; nothing is cached between calls.
package query

import (
	"math"

	"github.com/pkg/errors"
	"github.com/replicatedhq/treesize/pkg/filetree"
)

// Dir is a directory together with its aggregated size at query time.
type Dir struct {
	Node *filetree.Node
	Size int64
}

// Path is the directory's absolute path.
func (d Dir) Path() string {
	return d.Node.Path()
}

// ListDirectories returns every directory below root (and root itself when
// includeRoot is set) whose aggregated size lies in r. Each directory is
// visited once, in pre-order. A tree whose total size does not fit in an
// int64 is an overflow error.
func ListDirectories(root *filetree.Node, r Range, includeRoot bool) ([]Dir, error) {
	if _, err := filetree.CheckedSize(root); err != nil {
		return nil, err
	}

	var dirs []Dir
	for _, node := range filetree.Directories(root) {
		if node == root && !includeRoot {
			continue
		}
		size := filetree.Size(node)
		if r.Contains(size) {
			dirs = append(dirs, Dir{Node: node, Size: size})
		}
	}
	return dirs, nil
}

// BoundedSum adds up the sizes of all directories, root included, whose
// aggregated size is at most threshold. Nested directories are counted at
// every level they qualify, so the sum can overflow even when every
// directory size fits.
func BoundedSum(root *filetree.Node, threshold int64) (int64, error) {
	dirs, err := ListDirectories(root, AtMost(threshold), true)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, dir := range dirs {
		var ok bool
		if total, ok = filetree.AddSizes(total, dir.Size); !ok {
			return 0, errors.Wrapf(filetree.ErrSizeOverflow, "bounded sum at %s", dir.Path())
		}
	}
	return total, nil
}

// Usage describes how full the device holding the tree is.
type Usage struct {
	TotalSpace  int64 `json:"totalSpace" yaml:"totalSpace"`
	SpaceNeeded int64 `json:"spaceNeeded" yaml:"spaceNeeded"`
	Used        int64 `json:"used" yaml:"used"`
	Available   int64 `json:"available" yaml:"available"`
	Deficit     int64 `json:"deficit" yaml:"deficit"`
}

// ComputeUsage derives available space and the deficit still to be freed.
func ComputeUsage(root *filetree.Node, totalSpace, spaceNeeded int64) (Usage, error) {
	usage := Usage{TotalSpace: totalSpace, SpaceNeeded: spaceNeeded}

	var err error
	if usage.Used, err = filetree.CheckedSize(root); err != nil {
		return usage, err
	}

	var ok bool
	if usage.Available, ok = subSizes(totalSpace, usage.Used); !ok {
		return usage, errors.Wrap(filetree.ErrSizeOverflow, "available space")
	}
	if usage.Deficit, ok = subSizes(spaceNeeded, usage.Available); !ok {
		return usage, errors.Wrap(filetree.ErrSizeOverflow, "space deficit")
	}
	return usage, nil
}

func subSizes(a, b int64) (int64, bool) {
	if (b > 0 && a < math.MinInt64+b) || (b < 0 && a > math.MaxInt64+b) {
		return 0, false
	}
	return a - b, true
}

// MinimumToFree finds the smallest directory whose removal frees at least
// the deficit between spaceNeeded and the space available on a device of
// totalSpace. A tree too small to cover the deficit is an
// *InconsistencyError, never a zero result.
func MinimumToFree(root *filetree.Node, totalSpace, spaceNeeded int64) (Dir, Usage, error) {
	usage, err := ComputeUsage(root, totalSpace, spaceNeeded)
	if err != nil {
		return Dir{}, usage, err
	}

	candidates, err := ListDirectories(root, AtLeast(usage.Deficit), true)
	if err != nil {
		return Dir{}, usage, err
	}
	if len(candidates) == 0 {
		return Dir{}, usage, &InconsistencyError{Deficit: usage.Deficit, Largest: usage.Used}
	}

	best := candidates[0]
	for _, dir := range candidates[1:] {
		if dir.Size < best.Size {
			best = dir
		}
	}
	return best, usage, nil
}

// Params are the inputs of Analyze.
type Params struct {
	Threshold   int64
	TotalSpace  int64
	SpaceNeeded int64
}

// Analysis holds both reports for one tree.
type Analysis struct {
	Threshold  int64
	BoundedSum int64
	Usage      Usage
	ToFree     Dir
}

// Analyze runs the bounded-sum and minimum-to-free reports over root.
func Analyze(root *filetree.Node, params Params) (Analysis, error) {
	if root == nil || !root.IsDir() {
		return Analysis{}, errors.New("analyze: root must be a directory")
	}

	boundedSum, err := BoundedSum(root, params.Threshold)
	if err != nil {
		return Analysis{}, errors.Wrap(err, "bounded sum")
	}
	analysis := Analysis{
		Threshold:  params.Threshold,
		BoundedSum: boundedSum,
	}

	toFree, usage, err := MinimumToFree(root, params.TotalSpace, params.SpaceNeeded)
	analysis.Usage = usage
	if err != nil {
		return analysis, errors.Wrap(err, "minimum to free")
	}
	analysis.ToFree = toFree
	return analysis, nil
}
