package filetree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SizeFormatter turns a size into its display form.
type SizeFormatter func(size int64) string

// PlainSize prints sizes as base 10 integers.
func PlainSize(size int64) string {
	return strconv.FormatInt(size, 10)
}

// Snapshot captures n and its descendants as an Entry tree. Directory
// sizes are summed bottom-up while the snapshot is built, saturating like
// Size. Paths are extended from the parent's, and the walk uses an explicit
// stack, so deep trees cost neither recursion nor repeated Path calls.
func Snapshot(n *Node) Entry {
	top := &snapshotFrame{entry: Entry{Name: n.Name, Path: n.Path(), Kind: n.Kind}}
	if !n.IsDir() {
		top.entry.Size = n.size
		return top.entry
	}
	top.children = n.Children()

	stack := []*snapshotFrame{top}
	for {
		frame := stack[len(stack)-1]
		if frame.next < len(frame.children) {
			child := frame.children[frame.next]
			frame.next++

			entry := Entry{Name: child.Name, Path: BuildChildPath(frame.entry.Path, child.Name), Kind: child.Kind}
			if child.IsDir() {
				stack = append(stack, &snapshotFrame{entry: entry, children: child.Children()})
				continue
			}
			entry.Size = child.size
			frame.add(entry)
			continue
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return frame.entry
		}
		stack[len(stack)-1].add(frame.entry)
	}
}

type snapshotFrame struct {
	entry    Entry
	children []*Node
	next     int
}

func (f *snapshotFrame) add(child Entry) {
	f.entry.Children = append(f.entry.Children, child)
	f.entry.Size, _ = AddSizes(f.entry.Size, child.Size)
}

// Render writes an indented listing of the tree rooted at n, one node per
// line, in the form "- name (dir, size=N)".
func Render(w io.Writer, n *Node, format SizeFormatter) error {
	if format == nil {
		format = PlainSize
	}

	root := Snapshot(n)
	type pending struct {
		entry *Entry
		depth int
	}
	stack := []pending{{entry: &root}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entry := current.entry
		_, err := fmt.Fprintf(w, "%s- %s (%s, size=%s)\n", strings.Repeat("  ", current.depth), entry.Name, entry.Kind, format(entry.Size))
		if err != nil {
			return errors.Wrapf(err, "render %s", entry.Path)
		}
		for i := len(entry.Children) - 1; i >= 0; i-- {
			stack = append(stack, pending{entry: &entry.Children[i], depth: current.depth + 1})
		}
	}
	return nil
}
