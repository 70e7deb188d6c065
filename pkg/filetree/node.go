package filetree

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// RootName is the name of the root directory of every tree.
const RootName = "/"

// Kind is the closed set of node variants.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// MarshalText lets Kind render as "file"/"dir" in json and yaml.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "file":
		*k = KindFile
	case "dir":
		*k = KindDir
	default:
		return errors.Errorf("unknown node kind %q", string(text))
	}
	return nil
}

// Node is either a file with a fixed size or a directory owning its
// children. The parent pointer is a back edge only: a node is owned by
// exactly one directory's children map and is never re-parented.
type Node struct {
	Kind Kind
	Name string

	size     int64
	children map[string]*Node
	parent   *Node
}

// NewRoot creates the root directory of a fresh tree.
func NewRoot() *Node {
	return NewDir(RootName)
}

// NewDir creates a detached, empty directory.
func NewDir(name string) *Node {
	return &Node{
		Kind:     KindDir,
		Name:     name,
		children: map[string]*Node{},
	}
}

// NewFile creates a detached file. Sizes are fixed for the life of the node.
func NewFile(name string, size int64) (*Node, error) {
	if size < 0 {
		return nil, errors.Errorf("file %q: negative size %d", name, size)
	}
	return &Node{
		Kind: KindFile,
		Name: name,
		size: size,
	}, nil
}

func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

func (n *Node) IsRoot() bool {
	return n.IsDir() && n.parent == nil
}

// Parent returns the owning directory, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Child looks up a direct child by name.
func (n *Node) Child(name string) (*Node, bool) {
	if !n.IsDir() {
		return nil, false
	}
	child, ok := n.children[name]
	return child, ok
}

// Len is the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// Children returns the direct children sorted by name.
func (n *Node) Children() []*Node {
	if !n.IsDir() {
		return nil
	}
	children := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})
	return children
}

// Add attaches a detached child to the directory n. A sibling already
// registered under the same name is replaced and detached; the last
// write wins.
func (n *Node) Add(child *Node) error {
	if !n.IsDir() {
		return errors.Errorf("add %q: %q is not a directory", child.Name, n.Path())
	}
	if child.parent != nil {
		return errors.Errorf("add %q: already attached to %q", child.Name, child.parent.Path())
	}
	for ancestor := n; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			return errors.Errorf("add %q: would create a cycle under %q", child.Name, n.Path())
		}
	}

	if previous, ok := n.children[child.Name]; ok {
		previous.parent = nil
	}
	child.parent = n
	n.children[child.Name] = child
	return nil
}

// Path is the slash-joined location of n from its root.
func (n *Node) Path() string {
	if n.parent == nil {
		if n.Name == RootName {
			return RootName
		}
		return n.Name
	}

	var segments []string
	for current := n; current.parent != nil; current = current.parent {
		segments = append(segments, current.Name)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return BuildChildPath(RootName, strings.Join(segments, "/"))
}

// BuildChildPath constructs a child path from parent + name.
func BuildChildPath(parentPath, name string) string {
	if parentPath == RootName {
		return RootName + name
	}
	return parentPath + "/" + name
}
