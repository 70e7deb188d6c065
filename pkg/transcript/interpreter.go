package transcript

import (
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treesize/pkg/filetree"
)

// Interpreter replays a transcript against a tree, keeping a single cursor
// on the current directory.
type Interpreter struct {
	root   *filetree.Node
	cursor *filetree.Node
	policy ConflictPolicy
	logger log.Logger

	// total is the size of root, kept current so that no listing can push
	// any directory size past an int64
	total int64
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithConflictPolicy sets how re-declared names are handled.
func WithConflictPolicy(policy ConflictPolicy) Option {
	return func(i *Interpreter) {
		i.policy = policy
	}
}

// WithLogger sets the logger used for per-instruction debug events.
func WithLogger(logger log.Logger) Option {
	return func(i *Interpreter) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// NewInterpreter positions a cursor at root. A nil root gets a fresh one.
func NewInterpreter(root *filetree.Node, opts ...Option) *Interpreter {
	if root == nil {
		root = filetree.NewRoot()
	}
	i := &Interpreter{
		root:   root,
		cursor: root,
		policy: PolicyReplace,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Build replays a transcript into a brand new tree and returns its root.
// Every call starts from its own root, so builds never share state.
func Build(r io.Reader, opts ...Option) (*filetree.Node, error) {
	root := filetree.NewRoot()
	if err := NewInterpreter(root, opts...).Run(r); err != nil {
		return nil, err
	}
	return root, nil
}

// Root is the tree the interpreter mutates.
func (i *Interpreter) Root() *filetree.Node {
	return i.root
}

// Cursor is the current directory.
func (i *Interpreter) Cursor() *filetree.Node {
	return i.cursor
}

// Run consumes r to the end, applying every instruction in order. The first
// parse, navigation or conflict error aborts the run; the tree is left as
// it was at that point.
func (i *Interpreter) Run(r io.Reader) error {
	if !i.root.IsDir() {
		return errors.Errorf("interpreter root %q is not a directory", i.root.Name)
	}

	total, err := filetree.CheckedSize(i.root)
	if err != nil {
		return err
	}
	i.total = total

	debug := level.Debug(log.With(i.logger, "method", "transcript.Run", "policy", i.policy))
	lines := newLineReader(r)
	for {
		text, lineNo, ok, err := lines.next()
		if err != nil {
			return err
		}
		if !ok {
			debug.Log("event", "transcript.done", "lines", lineNo, "cwd", i.cursor.Path())
			return nil
		}

		instruction, err := ParseLine(text, lineNo)
		if err != nil {
			return err
		}

		switch in := instruction.(type) {
		case Cd:
			if err := i.cd(in, lineNo); err != nil {
				return err
			}
			debug.Log("event", "transcript.cd", "line", lineNo, "target", in.Target)
		case Ls:
			entries, err := i.ls(lines)
			if err != nil {
				return err
			}
			debug.Log("event", "transcript.ls", "line", lineNo, "entries", entries)
		default:
			return &ParseError{Line: lineNo, Text: text, Reason: "listing entry outside of an ls run"}
		}
	}
}

func (i *Interpreter) cd(in Cd, lineNo int) error {
	switch in.Target {
	case rootTarget:
		i.cursor = i.root
	case upTarget:
		parent := i.cursor.Parent()
		if parent == nil {
			return &NavigationError{Line: lineNo, From: i.cursor.Path(), Target: in.Target, Reason: "already at the root"}
		}
		i.cursor = parent
	default:
		child, ok := i.cursor.Child(in.Target)
		if !ok {
			return &NavigationError{Line: lineNo, From: i.cursor.Path(), Target: in.Target, Reason: "no such directory"}
		}
		if !child.IsDir() {
			return &NavigationError{Line: lineNo, From: i.cursor.Path(), Target: in.Target, Reason: "not a directory"}
		}
		i.cursor = child
	}
	return nil
}

// ls applies the contiguous run of listing entries that follows "$ ls" and
// stops in front of the next command line.
func (i *Interpreter) ls(lines *lineReader) (int, error) {
	entries := 0
	for {
		text, lineNo, ok, err := lines.next()
		if err != nil {
			return entries, err
		}
		if !ok {
			return entries, nil
		}
		if IsCommand(text) {
			lines.unread()
			return entries, nil
		}

		instruction, err := ParseLine(text, lineNo)
		if err != nil {
			return entries, err
		}

		var node *filetree.Node
		switch entry := instruction.(type) {
		case DirEntry:
			node = filetree.NewDir(entry.Name)
		case FileEntry:
			node, err = filetree.NewFile(entry.Name, entry.Size)
			if err != nil {
				return entries, &ParseError{Line: lineNo, Text: text, Reason: err.Error()}
			}
		default:
			return entries, &ParseError{Line: lineNo, Text: text, Reason: "unexpected instruction in listing"}
		}

		if err := i.declare(node, text, lineNo); err != nil {
			return entries, err
		}
		entries++
	}
}

func (i *Interpreter) declare(node *filetree.Node, text string, lineNo int) error {
	existing, ok := i.cursor.Child(node.Name)
	if ok {
		switch {
		case existing.Kind != node.Kind && i.policy == PolicyStrict:
			return &ConflictError{
				Line:     lineNo,
				Path:     existing.Path(),
				Existing: existing.Kind.String(),
				Declared: node.Kind.String(),
			}
		case existing.IsDir() && node.IsDir() && i.policy != PolicyReplace:
			level.Debug(i.logger).Log("event", "transcript.listing.keep", "line", lineNo, "name", existing.Name)
			return nil
		}
		level.Debug(i.logger).Log("event", "transcript.listing.replace", "line", lineNo, "name", existing.Name)
	}

	total := i.total
	if ok {
		total -= filetree.Size(existing)
	}
	total, fits := filetree.AddSizes(total, node.Size())
	if !fits {
		return &ParseError{Line: lineNo, Text: text, Reason: "total size of the tree overflows int64"}
	}

	if err := i.cursor.Add(node); err != nil {
		return errors.Wrapf(err, "line %d", lineNo)
	}
	i.total = total
	return nil
}
