package filetree

// Entry is the serializable view of a Node, used when rendering a tree
// as json or yaml. Sizes of directories are aggregated at snapshot time.
type Entry struct {
	Name     string  `json:"name" yaml:"name"`
	Path     string  `json:"path" yaml:"path"`
	Kind     Kind    `json:"kind" yaml:"kind"`
	Size     int64   `json:"size" yaml:"size"`
	Children []Entry `json:"children,omitempty" yaml:"children,omitempty"`
}
