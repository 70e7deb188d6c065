package filetree

// WalkFunc is called once per node. Returning false from a directory
// skips its descendants.
type WalkFunc func(n *Node) bool

// Walk visits n and every node below it in pre-order, children in name
// order. It is iterative, like Size.
func Walk(n *Node, fn WalkFunc) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(current) || !current.IsDir() {
			continue
		}
		children := current.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Directories returns every directory at or below n exactly once.
func Directories(n *Node) []*Node {
	var dirs []*Node
	Walk(n, func(node *Node) bool {
		if node.IsDir() {
			dirs = append(dirs, node)
		}
		return true
	})
	return dirs
}

// CountNodes counts all nodes in a tree.
func CountNodes(root *Node) int {
	count := 0
	Walk(root, func(*Node) bool {
		count++
		return true
	})
	return count
}

// FindByPath resolves an absolute path in the tree rooted at root.
func FindByPath(root *Node, path string) *Node {
	var found *Node
	Walk(root, func(node *Node) bool {
		if found != nil {
			return false
		}
		if node.Path() == path {
			found = node
			return false
		}
		return node.IsDir()
	})
	return found
}

// Flatten returns all nodes in a flat map keyed by path.
func Flatten(root *Node) map[string]*Node {
	result := make(map[string]*Node)
	Walk(root, func(node *Node) bool {
		result[node.Path()] = node
		return true
	})
	return result
}
