package filetree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalkPreOrder(t *testing.T) {
	var paths []string
	Walk(sampleTree(t), func(n *Node) bool {
		paths = append(paths, n.Path())
		return true
	})

	require.Equal(t, []string{
		"/",
		"/a",
		"/a/e",
		"/a/e/i",
		"/a/f",
		"/a/g",
		"/b.txt",
		"/d",
		"/d/j",
	}, paths)
}

func TestWalkSkipsSubtree(t *testing.T) {
	var paths []string
	Walk(sampleTree(t), func(n *Node) bool {
		paths = append(paths, n.Path())
		return n.Name != "a"
	})

	require.Equal(t, []string{"/", "/a", "/b.txt", "/d", "/d/j"}, paths)
}

func TestDirectoriesVisitsEachOnce(t *testing.T) {
	dirs := Directories(sampleTree(t))

	seen := map[string]int{}
	for _, dir := range dirs {
		seen[dir.Path()]++
	}
	require.Equal(t, map[string]int{"/": 1, "/a": 1, "/a/e": 1, "/d": 1}, seen)
}

func TestFindAndFlatten(t *testing.T) {
	req := require.New(t)
	root := sampleTree(t)

	found := FindByPath(root, "/a/e/i")
	req.NotNil(found)
	req.Equal("i", found.Name)
	req.Nil(FindByPath(root, "/nope"))

	flat := Flatten(root)
	req.Len(flat, 9)
	req.Equal(9, CountNodes(root))
	req.Equal(KindDir, flat["/d"].Kind)
}

func TestBuildChildPath(t *testing.T) {
	require.Equal(t, "/a", BuildChildPath("/", "a"))
	require.Equal(t, "/a/b", BuildChildPath("/a", "b"))
}
