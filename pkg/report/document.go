package report

import (
	"sort"

	"github.com/replicatedhq/treesize/pkg/query"
)

// DirEntry is a directory path with its aggregated size.
type DirEntry struct {
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size" yaml:"size"`
}

// Document is the structured form of the report command's output.
type Document struct {
	Threshold  int64       `json:"threshold" yaml:"threshold"`
	BoundedSum int64       `json:"boundedSum" yaml:"boundedSum"`
	Usage      query.Usage `json:"usage" yaml:"usage"`
	ToFree     DirEntry    `json:"toFree" yaml:"toFree"`
}

// FromAnalysis flattens an analysis into a Document.
func FromAnalysis(analysis query.Analysis) Document {
	doc := Document{
		Threshold:  analysis.Threshold,
		BoundedSum: analysis.BoundedSum,
		Usage:      analysis.Usage,
	}
	if analysis.ToFree.Node != nil {
		doc.ToFree = DirEntry{Path: analysis.ToFree.Path(), Size: analysis.ToFree.Size}
	}
	return doc
}

// FromDirs converts query results into entries ordered by size, then path.
func FromDirs(dirs []query.Dir) []DirEntry {
	entries := make([]DirEntry, 0, len(dirs))
	for _, dir := range dirs {
		entries = append(entries, DirEntry{Path: dir.Path(), Size: dir.Size})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Size != entries[j].Size {
			return entries[i].Size < entries[j].Size
		}
		return entries[i].Path < entries[j].Path
	})
	return entries
}
