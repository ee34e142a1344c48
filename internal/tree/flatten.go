package tree

import "taskdeck/internal/model"

// Row is one visible outline line: the node plus the presentation facts the
// delegate needs (depth, twisty state, direct-children progress).
type Row struct {
	Node        model.TaskNode
	Depth       int
	HasChildren bool
	Collapsed   bool

	// Direct counts direct children only. Parent cookies stay stable and
	// predictable this way: a deep subtree does not inflate the denominator
	// for its ancestors.
	Direct model.Progress
}

// VisibleRows flattens the tree in pre-order, skipping the descendants of
// collapsed nodes.
func VisibleRows(t Tree) []Row {
	var out []Row
	var walk func(nodes []model.TaskNode, depth int)
	walk = func(nodes []model.TaskNode, depth int) {
		for _, n := range nodes {
			out = append(out, Row{
				Node:        n,
				Depth:       depth,
				HasChildren: len(n.Children) > 0,
				Collapsed:   len(n.Children) > 0 && !n.Expanded,
				Direct:      directProgress(n),
			})
			if n.Expanded {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(t.Roots, 0)
	return out
}

func directProgress(n model.TaskNode) model.Progress {
	var p model.Progress
	for _, ch := range n.Children {
		p.Total++
		if ch.Done {
			p.Done++
		}
	}
	return p
}
