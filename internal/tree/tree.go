// Package tree holds the task hierarchy and its operation set.
//
// Every operation is pure: it takes the current tree plus a target id and
// returns a new tree with one mutation applied, sharing untouched subtrees
// with the input. Operations on a missing id return the tree unchanged;
// "target not found" is not an error condition here.
package tree

import (
	"strconv"

	"taskdeck/internal/model"
)

// Tree is the whole hierarchy plus the id mint counter. NextID only ever
// increases, so ids are never reused after deletion.
type Tree struct {
	Roots  []model.TaskNode `json:"roots"`
	NextID int              `json:"nextId"`
}

// Find locates a node by id using pre-order depth-first search in stored
// sibling order. The returned node is a value copy.
func Find(t Tree, id string) (model.TaskNode, bool) {
	return findIn(t.Roots, id)
}

func findIn(nodes []model.TaskNode, id string) (model.TaskNode, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
		if found, ok := findIn(n.Children, id); ok {
			return found, true
		}
	}
	return model.TaskNode{}, false
}

// updateNode is the generic visit-and-rebuild walk backing the single-node
// operations. It returns a rebuilt slice with fn applied to the node matching
// id, or the input slice unchanged when id is absent. Siblings and subtrees
// off the match path are shared, never copied deeply, and the input is never
// mutated.
func updateNode(nodes []model.TaskNode, id string, fn func(model.TaskNode) model.TaskNode) ([]model.TaskNode, bool) {
	for i, n := range nodes {
		if n.ID == id {
			out := make([]model.TaskNode, len(nodes))
			copy(out, nodes)
			out[i] = fn(n)
			return out, true
		}
		if ch, ok := updateNode(n.Children, id, fn); ok {
			out := make([]model.TaskNode, len(nodes))
			copy(out, nodes)
			out[i].Children = ch
			return out, true
		}
	}
	return nodes, false
}

// removeNode rebuilds nodes without the node matching id (and therefore
// without its entire subtree).
func removeNode(nodes []model.TaskNode, id string) ([]model.TaskNode, bool) {
	for i, n := range nodes {
		if n.ID == id {
			out := make([]model.TaskNode, 0, len(nodes)-1)
			out = append(out, nodes[:i]...)
			out = append(out, nodes[i+1:]...)
			return out, true
		}
		if ch, ok := removeNode(n.Children, id); ok {
			out := make([]model.TaskNode, len(nodes))
			copy(out, nodes)
			out[i].Children = ch
			return out, true
		}
	}
	return nodes, false
}

// ToggleDone flips Done on the matched node only. Children are untouched:
// completion does not cascade.
func ToggleDone(t Tree, id string) Tree {
	roots, _ := updateNode(t.Roots, id, func(n model.TaskNode) model.TaskNode {
		n.Done = !n.Done
		return n
	})
	return Tree{Roots: roots, NextID: t.NextID}
}

// SetExpanded stores the visibility flag. The flag is kept even for nodes
// without children so it survives later AddChild calls.
func SetExpanded(t Tree, id string, expanded bool) Tree {
	roots, _ := updateNode(t.Roots, id, func(n model.TaskNode) model.TaskNode {
		n.Expanded = expanded
		return n
	})
	return Tree{Roots: roots, NextID: t.NextID}
}

// SetText replaces the display label of the matched node.
func SetText(t Tree, id, text string) Tree {
	roots, _ := updateNode(t.Roots, id, func(n model.TaskNode) model.TaskNode {
		n.Text = text
		return n
	})
	return Tree{Roots: roots, NextID: t.NextID}
}

// SetNotes replaces the notes of the matched node. Content is stored
// opaquely; the tree never interprets the markup.
func SetNotes(t Tree, id, notes string) Tree {
	roots, _ := updateNode(t.Roots, id, func(n model.TaskNode) model.TaskNode {
		n.Notes = &notes
		return n
	})
	return Tree{Roots: roots, NextID: t.NextID}
}

// AddChild appends a fresh node to parentID's children and forces the parent
// expanded so the new node is visible. When parentID is absent the tree is
// returned unchanged, the counter does not advance, and the returned id is
// empty.
func AddChild(t Tree, parentID string) (Tree, string) {
	id := strconv.Itoa(t.NextID)
	roots, ok := updateNode(t.Roots, parentID, func(n model.TaskNode) model.TaskNode {
		// Copy before append: after earlier deletions the children slice may
		// have spare capacity shared with the input tree.
		ch := make([]model.TaskNode, len(n.Children), len(n.Children)+1)
		copy(ch, n.Children)
		n.Children = append(ch, newNode(id))
		n.Expanded = true
		return n
	})
	if !ok {
		return t, ""
	}
	return Tree{Roots: roots, NextID: t.NextID + 1}, id
}

// AddRoot appends a fresh node to the root sibling list.
func AddRoot(t Tree) (Tree, string) {
	id := strconv.Itoa(t.NextID)
	roots := make([]model.TaskNode, len(t.Roots), len(t.Roots)+1)
	copy(roots, t.Roots)
	roots = append(roots, newNode(id))
	return Tree{Roots: roots, NextID: t.NextID + 1}, id
}

func newNode(id string) model.TaskNode {
	return model.TaskNode{
		ID:       id,
		Expanded: true,
		Children: []model.TaskNode{},
	}
}

// DeleteNode removes the matched node and its entire subtree. Deleting an
// absent id is a no-op, which also makes the operation idempotent.
func DeleteNode(t Tree, id string) Tree {
	roots, _ := removeNode(t.Roots, id)
	return Tree{Roots: roots, NextID: t.NextID}
}

// ReorderSiblings moves fromID to toID's position among root-level siblings.
// Nested reordering is intentionally not supported; ids that are not both
// root-level leave the tree unchanged.
func ReorderSiblings(t Tree, fromID, toID string) Tree {
	from, to := -1, -1
	for i, n := range t.Roots {
		switch n.ID {
		case fromID:
			from = i
		case toID:
			to = i
		}
	}
	if from < 0 || to < 0 || from == to {
		return t
	}
	roots := make([]model.TaskNode, 0, len(t.Roots))
	roots = append(roots, t.Roots[:from]...)
	roots = append(roots, t.Roots[from+1:]...)
	moved := t.Roots[from]
	roots = append(roots[:to], append([]model.TaskNode{moved}, roots[to:]...)...)
	return Tree{Roots: roots, NextID: t.NextID}
}

// CountProgress aggregates over every node at every depth.
func CountProgress(t Tree) model.Progress {
	return countIn(t.Roots)
}

func countIn(nodes []model.TaskNode) model.Progress {
	var p model.Progress
	for _, n := range nodes {
		p.Total++
		if n.Done {
			p.Done++
		}
		sub := countIn(n.Children)
		p.Done += sub.Done
		p.Total += sub.Total
	}
	return p
}

// FlattenVisible lists, in pre-order, the id of every node whose ancestors
// are all expanded. A collapsed subtree contributes only its root id. This is
// the domain over which cursor movement and reordering are defined.
func FlattenVisible(t Tree) []string {
	rows := VisibleRows(t)
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.Node.ID
	}
	return ids
}
