package model

// TaskNode is a single to-do entry. Children are owned exclusively by their
// parent and sibling order is significant.
type TaskNode struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	Expanded bool   `json:"expanded"`

	// Notes holds free-form markdown. nil means "no notes yet": the UI
	// renders a generated template instead, without mutating the node.
	Notes *string `json:"notes,omitempty"`

	Children []TaskNode `json:"children"`
}

// HasNotes reports whether the node carries user-authored notes.
func (n TaskNode) HasNotes() bool { return n.Notes != nil }

// Progress is an aggregate over every node at every depth.
type Progress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// AllDone reports whether the tree is in the ALL_DONE state. An empty tree
// is not all-done: there is nothing to celebrate.
func (p Progress) AllDone() bool { return p.Total > 0 && p.Done == p.Total }
