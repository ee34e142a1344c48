package tui

import (
	"strings"
	"testing"

	"taskdeck/internal/model"
	"taskdeck/internal/tree"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func asciiProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestTaskRowRenderIndentAndTwisty(t *testing.T) {
	asciiProfile(t)
	d := newOutlineItemDelegate()

	parent := taskRowItem{row: tree.Row{
		Node:        model.TaskNode{ID: "p", Text: "Parent", Expanded: false, Children: []model.TaskNode{{ID: "c"}}},
		Depth:       0,
		HasChildren: true,
		Collapsed:   true,
		Direct:      model.Progress{Done: 0, Total: 1},
	}}
	out := d.renderTaskRow(80, parent, false)
	if !strings.Contains(out, glyphTwistyCollapsed()) {
		t.Fatalf("collapsed parent missing twisty: %q", out)
	}
	if !strings.Contains(out, "Parent") {
		t.Fatalf("title missing: %q", out)
	}
	if !strings.Contains(out, "0/1") {
		t.Fatalf("progress cookie missing: %q", out)
	}

	child := taskRowItem{row: tree.Row{
		Node:  model.TaskNode{ID: "c", Text: "Child", Done: true},
		Depth: 2,
	}}
	out = d.renderTaskRow(80, child, false)
	if !strings.HasPrefix(out, "    ") {
		t.Fatalf("depth-2 row not indented: %q", out)
	}
	if !strings.Contains(out, glyphCheckboxChecked()) {
		t.Fatalf("done row missing checked box: %q", out)
	}
}

func TestTaskRowRenderTruncatesToWidth(t *testing.T) {
	asciiProfile(t)
	d := newOutlineItemDelegate()

	long := taskRowItem{row: tree.Row{
		Node: model.TaskNode{ID: "x", Text: strings.Repeat("long ", 40)},
	}}
	out := d.renderTaskRow(30, long, true)
	if w := len([]rune(out)); w > 30 {
		t.Fatalf("row wider than list: %d", w)
	}
}

func TestUntitledRowRendersPlaceholder(t *testing.T) {
	asciiProfile(t)
	it := taskRowItem{row: tree.Row{Node: model.TaskNode{ID: "x"}}}
	if it.Title() != "(untitled)" {
		t.Fatalf("got %q", it.Title())
	}
}
