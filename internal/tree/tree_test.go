package tree

import (
	"reflect"
	"testing"

	"taskdeck/internal/model"
)

func TestToggleDoneIsInvolutive(t *testing.T) {
	seed := Seed()
	for _, id := range []string{"1", "2", "2-1", "5-1"} {
		back := ToggleDone(ToggleDone(seed, id), id)
		if !reflect.DeepEqual(back, seed) {
			t.Fatalf("toggle twice on %q changed the tree", id)
		}
	}
}

func TestToggleDoneDoesNotCascade(t *testing.T) {
	got := ToggleDone(Seed(), "2")

	n, ok := Find(got, "2")
	if !ok || !n.Done {
		t.Fatalf("expected node 2 done=true, got %+v", n)
	}
	// Children keep their own flags.
	if ch, _ := Find(got, "2-1"); !ch.Done {
		t.Fatalf("child 2-1 should stay done")
	}
	if ch, _ := Find(got, "2-2"); ch.Done {
		t.Fatalf("child 2-2 should stay not-done")
	}
}

func TestOperationsOnMissingIDAreNoOps(t *testing.T) {
	seed := Seed()

	cases := map[string]Tree{
		"toggle":  ToggleDone(seed, "nope"),
		"expand":  SetExpanded(seed, "nope", false),
		"text":    SetText(seed, "nope", "x"),
		"notes":   SetNotes(seed, "nope", "x"),
		"delete":  DeleteNode(seed, "nope"),
		"reorder": ReorderSiblings(seed, "nope", "1"),
	}
	for name, got := range cases {
		if !reflect.DeepEqual(got, seed) {
			t.Fatalf("%s on missing id changed the tree", name)
		}
	}

	added, id := AddChild(seed, "nope")
	if id != "" {
		t.Fatalf("AddChild on missing parent returned id %q", id)
	}
	if !reflect.DeepEqual(added, seed) {
		t.Fatalf("AddChild on missing parent changed the tree")
	}
	if added.NextID != seed.NextID {
		t.Fatalf("AddChild on missing parent advanced the counter")
	}
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	seed := Seed()
	snapshot := Seed()

	_ = ToggleDone(seed, "2-2")
	_ = SetExpanded(seed, "2", false)
	_ = DeleteNode(seed, "5")
	_, _ = AddChild(seed, "2")
	_ = SetNotes(seed, "3", "remember the fern")
	_ = ReorderSiblings(seed, "1", "6")

	if !reflect.DeepEqual(seed, snapshot) {
		t.Fatalf("input tree was mutated")
	}
}

func TestDeleteNodeRemovesSubtreeAndIsIdempotent(t *testing.T) {
	seed := Seed()

	once := DeleteNode(seed, "2")
	if _, ok := Find(once, "2"); ok {
		t.Fatalf("node 2 still present")
	}
	// The whole subtree goes with it.
	if _, ok := Find(once, "2-1"); ok {
		t.Fatalf("orphaned child 2-1")
	}
	if _, ok := Find(once, "2-2"); ok {
		t.Fatalf("orphaned child 2-2")
	}

	twice := DeleteNode(once, "2")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("delete is not idempotent")
	}

	p := CountProgress(once)
	if p.Total != 6 || p.Done != 1 {
		t.Fatalf("after deleting subtree: got %d/%d, want 1/6", p.Done, p.Total)
	}
}

func TestCountProgressSeed(t *testing.T) {
	p := CountProgress(Seed())
	if p.Total != 9 || p.Done != 2 {
		t.Fatalf("seed progress: got %d/%d, want 2/9", p.Done, p.Total)
	}
	if p.Done > p.Total {
		t.Fatalf("done exceeds total")
	}
	if p.AllDone() {
		t.Fatalf("seed must not be all-done")
	}
}

func TestAllDoneAfterTogglingEverything(t *testing.T) {
	tr := Seed()
	for _, id := range FlattenVisible(tr) {
		if n, _ := Find(tr, id); !n.Done {
			tr = ToggleDone(tr, id)
		}
	}
	p := CountProgress(tr)
	if !p.AllDone() {
		t.Fatalf("expected all-done, got %d/%d", p.Done, p.Total)
	}

	// An empty tree has nothing to celebrate.
	if (model.Progress{}).AllDone() {
		t.Fatalf("empty progress must not be all-done")
	}
}

func TestAddChildAppendsAndExpandsParentOnly(t *testing.T) {
	seed := Seed()
	collapsed := SetExpanded(seed, "2", false)

	got, id := AddChild(collapsed, "2")
	if id != "7" {
		t.Fatalf("minted id: got %q, want %q", id, "7")
	}

	parent, ok := Find(got, "2")
	if !ok {
		t.Fatalf("parent missing")
	}
	if len(parent.Children) != 3 {
		t.Fatalf("child count: got %d, want 3", len(parent.Children))
	}
	if !parent.Expanded {
		t.Fatalf("parent should be forced expanded")
	}
	child := parent.Children[2]
	if child.ID != "7" || child.Done || !child.Expanded || child.Text != "" {
		t.Fatalf("fresh child: %+v", child)
	}
	if child.Children == nil || len(child.Children) != 0 {
		t.Fatalf("fresh child must own an empty children list")
	}
	if got.NextID != collapsed.NextID+1 {
		t.Fatalf("counter: got %d, want %d", got.NextID, collapsed.NextID+1)
	}

	// Every other node is untouched.
	for _, rid := range []string{"1", "3", "4", "5", "5-1", "6"} {
		before, _ := Find(collapsed, rid)
		after, _ := Find(got, rid)
		if !reflect.DeepEqual(before, after) {
			t.Fatalf("node %q changed by AddChild on 2", rid)
		}
	}
}

func TestIDsAreNeverReusedAfterDeletion(t *testing.T) {
	tr := Seed()
	tr, first := AddRoot(tr)
	tr = DeleteNode(tr, first)
	tr, second := AddRoot(tr)
	if first == second {
		t.Fatalf("id %q was reused after deletion", first)
	}
}

func TestReorderSiblingsRootLevel(t *testing.T) {
	seed := Seed()

	got := ReorderSiblings(seed, "1", "6")
	want := []string{"2", "3", "4", "5", "6", "1"}
	for i, n := range got.Roots {
		if n.ID != want[i] {
			t.Fatalf("root order: got %v at %d, want %v", n.ID, i, want)
		}
	}
	// Moved element keeps its subtree; static siblings keep theirs.
	if n, _ := Find(got, "2"); len(n.Children) != 2 {
		t.Fatalf("node 2 lost children during reorder")
	}

	// Nested ids are out of scope for reordering.
	if nested := ReorderSiblings(seed, "2-1", "2-2"); !reflect.DeepEqual(nested, seed) {
		t.Fatalf("nested reorder should be a no-op")
	}
	if self := ReorderSiblings(seed, "3", "3"); !reflect.DeepEqual(self, seed) {
		t.Fatalf("reorder onto itself should be a no-op")
	}
}

func TestSetNotesStoresContentOpaquely(t *testing.T) {
	raw := "# heading\n\n**bold** and [a link](https://example.com)\n<->not markup"
	got := SetNotes(Seed(), "4", raw)
	n, ok := Find(got, "4")
	if !ok || n.Notes == nil {
		t.Fatalf("notes not stored")
	}
	if *n.Notes != raw {
		t.Fatalf("notes altered: %q", *n.Notes)
	}
	if orig, _ := Find(Seed(), "4"); orig.HasNotes() {
		t.Fatalf("seed node 4 should have no notes")
	}
}

func TestFindIsPreOrder(t *testing.T) {
	// Two nodes share a text but not an id; Find must return the pre-order
	// first match when searching by id, and ids are unique by construction.
	tr := Seed()
	ids := FlattenVisible(tr)
	want := []string{"1", "2", "2-1", "2-2", "3", "4", "5", "5-1", "6"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("pre-order: got %v, want %v", ids, want)
	}
}

func TestFlattenVisibleSkipsCollapsedSubtrees(t *testing.T) {
	tr := SetExpanded(Seed(), "2", false)
	ids := FlattenVisible(tr)
	want := []string{"1", "2", "3", "4", "5", "5-1", "6"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("got %v, want %v", ids, want)
	}

	// Total progress is indifferent to visibility.
	p := CountProgress(tr)
	if p.Total != 9 || p.Done != 2 {
		t.Fatalf("collapse changed progress: %d/%d", p.Done, p.Total)
	}
}
