package tui

import (
	"strings"
	"testing"
)

func TestNotesTemplateUsesTaskText(t *testing.T) {
	got := notesTemplate("Water the plants")
	if !strings.HasPrefix(got, "# Water the plants\n") {
		t.Fatalf("template heading: %q", got)
	}
	if !strings.Contains(got, "_No notes yet._") {
		t.Fatalf("template marker missing: %q", got)
	}
}

func TestNotesTemplateFallsBackForEmptyText(t *testing.T) {
	for _, text := range []string{"", "   "} {
		got := notesTemplate(text)
		if !strings.HasPrefix(got, "# Untitled task\n") {
			t.Fatalf("fallback heading for %q: %q", text, got)
		}
	}
}
