package tui

import "strings"

// notesTemplate is what the notes panel (and the editor prefill) shows for a
// task without notes. Purely derived from the task text; the model is not
// mutated until the user saves an edit.
func notesTemplate(taskText string) string {
	title := strings.TrimSpace(taskText)
	if title == "" {
		title = "Untitled task"
	}
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString("_No notes yet._\n\n")
	b.WriteString("Markdown works here: **bold**, _italic_, `code`, lists and\n")
	b.WriteString("[links](https://example.com).\n")
	return b.String()
}
