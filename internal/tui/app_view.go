package tui

import (
	"fmt"
	"strings"

	"taskdeck/internal/tree"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	header := m.viewHeader()
	footer := styleMuted().Render(m.footerHelp())

	body := m.viewBody()
	if m.modal != modalNone {
		body = lipgloss.Place(m.bodyWidth(), m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.viewModal())
	}

	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m appModel) viewHeader() string {
	p := tree.CountProgress(m.tr)

	title := lipgloss.NewStyle().Bold(true).Render("Taskdeck")
	clock := lipgloss.NewStyle().Foreground(colorChromeMutedFg).Render(m.clock.Format("Mon Jan 2 15:04"))
	cookie := renderProgressCookie(p.Done, p.Total)

	head := title + "  " + clock + cookie
	if m.celebrating {
		banner := lipgloss.NewStyle().
			Foreground(colorCelebrateFg).
			Bold(true).
			Render("  All done — nice work! 🎉")
		head += banner
	} else if p.AllDone() {
		head += lipgloss.NewStyle().Foreground(colorDoneFg).Render("  all done")
	}
	return head
}

func (m appModel) viewBody() string {
	bodyH := m.bodyHeight()
	leftW := m.listWidth()
	rightW := m.bodyWidth() - leftW - 2
	if rightW < 24 {
		rightW = 24
	}

	left := m.list.View()

	var right string
	if row, ok := m.selectedRow(); ok {
		right = m.renderNotesPanel(row, rightW, bodyH)
	} else {
		right = lipgloss.NewStyle().Width(rightW).Height(bodyH).Render("No task selected.")
	}

	gap := strings.Repeat(" ", 2)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}

// renderNotesPanel shows the selected task and its notes. Absent notes render
// the generated template; the tree itself stays untouched until a save.
func (m appModel) renderNotesPanel(row tree.Row, width, height int) string {
	title := lipgloss.NewStyle().Bold(true).Width(width).Render(row.Node.Text)

	state := "open"
	if row.Node.Done {
		state = "done"
	}
	meta := styleMuted().Render(state)
	if row.Direct.Total > 0 {
		meta += styleMuted().Render(fmt.Sprintf("  subtasks %d/%d", row.Direct.Done, row.Direct.Total))
	}

	src := notesTemplate(row.Node.Text)
	if row.Node.HasNotes() {
		src = *row.Node.Notes
	}
	notes := renderMarkdown(src, width)

	out := strings.Join([]string{title, meta, "", notes}, "\n")
	return lipgloss.NewStyle().Width(width).MaxHeight(height).Render(out)
}

func (m appModel) viewModal() string {
	switch m.modal {
	case modalNewTask:
		return renderInputModal("New task", m.input.View())
	case modalNewSubtask:
		return renderInputModal("New subtask", m.input.View())
	case modalRenameTask:
		return renderInputModal("Rename task", m.input.View())
	case modalEditNotes:
		body := m.textarea.View() + "\n\n" + styleMuted().Render("ctrl+s: save   esc: cancel")
		return renderModalBox("Notes", body)
	case modalConfirmDelete:
		text := "(untitled)"
		if n, ok := tree.Find(m.tr, m.modalForID); ok && strings.TrimSpace(n.Text) != "" {
			text = strings.TrimSpace(n.Text)
		}
		return renderConfirmModal("Delete task",
			fmt.Sprintf("Delete %q and all of its subtasks?", text),
			"Delete", "Cancel", m.confirmFocus)
	case modalConfirmReset:
		return renderConfirmModal("Reset",
			"Discard every edit and restore the starter list? This cannot be undone.",
			"Reset", "Cancel", m.confirmFocus)
	}
	return ""
}

func (m appModel) footerHelp() string {
	if m.modal != modalNone {
		switch m.modal {
		case modalConfirmDelete, modalConfirmReset:
			return "tab: focus  enter: select  y/n: quick answer  esc: cancel"
		case modalEditNotes:
			return "ctrl+s: save  esc: cancel"
		default:
			return "enter: save  esc: cancel"
		}
	}
	return "space: toggle  tab: fold  a/A: add task/subtask  e: rename  enter: notes  " +
		"d: delete  J/K: move  y: copy  R: reset  /: filter  q: quit"
}

func (m appModel) bodyWidth() int {
	w := m.width
	if w < 60 {
		w = 60
	}
	return w
}

func (m appModel) bodyHeight() int {
	// Leave room for header/footer.
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	return h
}

func (m appModel) listWidth() int {
	w := m.bodyWidth() / 2
	if w < 40 {
		w = 40
	}
	return w
}

func (m *appModel) resize() {
	m.list.SetSize(m.listWidth(), m.bodyHeight())

	inputW := m.bodyWidth() / 2
	if inputW < 40 {
		inputW = 40
	}
	m.input.Width = inputW - 4

	taW := m.bodyWidth() - 16
	if taW > 76 {
		taW = 76
	}
	if taW < 40 {
		taW = 40
	}
	m.textarea.SetWidth(taW)
	taH := m.bodyHeight() - 6
	if taH > 16 {
		taH = 16
	}
	if taH < 5 {
		taH = 5
	}
	m.textarea.SetHeight(taH)
}

func renderInputModal(title, inputView string) string {
	body := inputView + "\n\n" + styleMuted().Render("enter: save   esc: cancel")
	return renderModalBox(title, body)
}

func renderConfirmModal(title, body, confirmLabel, cancelLabel string, focus confirmModalFocus) string {
	// Avoid borders around the buttons: some terminals show background
	// artifacts when nesting bordered components inside a colored modal.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	}
	if focus == confirmFocusCancel {
		cancel = btnActive.Render(cancelLabel)
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)
	content := strings.Join([]string{body, "", controls}, "\n")
	return renderModalBox(title, content)
}

func renderModalBox(title, content string) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Render(title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2)
	return box.Render(header + "\n\n" + content)
}
