package tui

import (
	"strings"

	"taskdeck/internal/tree"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case clockTickMsg:
		m.clock = msg.now
		return m, clockTick()

	case celebrationDoneMsg:
		// A stale timer (tree changed since it was armed) is ignored.
		if msg.seq == m.celebrationSeq {
			m.celebrating = false
		}
		return m, nil

	case tea.KeyMsg:
		m.debugKeyMsg(msg)
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m.updateOutline(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateOutline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the "/" filter prompt is active, every key belongs to the list.
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case " ", "x":
		if id := m.selectedID(); id != "" {
			return m.applyMutation(tree.ToggleDone(m.tr, id))
		}
		return m, nil

	case "tab":
		if row, ok := m.selectedRow(); ok {
			return m.applyMutation(tree.SetExpanded(m.tr, row.Node.ID, !row.Node.Expanded))
		}
		return m, nil

	case "a":
		m.modal = modalNewTask
		m.modalForID = ""
		m.input.Placeholder = "New task"
		m.input.SetValue("")
		return m, m.input.Focus()

	case "A":
		if id := m.selectedID(); id != "" {
			m.modal = modalNewSubtask
			m.modalForID = id
			m.input.Placeholder = "New subtask"
			m.input.SetValue("")
			return m, m.input.Focus()
		}
		return m, nil

	case "e":
		if row, ok := m.selectedRow(); ok {
			m.modal = modalRenameTask
			m.modalForID = row.Node.ID
			m.input.Placeholder = "Task"
			m.input.SetValue(row.Node.Text)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}
		return m, nil

	case "enter", "n":
		if row, ok := m.selectedRow(); ok {
			m.modal = modalEditNotes
			m.modalForID = row.Node.ID
			if row.Node.HasNotes() {
				m.textarea.SetValue(*row.Node.Notes)
			} else {
				m.textarea.SetValue(notesTemplate(row.Node.Text))
			}
			return m, m.textarea.Focus()
		}
		return m, nil

	case "d":
		if id := m.selectedID(); id != "" {
			m.modal = modalConfirmDelete
			m.modalForID = id
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil

	case "R":
		m.modal = modalConfirmReset
		m.modalForID = ""
		m.confirmFocus = confirmFocusCancel
		return m, nil

	case "J", "shift+down":
		return m.moveRootSelection(1)

	case "K", "shift+up":
		return m.moveRootSelection(-1)

	case "y":
		if row, ok := m.selectedRow(); ok {
			txt := row.Node.Text
			if row.Node.HasNotes() {
				txt += "\n\n" + *row.Node.Notes
			}
			// Best-effort; clipboard access is unavailable over some SSH setups.
			_ = clipboard.WriteAll(txt)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// moveRootSelection reorders the selected root task one slot up or down.
// Nested rows don't move; root-only reordering mirrors the drag-and-drop
// behavior this outline is modeled on.
func (m appModel) moveRootSelection(delta int) (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok || row.Depth != 0 {
		return m, nil
	}
	idx := -1
	for i, n := range m.tr.Roots {
		if n.ID == row.Node.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m, nil
	}
	j := idx + delta
	if j < 0 || j >= len(m.tr.Roots) {
		return m, nil
	}
	return m.applyMutation(tree.ReorderSiblings(m.tr, row.Node.ID, m.tr.Roots[j].ID))
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalNewTask, modalNewSubtask, modalRenameTask:
		switch msg.String() {
		case "esc", "ctrl+g":
			m.closeModal()
			return m, nil
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			next := m.tr
			var newID string
			switch m.modal {
			case modalNewTask:
				next, newID = tree.AddRoot(next)
				next = tree.SetText(next, newID, text)
			case modalNewSubtask:
				next, newID = tree.AddChild(next, m.modalForID)
				if newID != "" {
					next = tree.SetText(next, newID, text)
				}
			case modalRenameTask:
				next = tree.SetText(next, m.modalForID, text)
			}
			m.closeModal()
			res, cmd := m.applyMutation(next)
			if newID != "" {
				mm := res.(appModel)
				selectListItemByID(&mm.list, newID)
				return mm, cmd
			}
			return res, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case modalEditNotes:
		switch msg.String() {
		case "esc", "ctrl+g":
			m.closeModal()
			return m, nil
		case "ctrl+s":
			id := m.modalForID
			notes := m.textarea.Value()
			m.closeModal()
			return m.applyMutation(tree.SetNotes(m.tr, id, notes))
		}
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd

	case modalConfirmDelete, modalConfirmReset:
		switch msg.String() {
		case "esc", "ctrl+g", "n":
			m.closeModal()
			return m, nil
		case "tab", "left", "right":
			if m.confirmFocus == confirmFocusConfirm {
				m.confirmFocus = confirmFocusCancel
			} else {
				m.confirmFocus = confirmFocusConfirm
			}
			return m, nil
		case "y":
			return m.confirmModalAccepted()
		case "enter":
			if m.confirmFocus == confirmFocusCancel {
				m.closeModal()
				return m, nil
			}
			return m.confirmModalAccepted()
		}
		return m, nil
	}

	m.closeModal()
	return m, nil
}

func (m appModel) confirmModalAccepted() (tea.Model, tea.Cmd) {
	kind := m.modal
	id := m.modalForID
	m.closeModal()
	switch kind {
	case modalConfirmDelete:
		return m.applyMutation(tree.DeleteNode(m.tr, id))
	case modalConfirmReset:
		// Deliberately destructive and not undoable.
		return m.applyMutation(tree.Seed())
	}
	return m, nil
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.modalForID = ""
	m.confirmFocus = confirmFocusConfirm

	m.input.Placeholder = "Task"
	m.input.SetValue("")
	m.input.Blur()

	m.textarea.SetValue("")
	m.textarea.Blur()
}

// applyMutation installs the new tree, rebuilds the visible rows, and runs
// the ALL_DONE state machine.
func (m appModel) applyMutation(next tree.Tree) (tea.Model, tea.Cmd) {
	m.tr = next
	m.refreshRows()

	allDone := tree.CountProgress(m.tr).AllDone()
	var cmd tea.Cmd
	switch {
	case allDone && !m.wasAllDone:
		// Fires once per transition; staying in ALL_DONE does not re-trigger.
		m.celebrating = true
		m.celebrationSeq++
		cmd = celebrationTimer(m.celebrationSeq)
	case !allDone && m.wasAllDone:
		// Leaving ALL_DONE clears the banner, invalidates any pending timer,
		// and re-arms the effect for the next full completion.
		m.celebrating = false
		m.celebrationSeq++
	}
	m.wasAllDone = allDone
	return m, cmd
}
