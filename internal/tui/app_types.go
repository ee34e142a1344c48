package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNewTask
	modalNewSubtask
	modalRenameTask
	modalEditNotes
	modalConfirmDelete
	modalConfirmReset
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// clockTickMsg carries the low-frequency header clock update. Read-only: it
// never touches the tree.
type clockTickMsg struct{ now time.Time }

// celebrationDoneMsg clears the celebration banner. The seq guards against a
// stale timer firing after the tree left and re-entered ALL_DONE.
type celebrationDoneMsg struct{ seq int }

func modalToString(k modalKind) string {
	switch k {
	case modalNone:
		return "none"
	case modalNewTask:
		return "new-task"
	case modalNewSubtask:
		return "new-subtask"
	case modalRenameTask:
		return "rename"
	case modalEditNotes:
		return "notes"
	case modalConfirmDelete:
		return "confirm-delete"
	case modalConfirmReset:
		return "confirm-reset"
	default:
		return "?"
	}
}

// debugLogf appends a line to the TASKDECK_TUI_DEBUG_LOG file. A TUI owns the
// terminal, so diagnostics go to a file instead of stdout. Best-effort: any
// failure is swallowed.
func (m appModel) debugLogf(format string, args ...any) {
	if !m.debugEnabled {
		return
	}
	path := strings.TrimSpace(m.debugLogPath)
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, time.Now().Format("15:04:05.000")+" "+format+"\n", args...)
}

func (m appModel) debugKeyMsg(k tea.KeyMsg) {
	if !m.debugEnabled {
		return
	}
	m.debugLogf("key modal=%s filter(setting=%v filtered=%v) str=%q type=%v",
		modalToString(m.modal),
		m.list.SettingFilter(),
		m.list.IsFiltered(),
		k.String(),
		k.Type,
	)
}
