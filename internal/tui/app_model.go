package tui

import (
	"os"
	"strings"
	"time"

	"taskdeck/internal/tree"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// celebrationDuration bounds the ALL_DONE banner; it self-clears afterwards
// and does not re-trigger while the tree stays all-done.
const celebrationDuration = 6 * time.Second

type appModel struct {
	tr tree.Tree

	width  int
	height int

	list list.Model

	modal modalKind
	// modalForID is the operation target captured when the modal opened. The
	// tree ops absorb a vanished target silently, so no re-validation here.
	modalForID   string
	input        textinput.Model
	textarea     textarea.Model
	confirmFocus confirmModalFocus

	// ALL_DONE state machine. wasAllDone tracks the previous aggregate state
	// so the banner fires exactly once per transition into ALL_DONE;
	// celebrationSeq invalidates pending clear timers whenever the state
	// changes underneath them.
	wasAllDone     bool
	celebrating    bool
	celebrationSeq int

	clock time.Time

	debugEnabled bool
	debugLogPath string
}

func newAppModel() appModel {
	m := appModel{
		tr:    tree.Seed(),
		clock: time.Now(),
	}

	if strings.TrimSpace(os.Getenv("TASKDECK_TUI_DEBUG")) != "" {
		m.debugEnabled = true
	}
	m.debugLogPath = strings.TrimSpace(os.Getenv("TASKDECK_TUI_DEBUG_LOG"))

	m.list = newList("Tasks", []list.Item{})
	m.list.SetDelegate(newOutlineItemDelegate())
	// "/" filtering to quickly scope down long lists.
	m.list.SetFilteringEnabled(true)
	m.list.SetShowFilter(true)

	m.input = textinput.New()
	m.input.Placeholder = "Task"
	m.input.CharLimit = 200
	m.input.Width = 40

	m.textarea = textarea.New()
	m.textarea.Placeholder = "Write notes…"
	m.textarea.CharLimit = 0
	m.textarea.SetWidth(72)
	m.textarea.SetHeight(12)
	m.textarea.ShowLineNumbers = false

	m.wasAllDone = tree.CountProgress(m.tr).AllDone()
	m.refreshRows()
	return m
}

func (m appModel) Init() tea.Cmd {
	return clockTick()
}

// refreshRows rebuilds the visible outline from the tree, keeping the
// selection on the same node where possible.
func (m *appModel) refreshRows() {
	curID := m.selectedID()
	rows := tree.VisibleRows(m.tr)
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, taskRowItem{row: r})
	}
	m.list.SetItems(items)
	if curID != "" {
		selectListItemByID(&m.list, curID)
	}
}

func (m appModel) selectedID() string {
	if it, ok := m.list.SelectedItem().(taskRowItem); ok {
		return it.row.Node.ID
	}
	return ""
}

func (m appModel) selectedRow() (tree.Row, bool) {
	it, ok := m.list.SelectedItem().(taskRowItem)
	if !ok {
		return tree.Row{}, false
	}
	return it.row, true
}

func clockTick() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg { return clockTickMsg{now: t} })
}

func celebrationTimer(seq int) tea.Cmd {
	return tea.Tick(celebrationDuration, func(time.Time) tea.Msg { return celebrationDoneMsg{seq: seq} })
}
