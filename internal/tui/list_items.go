package tui

import (
	"fmt"
	"math"
	"strings"

	"taskdeck/internal/tree"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type taskRowItem struct {
	row tree.Row
}

func (i taskRowItem) FilterValue() string { return strings.TrimSpace(i.row.Node.Text) }

func (i taskRowItem) Title() string {
	t := strings.TrimSpace(i.row.Node.Text)
	if t == "" {
		return "(untitled)"
	}
	return t
}

var (
	progressFillBg  lipgloss.TerminalColor = ac("114", "29")
	progressEmptyBg lipgloss.TerminalColor = ac("253", "237")
	progressFillFg  lipgloss.TerminalColor = ac("235", "255")
	progressEmptyFg lipgloss.TerminalColor = ac("240", "252")
)

// renderProgressCookie renders "d/t" centered in a small filled bar. Empty
// when there is nothing to count.
func renderProgressCookie(done, total int) string {
	if total <= 0 {
		return ""
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}

	inner := fmt.Sprintf("%d/%d", done, total)
	innerRunes := []rune(inner)

	ratio := float64(done) / float64(total)
	width := 10
	minW := len(innerRunes) + 2
	if minW > width {
		width = minW
	}
	filledN := int(math.Round(ratio * float64(width)))
	if filledN < 0 {
		filledN = 0
	}
	if filledN > width {
		filledN = width
	}
	start := (width - len(innerRunes)) / 2

	var b strings.Builder
	for i := 0; i < width; i++ {
		bg := progressEmptyBg
		fg := progressEmptyFg
		if i < filledN {
			bg = progressFillBg
			fg = progressFillFg
		}
		ch := " "
		if i >= start && i < start+len(innerRunes) {
			ch = string(innerRunes[i-start])
		}
		b.WriteString(lipgloss.NewStyle().Background(bg).Foreground(fg).Render(ch))
	}
	return " " + b.String()
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// We render our own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("task", "tasks")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func selectListItemByID(l *list.Model, id string) {
	for i := 0; i < len(l.Items()); i++ {
		if it, ok := l.Items()[i].(taskRowItem); ok && it.row.Node.ID == id {
			l.Select(i)
			return
		}
	}
}
