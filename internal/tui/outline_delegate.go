package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type outlineItemDelegate struct {
	normal   lipgloss.Style
	done     lipgloss.Style
	selected lipgloss.Style
}

func newOutlineItemDelegate() outlineItemDelegate {
	return outlineItemDelegate{
		normal: lipgloss.NewStyle(),
		done: lipgloss.NewStyle().
			Foreground(colorDoneFg).
			Strikethrough(true),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

func (d outlineItemDelegate) Height() int  { return 1 }
func (d outlineItemDelegate) Spacing() int { return 0 }
func (d outlineItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d outlineItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}
	it, ok := item.(taskRowItem)
	if !ok {
		fmt.Fprint(w, "")
		return
	}
	fmt.Fprint(w, d.renderTaskRow(contentW, it, index == m.Index()))
}

func (d outlineItemDelegate) renderTaskRow(width int, it taskRowItem, focused bool) string {
	row := it.row

	base := d.normal
	if row.Node.Done {
		base = d.done
	}
	if focused {
		base = base.
			Foreground(d.selected.GetForeground()).
			Background(d.selected.GetBackground()).
			Bold(true)
	}

	indent := strings.Repeat("  ", row.Depth)
	twisty := " "
	if row.HasChildren {
		if row.Collapsed {
			twisty = glyphTwistyCollapsed()
		} else {
			twisty = glyphTwistyExpanded()
		}
	}

	// The checkbox is rendered as its own styled segment so that its internal
	// ANSI reset doesn't wipe out the focused-row background for the rest of
	// the row.
	checkbox := renderCheckbox(row.Node.Done, focused, d.selected.GetBackground())

	notesMark := ""
	if row.Node.HasNotes() {
		notesMark = " " + base.Render(glyphBullet())
	}

	out := base.Render(indent+twisty+" ") +
		checkbox +
		base.Render(" "+it.Title()) +
		notesMark +
		renderProgressCookie(row.Direct.Done, row.Direct.Total)

	// Fill to full width so a focused-row highlight covers the whole line.
	curW := xansi.StringWidth(out)
	if curW < width {
		out += base.Render(strings.Repeat(" ", width-curW))
	} else if curW > width {
		out = xansi.Cut(out, 0, width)
	}
	return out
}

func renderCheckbox(done, focused bool, focusBg lipgloss.TerminalColor) string {
	txt := glyphCheckboxOpen()
	style := lipgloss.NewStyle().Foreground(colorTodoFg).Bold(true)
	if done {
		txt = glyphCheckboxChecked()
		style = lipgloss.NewStyle().Foreground(colorDoneFg).Bold(true)
	}
	if focused {
		style = style.Background(focusBg)
	}
	return style.Render(txt)
}
