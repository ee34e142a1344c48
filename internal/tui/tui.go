package tui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the interactive widget. State is in-memory only and resets to
// the seed list on the next launch.
func Run() error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	m := newAppModel()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
