package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width + style. Creating a renderer with
	// WithAutoStyle can trigger terminal capability/background queries that
	// may block on some terminals. A fixed style + caching keeps notes-panel
	// rendering fast and predictable.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders notes markdown for the side panel. On any renderer
// error the raw source is returned; notes are display-opaque and must never
// be lost to a rendering failure.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			// Avoid WithAutoStyle(): it can block waiting on terminal queries.
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyle() string {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return "notty"
	}
	// Explicit override for debugging / accessibility.
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TASKDECK_TUI_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	case "notty", "ascii":
		return "notty"
	}
	// Keep markdown styling aligned with the TUI theme preference. Without
	// this, notes can render with a dark palette even when the TUI is forced
	// to light mode, making text unreadable on light terminals.
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
