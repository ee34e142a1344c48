package cli

import (
	"fmt"
	"os"
	"strings"

	"taskdeck/internal/tui"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func NewRootCmd() *cobra.Command {
	var theme string
	var glyphs string

	cmd := &cobra.Command{
		Use:          "taskdeck",
		Short:        "A nested to-do list with notes, in your terminal",
		SilenceUsage: true,
		Long: strings.TrimSpace(`
Taskdeck is a single-session to-do widget: nested subtasks, keyboard
reordering, and a markdown notes panel per task. Nothing is written to disk;
every launch starts from the same seed list.
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags mirror the TASKDECK_TUI_* env overrides; the flag wins.
			if v := strings.TrimSpace(theme); v != "" {
				os.Setenv("TASKDECK_TUI_THEME", v)
			}
			if v := strings.TrimSpace(glyphs); v != "" {
				os.Setenv("TASKDECK_TUI_GLYPHS", v)
			}
			return tui.Run()
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "color theme: light, dark or auto")
	cmd.Flags().StringVar(&glyphs, "glyphs", "", "glyph set: unicode or ascii")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the taskdeck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "taskdeck", Version)
		},
	})

	return cmd
}
