package cli

import (
	"fmt"

	"github.com/alexanderramin/studymate/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion and per-course progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov := app.Tracker.Stats(app.now())
			if ov.Total == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks yet.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(ov))
			return nil
		},
	}
}
