package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive task board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("board needs an interactive terminal; use 'studymate task list' instead")
			}
			view, err := flags.view(app)
			if err != nil {
				return err
			}

			m := newBoardModel(app, view)
			defer m.Close()

			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
