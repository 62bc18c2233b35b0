package cli

import (
	"time"

	"github.com/alexanderramin/studymate/internal/query"
	"github.com/alexanderramin/studymate/internal/service"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need: the tracker plus terminal context.
type App struct {
	Tracker *service.Tracker

	// DefaultSort orders task listings when --sort is not given.
	DefaultSort query.SortKey

	// Now is the clock used for deadlines and the current week. Nil means
	// time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal, enabling forms and
	// the board.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) defaultSort() query.SortKey {
	if a.DefaultSort == "" {
		return query.SortNewest
	}
	return a.DefaultSort
}

// NewRootCmd creates the top-level "studymate" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studymate",
		Short:         "Track coursework by course, week and deadline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCourseCmd(app),
		newTaskCmd(app),
		newStatsCmd(app),
		newBoardCmd(app),
	)

	return root
}
