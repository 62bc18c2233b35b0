package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studymate/internal/cli/formatter"
	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/alexanderramin/studymate/internal/query"
	"github.com/alexanderramin/studymate/internal/repository"
	"github.com/alexanderramin/studymate/internal/service"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskStatusCmd(app),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
		newTaskMoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		title, course, place string
		week                 int
		deadline             dateValue
		status               = statusValue(domain.StatusTodo)
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (strings.TrimSpace(title) == "" || course == "") && app.interactive() {
				if err := runTaskWizard(app, &title, &course, &week, &deadline, &place); err != nil {
					return err
				}
			}
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("task title is required (use --title)")
			}
			courseID, err := resolveCourseID(app, course)
			if err != nil {
				return err
			}

			task, err := app.Tracker.AddTask(context.Background(), repository.NewTask{
				Title:           title,
				CourseID:        courseID,
				Week:            week,
				Deadline:        time.Time(deadline),
				Status:          domain.TaskStatus(status),
				SubmissionPlace: place,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q (week %d, due %s) %s\n",
				formatter.StyleGreen.Render("✔"), task.Title, task.Week,
				domain.FormatDate(task.Deadline), formatter.TruncID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&course, "course", "", "Course ID, ID prefix, or name")
	cmd.Flags().IntVar(&week, "week", domain.MinWeek, "Week 1-16")
	cmd.Flags().Var(&deadline, "deadline", "Deadline YYYY-MM-DD (default today)")
	cmd.Flags().Var(&status, "status", "Initial status: Todo, Doing or Done")
	cmd.Flags().StringVar(&place, "place", "", "Where to submit the work")

	return cmd
}

func runTaskWizard(app *App, title, course *string, week *int, deadline *dateValue, place *string) error {
	courses := app.Tracker.Courses().List()
	draft := taskDraft{
		title:    *title,
		courseID: *course,
		week:     fmt.Sprint(*week),
		deadline: deadline.String(),
		place:    *place,
	}
	form := wizardTask(courses, &draft)
	if form == nil {
		return fmt.Errorf("no courses yet; add one with 'studymate course add'")
	}
	if err := form.Run(); err != nil {
		return err
	}

	w, err := parseWeek(draft.week, domain.MinWeek)
	if err != nil {
		return err
	}
	*title, *course, *week, *place = draft.title, draft.courseID, w, draft.place
	if draft.deadline != "" {
		return deadline.Set(draft.deadline)
	}
	return nil
}

func newTaskListCmd(app *App) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := flags.view(app)
			if err != nil {
				return err
			}
			rows := app.Tracker.Board(view)
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks match.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskTable(rows, app.now()))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("%d task(s)", len(rows))))
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			row, ok := findRow(app, id)
			if !ok {
				return fmt.Errorf("task not found: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(row, app.now()))
			return nil
		},
	}
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a task's status (Todo, Doing or Done)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			status, err := domain.ParseTaskStatus(args[1])
			if err != nil {
				return err
			}

			app.Tracker.Tasks().UpdateStatus(context.Background(), id, status)
			task, _ := app.Tracker.Tasks().FindByID(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StatusPill(task.Status), task.Title)
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title, place string
	var deadline dateValue

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a task's title, deadline or submission place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}

			var patch repository.TaskPatch
			if cmd.Flags().Changed("title") {
				if strings.TrimSpace(title) == "" {
					return fmt.Errorf("task title cannot be blank")
				}
				patch.Title = &title
			}
			if cmd.Flags().Changed("deadline") {
				d := time.Time(deadline)
				patch.Deadline = &d
			}
			if cmd.Flags().Changed("place") {
				patch.SubmissionPlace = &place
			}
			if patch == (repository.TaskPatch{}) {
				return fmt.Errorf("nothing to update (use --title, --deadline or --place)")
			}

			app.Tracker.Tasks().UpdateFields(context.Background(), id, patch)
			task, _ := app.Tracker.Tasks().FindByID(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %q (due %s)\n", task.Title, domain.FormatDate(task.Deadline))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().Var(&deadline, "deadline", "New deadline YYYY-MM-DD")
	cmd.Flags().StringVar(&place, "place", "", "New submission place (empty to clear)")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			task, _ := app.Tracker.Tasks().FindByID(id)
			app.Tracker.Tasks().DeleteTask(context.Background(), id)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", task.Title)
			return nil
		},
	}
}

func newTaskMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID TARGET",
		Short: "Move a task to TARGET's position in the manual order",
		Long: "Move a task to the position TARGET currently holds. Tasks between\n" +
			"the two shift by one. Use 'task list --sort manual' to see the order.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dragged, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			target, err := resolveTaskID(app, args[1])
			if err != nil {
				return err
			}
			if dragged == target {
				return fmt.Errorf("a task cannot be moved onto itself")
			}

			app.Tracker.Tasks().Reorder(context.Background(), dragged, target)
			view := query.DefaultView()
			view.Sort = query.SortManual
			for i, row := range app.Tracker.Board(view) {
				if row.Task.ID == dragged {
					fmt.Fprintf(cmd.OutOrStdout(), "Moved %q to position %d\n", row.Task.Title, i+1)
					break
				}
			}
			return nil
		},
	}
}

// findRow returns the board row for a task ID.
func findRow(app *App, id string) (service.BoardRow, bool) {
	for _, row := range app.Tracker.Board(query.DefaultView()) {
		if row.Task.ID == id {
			return row, true
		}
	}
	return service.BoardRow{}, false
}
