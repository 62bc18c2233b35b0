package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/studymate/internal/cli/formatter"
	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "course",
		Aliases: []string{"courses"},
		Short:   "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseUpdateCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var name string
	color := colorValue(domain.DefaultColor)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" && app.interactive() {
				draft := courseDraft{color: string(color)}
				if err := wizardCourse(&draft).Run(); err != nil {
					return err
				}
				name = draft.name
				if err := color.Set(draft.color); err != nil {
					return err
				}
			}
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("course name is required (use --name)")
			}

			c, err := app.Tracker.AddCourse(context.Background(), name, domain.Color(color))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Created course %s %s\n",
				formatter.StyleGreen.Render("✔"), formatter.CoursePill(c.Name, c.Color, false), formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().Var(&color, "color", "Color: "+paletteNames())

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses := app.Tracker.Courses().List()
			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No courses yet. Add one with 'studymate course add'.")
				return nil
			}

			counts := make(map[string]int, len(courses))
			for _, c := range courses {
				counts[c.ID] = app.Tracker.Tasks().CountByCourse(c.ID)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseList(courses, counts))
			return nil
		},
	}
}

func newCourseUpdateCmd(app *App) *cobra.Command {
	var name string
	var color colorValue

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename or recolor a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCourseID(app, args[0])
			if err != nil {
				return err
			}
			current, _ := app.Tracker.Courses().FindByID(id)

			nextName, nextColor := current.Name, current.Color
			if cmd.Flags().Changed("name") {
				if strings.TrimSpace(name) == "" {
					return fmt.Errorf("course name cannot be blank")
				}
				nextName = name
			}
			if cmd.Flags().Changed("color") {
				nextColor = domain.Color(color)
			}
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("color") {
				return fmt.Errorf("nothing to update (use --name or --color)")
			}

			app.Tracker.Courses().UpdateCourse(context.Background(), id, nextName, nextColor)
			updated, _ := app.Tracker.Courses().FindByID(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated course %s\n", formatter.CoursePill(updated.Name, updated.Color, false))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New course name")
	cmd.Flags().Var(&color, "color", "New color: "+paletteNames())

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a course and all of its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCourseID(app, args[0])
			if err != nil {
				return err
			}
			course, _ := app.Tracker.Courses().FindByID(id)

			if !yes && app.interactive() {
				n := app.Tracker.Tasks().CountByCourse(id)
				confirmed := false
				prompt := fmt.Sprintf("Delete %q and its %d task(s)?", course.Name, n)
				if err := wizardConfirm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			removed, err := app.Tracker.DeleteCourse(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted course %s and %d task(s)\n", course.Name, removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func paletteNames() string {
	names := make([]string, len(domain.Palette))
	for i, c := range domain.Palette {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
