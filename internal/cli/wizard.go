package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studymate/internal/cli/formatter"
	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// studymateHuhTheme returns a custom huh theme using the Gruvbox palette.
func studymateHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// courseDraft collects the fields of a new course.
type courseDraft struct {
	name  string
	color string
}

// wizardCourse creates a huh form for a course's name and color.
func wizardCourse(d *courseDraft) *huh.Form {
	if d.color == "" {
		d.color = string(domain.DefaultColor)
	}
	options := make([]huh.Option[string], 0, len(domain.Palette))
	for _, c := range domain.Palette {
		options = append(options, huh.NewOption(formatter.CourseStyle(c).Render("■ "+string(c)), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			requiredInput("Course Name", "Calculus I", &d.name),
			huh.NewSelect[string]().
				Title("Color").
				Options(options...).
				Value(&d.color),
		),
	).WithTheme(studymateHuhTheme()).WithShowHelp(false)
}

// taskDraft collects the fields of a new task as form strings.
type taskDraft struct {
	title    string
	courseID string
	week     string
	deadline string
	place    string
}

// wizardTask creates a huh form for a new task. It returns nil when there
// are no courses to attach the task to.
func wizardTask(courses []domain.Course, d *taskDraft) *huh.Form {
	if len(courses) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(courses))
	for _, c := range courses {
		options = append(options, huh.NewOption(formatter.CoursePill(c.Name, c.Color, false), c.ID))
	}
	if d.courseID == "" {
		d.courseID = courses[0].ID
	}

	return huh.NewForm(
		huh.NewGroup(
			requiredInput("Title", "Problem set 3", &d.title),
			huh.NewSelect[string]().
				Title("Course").
				Options(options...).
				Value(&d.courseID),
			weekInput(&d.week),
			dateInput("Deadline (YYYY-MM-DD, blank for today)", "", &d.deadline),
			huh.NewInput().
				Title("Submission Place").
				Placeholder("Moodle, email, in class...").
				Value(&d.place),
		),
	).WithTheme(studymateHuhTheme()).WithShowHelp(false)
}

// parseWeek parses a week field, returning fallback when s is empty.
func parseWeek(s string, fallback int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	w, err := strconv.Atoi(s)
	if err != nil || !domain.ValidWeek(w) {
		return 0, fmt.Errorf("week must be a number from %d to %d", domain.MinWeek, domain.MaxWeek)
	}
	return w, nil
}

// validateWeek accepts empty or a week inside the semester.
func validateWeek(s string) error {
	_, err := parseWeek(s, domain.MinWeek)
	return err
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(studymateHuhTheme()).WithShowHelp(false)
}
