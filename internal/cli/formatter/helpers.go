package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// Deadline renders a task deadline as its date plus a relative hint,
// colored by urgency. Finished tasks are dimmed.
func Deadline(task domain.Task, today time.Time) string {
	today = domain.AsDate(today)
	text := fmt.Sprintf("%s (%s)", domain.FormatDate(task.Deadline), RelativeDateFrom(task.Deadline, today))
	if task.IsDone() {
		return StyleDim.Render(text)
	}

	days := task.DaysUntilDeadline(today)
	switch {
	case days < 0:
		return StyleRed.Render(text + " overdue")
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// StatusPill returns a colored status indicator for a task status.
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.StatusTodo:
		return StatusStyle(status).Render("○ Todo")
	case domain.StatusDoing:
		return StatusStyle(status).Render("● Doing")
	case domain.StatusDone:
		return StatusStyle(status).Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// CoursePill renders a course name in its color. Orphaned references render
// dim and italic.
func CoursePill(name string, color domain.Color, orphaned bool) string {
	if orphaned {
		return StyleDim.Italic(true).Render(name)
	}
	return CourseStyle(color).Render("■ " + name)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
