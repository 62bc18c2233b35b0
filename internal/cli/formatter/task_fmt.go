package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studymate/internal/service"
)

// FormatTaskTable renders board rows as a table. today drives the deadline
// coloring.
func FormatTaskTable(rows []service.BoardRow, today time.Time) string {
	headers := []string{"ID", "TITLE", "COURSE", "WEEK", "STATUS", "DEADLINE", "SUBMIT TO"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		title := r.Task.Title
		if r.Task.IsDone() {
			title = Dim(title)
		}
		place := r.Task.SubmissionPlace
		if place == "" {
			place = Dim("--")
		}
		cells = append(cells, []string{
			TruncID(r.Task.ID),
			title,
			CoursePill(r.CourseName, r.CourseColor, r.Orphaned),
			fmt.Sprintf("W%d", r.Task.Week),
			StatusPill(r.Task.Status),
			Deadline(r.Task, today),
			place,
		})
	}
	return RenderTable(headers, cells)
}

// FormatTaskDetail renders a single task in a box.
func FormatTaskDetail(r service.BoardRow, today time.Time) string {
	place := r.Task.SubmissionPlace
	if place == "" {
		place = Dim("not set")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(r.Task.Title), StatusPill(r.Task.Status))
	fmt.Fprintf(&b, "%s %s\n", Dim("Course:  "), CoursePill(r.CourseName, r.CourseColor, r.Orphaned))
	fmt.Fprintf(&b, "%s %d\n", Dim("Week:    "), r.Task.Week)
	fmt.Fprintf(&b, "%s %s\n", Dim("Deadline:"), Deadline(r.Task, today))
	fmt.Fprintf(&b, "%s %s\n", Dim("Submit:  "), place)
	fmt.Fprintf(&b, "%s %s", Dim("ID:      "), Dim(r.Task.ID))
	return RenderBox("Task", b.String())
}
