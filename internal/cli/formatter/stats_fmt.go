package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/alexanderramin/studymate/internal/service"
)

const progressWidth = 20

// FormatStats renders the overview panel: overall completion, the status
// breakdown, current week load and per-course progress.
func FormatStats(ov service.Overview) string {
	var b strings.Builder

	b.WriteString(Header("Progress"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d of %d tasks done\n",
		RenderProgress(ov.CompletionPercent, progressWidth), ov.Completed, ov.Total)
	for _, st := range domain.Statuses {
		fmt.Fprintf(&b, "  %-14s %d\n", StatusPill(st), ov.ByStatus[st])
	}
	if ov.Overdue > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("  %d overdue", ov.Overdue)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("This week"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Week %d: %d task(s)\n", ov.CurrentWeek, ov.CurrentWeekTasks)

	if len(ov.Courses) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Courses"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(ov.Courses))
		for _, cs := range ov.Courses {
			rows = append(rows, []string{
				CoursePill(cs.Course.Name, cs.Course.Color, false),
				fmt.Sprintf("%d/%d", cs.Done, cs.Total),
				RenderProgress(cs.Percent, 10),
			})
		}
		b.WriteString(RenderTable([]string{"COURSE", "DONE", "PROGRESS"}, rows))
	}

	return b.String()
}
