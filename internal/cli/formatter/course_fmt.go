package formatter

import (
	"strconv"

	"github.com/alexanderramin/studymate/internal/domain"
)

// FormatCourseList renders courses with their task counts.
func FormatCourseList(courses []domain.Course, taskCounts map[string]int) string {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			TruncID(c.ID),
			CoursePill(c.Name, c.Color, false),
			CourseStyle(c.Color).Render(string(c.Color)),
			strconv.Itoa(taskCounts[c.ID]),
		})
	}
	return RenderTable([]string{"ID", "COURSE", "COLOR", "TASKS"}, rows)
}
