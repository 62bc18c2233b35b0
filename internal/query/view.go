package query

import "github.com/alexanderramin/studymate/internal/domain"

// View is a filter-and-sort pipeline over a task snapshot. The zero View
// is not useful; start from DefaultView.
type View struct {
	Status   StatusFilter
	CourseID string
	Week     int
	Sort     SortKey
}

// DefaultView shows everything, newest first.
func DefaultView() View {
	return View{Status: StatusAll, CourseID: AllCourses, Week: AllWeeks, Sort: SortNewest}
}

// Apply filters by status, course and week, then sorts.
func (v View) Apply(tasks []domain.Task) []domain.Task {
	out := FilterByStatus(tasks, v.Status)
	out = FilterByCourse(out, v.CourseID)
	out = FilterByWeek(out, v.Week)
	return Sort(out, v.Sort)
}
