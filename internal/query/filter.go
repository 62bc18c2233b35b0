// Package query holds pure helpers that derive views and statistics from a
// task snapshot. None of them modify their input.
package query

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studymate/internal/domain"
)

// StatusFilter selects tasks by progress.
type StatusFilter string

const (
	StatusAll        StatusFilter = "all"
	StatusCompleted  StatusFilter = "completed"
	StatusIncomplete StatusFilter = "incomplete"
	StatusTodo       StatusFilter = StatusFilter(domain.StatusTodo)
	StatusDoing      StatusFilter = StatusFilter(domain.StatusDoing)
	StatusDone       StatusFilter = StatusFilter(domain.StatusDone)
)

// StatusFilters lists the accepted filters in display order.
var StatusFilters = []StatusFilter{StatusAll, StatusTodo, StatusDoing, StatusDone, StatusCompleted, StatusIncomplete}

// ParseStatusFilter accepts a filter name in any letter case. An empty
// string means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusAll, nil
	}
	for _, f := range StatusFilters {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// AllCourses disables course filtering.
const AllCourses = "all"

// AllWeeks disables week filtering.
const AllWeeks = 0

// FilterByStatus keeps the tasks matching filter. An unrecognised filter
// keeps everything.
func FilterByStatus(tasks []domain.Task, filter StatusFilter) []domain.Task {
	switch filter {
	case StatusCompleted:
		return keep(tasks, func(t domain.Task) bool { return t.Status == domain.StatusDone })
	case StatusIncomplete:
		return keep(tasks, func(t domain.Task) bool { return t.Status != domain.StatusDone })
	case StatusTodo, StatusDoing, StatusDone:
		want := domain.TaskStatus(filter)
		return keep(tasks, func(t domain.Task) bool { return t.Status == want })
	default:
		return tasks
	}
}

// FilterByCourse keeps tasks of courseID; AllCourses (or empty) keeps all.
func FilterByCourse(tasks []domain.Task, courseID string) []domain.Task {
	if courseID == AllCourses || courseID == "" {
		return tasks
	}
	return keep(tasks, func(t domain.Task) bool { return t.CourseID == courseID })
}

// FilterByWeek keeps tasks of week; AllWeeks keeps all.
func FilterByWeek(tasks []domain.Task, week int) []domain.Task {
	if week == AllWeeks {
		return tasks
	}
	return keep(tasks, func(t domain.Task) bool { return t.Week == week })
}

func keep(tasks []domain.Task, pred func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
