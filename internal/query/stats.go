package query

import (
	"math"
	"time"

	"github.com/alexanderramin/studymate/internal/domain"
)

// Stats summarises progress over a task list.
type Stats struct {
	Total             int
	Completed         int
	Incomplete        int
	ByStatus          map[domain.TaskStatus]int
	CompletionPercent int
}

// Summarize counts tasks per status. CompletionPercent is rounded to the
// nearest integer and is 0 for an empty list.
func Summarize(tasks []domain.Task) Stats {
	s := Stats{
		Total:    len(tasks),
		ByStatus: make(map[domain.TaskStatus]int, len(domain.Statuses)),
	}
	for _, st := range domain.Statuses {
		s.ByStatus[st] = 0
	}
	for _, t := range tasks {
		s.ByStatus[t.Status]++
		if t.Status == domain.StatusDone {
			s.Completed++
		}
	}
	s.Incomplete = s.Total - s.Completed
	s.CompletionPercent = percent(s.Completed, s.Total)
	return s
}

// CourseStat is the progress of a single course.
type CourseStat struct {
	Course  domain.Course
	Done    int
	Total   int
	Percent int
}

// CourseProgress reports done/total per course, in course order, skipping
// courses without tasks.
func CourseProgress(tasks []domain.Task, courses []domain.Course) []CourseStat {
	type tally struct{ done, total int }
	counts := make(map[string]*tally, len(courses))
	for _, t := range tasks {
		c, ok := counts[t.CourseID]
		if !ok {
			c = &tally{}
			counts[t.CourseID] = c
		}
		c.total++
		if t.Status == domain.StatusDone {
			c.done++
		}
	}

	var out []CourseStat
	for _, course := range courses {
		c, ok := counts[course.ID]
		if !ok || c.total == 0 {
			continue
		}
		out = append(out, CourseStat{
			Course:  course,
			Done:    c.done,
			Total:   c.total,
			Percent: percent(c.done, c.total),
		})
	}
	return out
}

// WeekCount returns how many tasks belong to week.
func WeekCount(tasks []domain.Task, week int) int {
	n := 0
	for _, t := range tasks {
		if t.Week == week {
			n++
		}
	}
	return n
}

// CurrentWeek maps an instant onto the 16-week cycle by counting calendar
// weeks since the Unix epoch. Week 0 of the cycle reads as week 1.
func CurrentWeek(now time.Time) int {
	const weekMillis = 7 * 24 * 60 * 60 * 1000
	weeks := int64(math.Ceil(float64(now.UnixMilli()) / weekMillis))
	w := int(weeks % domain.MaxWeek)
	if w <= 0 {
		return domain.MinWeek
	}
	return w
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
