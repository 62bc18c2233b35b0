package domain

import (
	"math"
	"time"
)

// Week bounds for a semester.
const (
	MinWeek = 1
	MaxWeek = 16
)

// ValidWeek reports whether w is inside [MinWeek, MaxWeek].
func ValidWeek(w int) bool {
	return w >= MinWeek && w <= MaxWeek
}

// Task is a unit of academic work. CourseID is a weak reference: the course
// it names may have been deleted.
type Task struct {
	ID              string
	Title           string
	CourseID        string
	Week            int
	Status          TaskStatus
	Deadline        time.Time // calendar date, midnight UTC
	SubmissionPlace string
	CreatedAt       time.Time
}

// IsDone reports whether the task is finished.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// IsOverdue reports whether an unfinished task's deadline is before today.
func (t *Task) IsOverdue(today time.Time) bool {
	return !t.IsDone() && t.Deadline.Before(AsDate(today))
}

// DaysUntilDeadline returns whole days from today to the deadline; negative
// once the deadline has passed.
func (t *Task) DaysUntilDeadline(today time.Time) int {
	diff := t.Deadline.Sub(AsDate(today))
	return int(math.Ceil(diff.Hours() / 24))
}
