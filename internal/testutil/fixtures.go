package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/studymate/internal/domain"
)

// FixedNow is the reference instant used by fixtures and test clocks.
var FixedNow = time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a Clock at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current instant and advances the clock by one second, so
// consecutive creations get distinct, increasing timestamps.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// SeqIDs returns an ID generator producing prefix-1, prefix-2, ...
func SeqIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithWeek(w int) TaskOption {
	return func(t *domain.Task) {
		t.Week = w
	}
}

func WithCourse(id string) TaskOption {
	return func(t *domain.Task) {
		t.CourseID = id
	}
}

func WithDeadline(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Deadline = domain.AsDate(d)
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
	}
}

func WithSubmissionPlace(p string) TaskOption {
	return func(t *domain.Task) {
		t.SubmissionPlace = p
	}
}

// NewTestTask builds a Todo task in week 1, due a week after FixedNow.
func NewTestTask(id, title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        id,
		Title:     title,
		CourseID:  "course-1",
		Week:      1,
		Status:    domain.StatusTodo,
		Deadline:  domain.AsDate(FixedNow.AddDate(0, 0, 7)),
		CreatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestCourse builds a blue course created at FixedNow.
func NewTestCourse(id, name string) domain.Course {
	return domain.Course{
		ID:        id,
		Name:      name,
		Color:     domain.ColorBlue,
		CreatedAt: FixedNow,
	}
}
