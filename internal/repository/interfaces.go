package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/studymate/internal/domain"
)

// Persisted collection keys.
const (
	CoursesKey = "courses"
	TasksKey   = "tasks"
)

// CourseRepo owns the ordered course collection. Mutations never return
// errors: invalid input and unknown IDs are silent no-ops, and persistence
// failures are logged by the store.
type CourseRepo interface {
	AddCourse(ctx context.Context, name string, color domain.Color) *domain.Course
	UpdateCourse(ctx context.Context, id, name string, color domain.Color)
	// DeleteCourse does not touch tasks that reference the course. Callers
	// that want a full cleanup call TaskRepo.DeleteByCourse as well.
	DeleteCourse(ctx context.Context, id string)
	FindByID(id string) (domain.Course, bool)
	List() []domain.Course
	Subscribe(fn func([]domain.Course)) (unsubscribe func())
}

// TaskRepo owns the ordered task collection, newest first.
type TaskRepo interface {
	AddTask(ctx context.Context, in NewTask) *domain.Task
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus)
	UpdateFields(ctx context.Context, id string, patch TaskPatch)
	DeleteTask(ctx context.Context, id string)
	DeleteByCourse(ctx context.Context, courseID string)
	Reorder(ctx context.Context, draggedID, targetID string)
	FindByID(id string) (domain.Task, bool)
	List() []domain.Task
	CountByCourse(courseID string) int
	Subscribe(fn func([]domain.Task)) (unsubscribe func())
}

// NewTask carries the fields a caller supplies when adding a task.
// A zero Deadline means today; an empty Status means Todo.
type NewTask struct {
	Title           string
	CourseID        string
	Week            int
	Deadline        time.Time
	Status          domain.TaskStatus
	SubmissionPlace string
}

// TaskPatch is a partial update. Nil fields keep their current value.
type TaskPatch struct {
	Title           *string
	Deadline        *time.Time
	SubmissionPlace *string
}

var (
	_ CourseRepo = (*StoreCourseRepo)(nil)
	_ TaskRepo   = (*StoreTaskRepo)(nil)
)
