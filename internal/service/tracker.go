package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/alexanderramin/studymate/internal/query"
	"github.com/alexanderramin/studymate/internal/repository"
)

// DeletedCourseLabel names the course of a task whose course is gone.
const DeletedCourseLabel = "course deleted"

// BoardRow is a task joined with its course for display.
type BoardRow struct {
	Task        domain.Task
	CourseName  string
	CourseColor domain.Color
	// Orphaned is set when the task references a course that no longer
	// exists. CourseColor is empty in that case.
	Orphaned bool
}

// Overview is the data behind the stats panel.
type Overview struct {
	query.Stats
	Courses          []query.CourseStat
	CurrentWeek      int
	CurrentWeekTasks int
	Overdue          int
}

// Tracker composes the course and task repositories into the use cases the
// CLI and board need.
type Tracker struct {
	courses  repository.CourseRepo
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewTracker(courses repository.CourseRepo, tasks repository.TaskRepo, observers ...UseCaseObserver) *Tracker {
	return &Tracker{
		courses:  courses,
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Courses exposes the underlying course repository.
func (t *Tracker) Courses() repository.CourseRepo { return t.courses }

// Tasks exposes the underlying task repository.
func (t *Tracker) Tasks() repository.TaskRepo { return t.tasks }

// AddCourse creates a course, turning the repository's silent rejection into
// an error the caller can report.
func (t *Tracker) AddCourse(ctx context.Context, name string, color domain.Color) (course *domain.Course, err error) {
	defer t.observe(ctx, "add-course", time.Now(), &err, map[string]any{"color": string(color)})

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("course name is required")
	}
	if !color.Valid() {
		return nil, fmt.Errorf("unknown color %q", color)
	}
	course = t.courses.AddCourse(ctx, name, color)
	if course == nil {
		return nil, fmt.Errorf("course was not created")
	}
	return course, nil
}

// AddTask creates a task after checking the fields the repository would
// otherwise drop silently. A task may name a course that does not exist.
func (t *Tracker) AddTask(ctx context.Context, in repository.NewTask) (task *domain.Task, err error) {
	fields := map[string]any{"course_id": in.CourseID, "week": in.Week}
	defer t.observe(ctx, "add-task", time.Now(), &err, fields)

	switch {
	case strings.TrimSpace(in.Title) == "":
		return nil, fmt.Errorf("task title is required")
	case in.CourseID == "":
		return nil, fmt.Errorf("course is required")
	case !domain.ValidWeek(in.Week):
		return nil, fmt.Errorf("week must be between %d and %d, got %d", domain.MinWeek, domain.MaxWeek, in.Week)
	case in.Status != "" && !in.Status.Valid():
		return nil, fmt.Errorf("unknown status %q", in.Status)
	}
	task = t.tasks.AddTask(ctx, in)
	if task == nil {
		return nil, fmt.Errorf("task was not created")
	}
	return task, nil
}

// DeleteCourse removes the course's tasks first, then the course itself, and
// returns how many tasks went with it.
func (t *Tracker) DeleteCourse(ctx context.Context, id string) (removed int, err error) {
	fields := map[string]any{"course_id": id}
	defer t.observe(ctx, "delete-course", time.Now(), &err, fields)

	if _, ok := t.courses.FindByID(id); !ok {
		return 0, fmt.Errorf("course %q not found", id)
	}
	removed = t.tasks.CountByCourse(id)
	t.tasks.DeleteByCourse(ctx, id)
	t.courses.DeleteCourse(ctx, id)
	fields["tasks_removed"] = removed
	return removed, nil
}

// Board applies view to the current tasks and joins each with its course.
func (t *Tracker) Board(view query.View) []BoardRow {
	byID := make(map[string]domain.Course)
	for _, c := range t.courses.List() {
		byID[c.ID] = c
	}

	tasks := view.Apply(t.tasks.List())
	rows := make([]BoardRow, 0, len(tasks))
	for _, task := range tasks {
		row := BoardRow{Task: task}
		if c, ok := byID[task.CourseID]; ok {
			row.CourseName = c.Name
			row.CourseColor = c.Color
		} else {
			row.CourseName = DeletedCourseLabel
			row.Orphaned = true
		}
		rows = append(rows, row)
	}
	return rows
}

// Stats summarises every task as of now.
func (t *Tracker) Stats(now time.Time) Overview {
	tasks := t.tasks.List()
	week := query.CurrentWeek(now)

	overdue := 0
	for i := range tasks {
		if tasks[i].IsOverdue(now) {
			overdue++
		}
	}

	return Overview{
		Stats:            query.Summarize(tasks),
		Courses:          query.CourseProgress(tasks, t.courses.List()),
		CurrentWeek:      week,
		CurrentWeekTasks: query.WeekCount(tasks, week),
		Overdue:          overdue,
	}
}

func (t *Tracker) observe(ctx context.Context, name string, startedAt time.Time, err *error, fields map[string]any) {
	t.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}
