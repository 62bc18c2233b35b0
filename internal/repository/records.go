package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/studymate/internal/domain"
)

// courseRecord is the persisted shape of a course.
type courseRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
}

// taskRecord is the persisted shape of a task.
type taskRecord struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	CourseID        string `json:"courseId"`
	Week            int    `json:"week"`
	Status          string `json:"status"`
	Deadline        string `json:"deadline"`
	SubmissionPlace string `json:"submissionPlace"`
	CreatedAt       string `json:"createdAt"`
}

func toCourseRecords(courses []domain.Course) []courseRecord {
	out := make([]courseRecord, 0, len(courses))
	for _, c := range courses {
		out = append(out, courseRecord{
			ID:        c.ID,
			Name:      c.Name,
			Color:     string(c.Color),
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return out
}

func toTaskRecords(tasks []domain.Task) []taskRecord {
	out := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskRecord{
			ID:              t.ID,
			Title:           t.Title,
			CourseID:        t.CourseID,
			Week:            t.Week,
			Status:          string(t.Status),
			Deadline:        domain.FormatDate(t.Deadline),
			SubmissionPlace: t.SubmissionPlace,
			CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return out
}

// normalizeCourses converts persisted records back into domain values.
// Records that cannot be trusted are dropped and logged; the rest load.
func normalizeCourses(records []courseRecord, logger *slog.Logger) []domain.Course {
	out := make([]domain.Course, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		c, err := courseFromRecord(rec)
		if err == nil && seen[c.ID] {
			err = fmt.Errorf("duplicate id")
		}
		if err != nil {
			logger.Warn("dropping persisted record", "key", CoursesKey, "index", i, "id", rec.ID, "reason", err.Error())
			continue
		}
		if string(c.Color) != rec.Color {
			logger.Warn("replacing unknown course color", "id", c.ID, "color", rec.Color)
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}

func courseFromRecord(rec courseRecord) (domain.Course, error) {
	if rec.ID == "" {
		return domain.Course{}, errors.New("missing id")
	}
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return domain.Course{}, errors.New("missing name")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return domain.Course{}, fmt.Errorf("parsing createdAt: %w", err)
	}
	color := domain.Color(rec.Color)
	if !color.Valid() {
		color = domain.DefaultColor
	}
	return domain.Course{
		ID:        rec.ID,
		Name:      name,
		Color:     color,
		CreatedAt: createdAt.UTC(),
	}, nil
}

// normalizeTasks is the task counterpart of normalizeCourses.
func normalizeTasks(records []taskRecord, logger *slog.Logger) []domain.Task {
	out := make([]domain.Task, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		t, err := taskFromRecord(rec)
		if err == nil && seen[t.ID] {
			err = fmt.Errorf("duplicate id")
		}
		if err != nil {
			logger.Warn("dropping persisted record", "key", TasksKey, "index", i, "id", rec.ID, "reason", err.Error())
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

func taskFromRecord(rec taskRecord) (domain.Task, error) {
	switch {
	case rec.ID == "":
		return domain.Task{}, errors.New("missing id")
	case strings.TrimSpace(rec.Title) == "":
		return domain.Task{}, errors.New("missing title")
	case rec.CourseID == "":
		return domain.Task{}, errors.New("missing courseId")
	case !domain.ValidWeek(rec.Week):
		return domain.Task{}, fmt.Errorf("week %d out of range", rec.Week)
	}
	status := domain.TaskStatus(rec.Status)
	if !status.Valid() {
		return domain.Task{}, fmt.Errorf("unknown status %q", rec.Status)
	}
	deadline, err := domain.ParseDate(rec.Deadline)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parsing deadline: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parsing createdAt: %w", err)
	}
	return domain.Task{
		ID:              rec.ID,
		Title:           strings.TrimSpace(rec.Title),
		CourseID:        rec.CourseID,
		Week:            rec.Week,
		Status:          status,
		Deadline:        deadline,
		SubmissionPlace: rec.SubmissionPlace,
		CreatedAt:       createdAt.UTC(),
	}, nil
}
