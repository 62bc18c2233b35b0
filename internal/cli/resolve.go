package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studymate/internal/domain"
)

// resolveCourseID accepts a full course ID, a unique ID prefix, or a course
// name (case-insensitive).
func resolveCourseID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("course is required")
	}
	courses := app.Tracker.Courses().List()

	ids := make([]string, len(courses))
	for i, c := range courses {
		if c.ID == input {
			return c.ID, nil
		}
		ids[i] = c.ID
	}

	var byName []string
	for _, c := range courses {
		if strings.EqualFold(c.Name, input) {
			byName = append(byName, c.ID)
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}

	return resolvePrefix("course", ids, input)
}

// resolveTaskID accepts a full task ID or a unique ID prefix.
func resolveTaskID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}
	tasks := app.Tracker.Tasks().List()

	ids := make([]string, len(tasks))
	for i, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		ids[i] = t.ID
	}
	return resolvePrefix("task", ids, input)
}

func resolvePrefix(kind string, ids []string, input string) (string, error) {
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func weekRangeError(week int) error {
	return fmt.Errorf("week must be between %d and %d, got %d", domain.MinWeek, domain.MaxWeek, week)
}
