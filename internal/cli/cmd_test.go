package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/alexanderramin/studymate/internal/query"
	"github.com/alexanderramin/studymate/internal/repository"
	"github.com/alexanderramin/studymate/internal/service"
	"github.com/alexanderramin/studymate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	ctx := context.Background()
	store := testutil.NewTestStore(t)
	clock := testutil.NewClock(testutil.FixedNow)

	courses := repository.NewStoreCourseRepo(ctx, store,
		repository.WithClock(clock.Now), repository.WithIDGenerator(testutil.SeqIDs("course")))
	tasks := repository.NewStoreTaskRepo(ctx, store,
		repository.WithClock(clock.Now), repository.WithIDGenerator(testutil.SeqIDs("task")))

	return &App{
		Tracker:     service.NewTracker(courses, tasks),
		DefaultSort: query.SortNewest,
		Now:         func() time.Time { return testutil.FixedNow },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

// seedCourse adds a course directly through the tracker.
func seedCourse(t *testing.T, app *App, name string, color domain.Color) string {
	t.Helper()
	c, err := app.Tracker.AddCourse(context.Background(), name, color)
	require.NoError(t, err)
	return c.ID
}

func seedTask(t *testing.T, app *App, title, courseID string, week int) string {
	t.Helper()
	task, err := app.Tracker.AddTask(context.Background(), repository.NewTask{
		Title: title, CourseID: courseID, Week: week,
	})
	require.NoError(t, err)
	return task.ID
}

func taskTitles(app *App) []string {
	var out []string
	for _, task := range app.Tracker.Tasks().List() {
		out = append(out, task.Title)
	}
	return out
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "studymate")
	assert.Contains(t, output, "course")
	assert.Contains(t, output, "board")
}

// --- course ---

func TestCourseAdd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "course", "add", "--name", "Linear Algebra", "--color", "Purple")
	require.NoError(t, err)
	assert.Contains(t, out, "Created course")
	assert.Contains(t, out, "Linear Algebra")

	courses := app.Tracker.Courses().List()
	require.Len(t, courses, 1)
	assert.Equal(t, domain.ColorPurple, courses[0].Color)
}

func TestCourseAdd_DefaultsToBlue(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "--name", "Art")
	require.NoError(t, err)
	assert.Equal(t, domain.ColorBlue, app.Tracker.Courses().List()[0].Color)
}

func TestCourseAdd_RequiresNameWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course name is required")
	assert.Empty(t, app.Tracker.Courses().List())
}

func TestCourseAdd_RejectsUnknownColor(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "--name", "Art", "--color", "gray")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color")
}

func TestCourseList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No courses yet")

	math := seedCourse(t, app, "Math", domain.ColorRed)
	seedCourse(t, app, "Biology", domain.ColorGreen)
	seedTask(t, app, "Problem set", math, 1)
	seedTask(t, app, "Quiz", math, 2)

	out, err = executeCmd(t, app, "course", "list")
	require.NoError(t, err)
	assert.Regexp(t, `Math\s+red\s+2`, out)
	assert.Regexp(t, `Biology\s+green\s+0`, out)
}

func TestCourseUpdate(t *testing.T) {
	app := testApp(t)
	id := seedCourse(t, app, "Math", domain.ColorRed)

	_, err := executeCmd(t, app, "course", "update", id, "--name", "Calculus")
	require.NoError(t, err)

	c, ok := app.Tracker.Courses().FindByID(id)
	require.True(t, ok)
	assert.Equal(t, "Calculus", c.Name)
	assert.Equal(t, domain.ColorRed, c.Color, "color untouched when flag absent")

	_, err = executeCmd(t, app, "course", "update", "CALCULUS", "--color", "teal")
	require.NoError(t, err, "course names resolve case-insensitively")
	c, _ = app.Tracker.Courses().FindByID(id)
	assert.Equal(t, domain.ColorTeal, c.Color)
}

func TestCourseUpdate_Errors(t *testing.T) {
	app := testApp(t)
	id := seedCourse(t, app, "Math", domain.ColorRed)

	_, err := executeCmd(t, app, "course", "update", id)
	assert.ErrorContains(t, err, "nothing to update")

	_, err = executeCmd(t, app, "course", "update", id, "--name", "  ")
	assert.ErrorContains(t, err, "cannot be blank")

	_, err = executeCmd(t, app, "course", "update", "missing", "--name", "X")
	assert.ErrorContains(t, err, "course not found")
}

func TestCourseRemove_CascadesToTasks(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	bio := seedCourse(t, app, "Biology", domain.ColorGreen)
	seedTask(t, app, "Problem set", math, 1)
	seedTask(t, app, "Lab", bio, 1)

	out, err := executeCmd(t, app, "course", "remove", math)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted course Math and 1 task(s)")

	assert.Len(t, app.Tracker.Courses().List(), 1)
	assert.Equal(t, []string{"Lab"}, taskTitles(app))
}

// --- task ---

func TestTaskAdd(t *testing.T) {
	app := testApp(t)
	seedCourse(t, app, "Math", domain.ColorRed)

	out, err := executeCmd(t, app, "task", "add",
		"--title", "Problem set 3", "--course", "math", "--week", "4",
		"--deadline", "2025-10-01", "--place", "Moodle")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "Problem set 3" (week 4, due 2025-10-01)`)

	tasks := app.Tracker.Tasks().List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "course-1", tasks[0].CourseID)
	assert.Equal(t, domain.StatusTodo, tasks[0].Status)
	assert.Equal(t, "Moodle", tasks[0].SubmissionPlace)
}

func TestTaskAdd_DeadlineDefaultsToToday(t *testing.T) {
	app := testApp(t)
	id := seedCourse(t, app, "Math", domain.ColorRed)

	_, err := executeCmd(t, app, "task", "add", "--title", "Read", "--course", id)
	require.NoError(t, err)

	task := app.Tracker.Tasks().List()[0]
	assert.Equal(t, "2025-09-15", domain.FormatDate(task.Deadline))
	assert.Equal(t, 1, task.Week)
}

func TestTaskAdd_Errors(t *testing.T) {
	app := testApp(t)
	id := seedCourse(t, app, "Math", domain.ColorRed)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing title", []string{"--course", id}, "task title is required"},
		{"unknown course", []string{"--title", "X", "--course", "history"}, "course not found"},
		{"week out of range", []string{"--title", "X", "--course", id, "--week", "17"}, "week must be between 1 and 16"},
		{"bad status", []string{"--title", "X", "--course", id, "--status", "blocked"}, "unknown status"},
		{"bad deadline", []string{"--title", "X", "--course", id, "--deadline", "next friday"}, "invalid argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, app, append([]string{"task", "add"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.Empty(t, app.Tracker.Tasks().List())
}

func TestTaskList_FiltersAndSorts(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	bio := seedCourse(t, app, "Biology", domain.ColorGreen)
	seedTask(t, app, "Week three", math, 3)
	done := seedTask(t, app, "Week one", math, 1)
	seedTask(t, app, "Lab", bio, 2)
	app.Tracker.Tasks().UpdateStatus(context.Background(), done, domain.StatusDone)

	out, err := executeCmd(t, app, "task", "list", "--course", "Math", "--sort", "week")
	require.NoError(t, err)
	assert.Regexp(t, `(?s)Week one.*Week three`, out)
	assert.NotContains(t, out, "Lab")
	assert.Contains(t, out, "2 task(s)")

	out, err = executeCmd(t, app, "task", "list", "--status", "incomplete", "--week", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Lab")
	assert.Contains(t, out, "1 task(s)")

	out, err = executeCmd(t, app, "task", "list", "--status", "completed", "--week", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks match.")
}

func TestTaskList_ShowsDeletedCourse(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	seedTask(t, app, "Orphan", math, 1)
	app.Tracker.Courses().DeleteCourse(context.Background(), math)

	out, err := executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "course deleted")
}

func TestTaskList_RejectsBadFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "list", "--week", "20")
	assert.ErrorContains(t, err, "week must be between")

	_, err = executeCmd(t, app, "task", "list", "--sort", "priority")
	assert.ErrorContains(t, err, "unknown sort key")

	_, err = executeCmd(t, app, "task", "list", "--status", "archived")
	assert.ErrorContains(t, err, "unknown status filter")
}

func TestTaskStatus(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	id := seedTask(t, app, "Essay", math, 1)

	out, err := executeCmd(t, app, "task", "status", id, "doing")
	require.NoError(t, err)
	assert.Contains(t, out, "Doing")

	task, _ := app.Tracker.Tasks().FindByID(id)
	assert.Equal(t, domain.StatusDoing, task.Status)

	_, err = executeCmd(t, app, "task", "status", id, "paused")
	assert.ErrorContains(t, err, "unknown status")
}

func TestTaskEdit_PartialUpdate(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	id := seedTask(t, app, "Essay", math, 1)

	_, err := executeCmd(t, app, "task", "edit", "task-1", "--deadline", "2025-12-24")
	require.NoError(t, err)

	task, _ := app.Tracker.Tasks().FindByID(id)
	assert.Equal(t, "Essay", task.Title)
	assert.Equal(t, "2025-12-24", domain.FormatDate(task.Deadline))

	_, err = executeCmd(t, app, "task", "edit", id, "--title", "Final essay", "--place", "Room 101")
	require.NoError(t, err)
	task, _ = app.Tracker.Tasks().FindByID(id)
	assert.Equal(t, "Final essay", task.Title)
	assert.Equal(t, "Room 101", task.SubmissionPlace)
	assert.Equal(t, "2025-12-24", domain.FormatDate(task.Deadline))

	_, err = executeCmd(t, app, "task", "edit", id)
	assert.ErrorContains(t, err, "nothing to update")
}

func TestTaskShow(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	id := seedTask(t, app, "Essay", math, 5)

	out, err := executeCmd(t, app, "task", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Essay")
	assert.Contains(t, out, "Math")
	assert.Contains(t, out, id)
}

func TestTaskRemove(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	id := seedTask(t, app, "Essay", math, 1)
	seedTask(t, app, "Quiz", math, 1)

	out, err := executeCmd(t, app, "task", "rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted "Essay"`)
	assert.Equal(t, []string{"Quiz"}, taskTitles(app))
}

func TestTaskMove(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	c := seedTask(t, app, "C", math, 1)
	b := seedTask(t, app, "B", math, 1)
	a := seedTask(t, app, "A", math, 1)
	require.Equal(t, []string{"A", "B", "C"}, taskTitles(app))

	out, err := executeCmd(t, app, "task", "move", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, `Moved "A" to position 2`)
	assert.Equal(t, []string{"B", "A", "C"}, taskTitles(app))

	_, err = executeCmd(t, app, "task", "move", c, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, taskTitles(app))

	_, err = executeCmd(t, app, "task", "move", a, a)
	assert.ErrorContains(t, err, "onto itself")

	_, err = executeCmd(t, app, "task", "move", a, "nope")
	assert.ErrorContains(t, err, "task not found")
}

func TestTaskIDPrefixAmbiguous(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	for i := 0; i < 11; i++ {
		seedTask(t, app, "T", math, 1)
	}

	_, err := executeCmd(t, app, "task", "show", "task-1")
	require.NoError(t, err, "exact match wins over prefix")

	_, err = executeCmd(t, app, "task", "show", "task-")
	assert.ErrorContains(t, err, "ambiguous")
}

// --- stats / board ---

func TestStats(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks yet.")

	math := seedCourse(t, app, "Math", domain.ColorRed)
	id := seedTask(t, app, "Essay", math, 1)
	seedTask(t, app, "Quiz", math, 1)
	app.Tracker.Tasks().UpdateStatus(context.Background(), id, domain.StatusDone)

	out, err = executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 2 tasks done")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "1/2")
}

func TestBoard_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "board")
	assert.ErrorContains(t, err, "interactive terminal")
}
