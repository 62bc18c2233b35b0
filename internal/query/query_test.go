package query

import (
	"testing"
	"time"

	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/alexanderramin/studymate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskIDs(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func mixedTasks() []domain.Task {
	return []domain.Task{
		testutil.NewTestTask("t1", "Essay", testutil.WithStatus(domain.StatusTodo), testutil.WithCourse("math"), testutil.WithWeek(1)),
		testutil.NewTestTask("t2", "Lab", testutil.WithStatus(domain.StatusDone), testutil.WithCourse("bio"), testutil.WithWeek(2)),
		testutil.NewTestTask("t3", "Quiz", testutil.WithStatus(domain.StatusDoing), testutil.WithCourse("math"), testutil.WithWeek(2)),
		testutil.NewTestTask("t4", "Report", testutil.WithStatus(domain.StatusDone), testutil.WithCourse("math"), testutil.WithWeek(3)),
	}
}

func TestFilterByStatus(t *testing.T) {
	tasks := mixedTasks()

	tests := []struct {
		filter StatusFilter
		want   []string
	}{
		{StatusAll, []string{"t1", "t2", "t3", "t4"}},
		{StatusCompleted, []string{"t2", "t4"}},
		{StatusIncomplete, []string{"t1", "t3"}},
		{StatusTodo, []string{"t1"}},
		{StatusDoing, []string{"t3"}},
		{StatusDone, []string{"t2", "t4"}},
		{StatusFilter("bogus"), []string{"t1", "t2", "t3", "t4"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, taskIDs(FilterByStatus(tasks, tt.filter)))
		})
	}
}

func TestFilterByCourse(t *testing.T) {
	tasks := mixedTasks()

	assert.Equal(t, []string{"t1", "t3", "t4"}, taskIDs(FilterByCourse(tasks, "math")))
	assert.Equal(t, []string{"t2"}, taskIDs(FilterByCourse(tasks, "bio")))
	assert.Empty(t, FilterByCourse(tasks, "history"))
	assert.Len(t, FilterByCourse(tasks, AllCourses), 4)
	assert.Len(t, FilterByCourse(tasks, ""), 4)
}

func TestFilterByWeek(t *testing.T) {
	tasks := mixedTasks()

	assert.Equal(t, []string{"t2", "t3"}, taskIDs(FilterByWeek(tasks, 2)))
	assert.Empty(t, FilterByWeek(tasks, 16))
	assert.Len(t, FilterByWeek(tasks, AllWeeks), 4)
}

func TestFilters_DoNotMutateInput(t *testing.T) {
	tasks := mixedTasks()
	before := taskIDs(tasks)

	_ = FilterByStatus(tasks, StatusDone)
	_ = FilterByCourse(tasks, "bio")
	_ = FilterByWeek(tasks, 3)
	_ = Sort(tasks, SortWeek)

	assert.Equal(t, before, taskIDs(tasks))
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]StatusFilter{
		"":           StatusAll,
		"all":        StatusAll,
		"Completed":  StatusCompleted,
		"INCOMPLETE": StatusIncomplete,
		"todo":       StatusTodo,
		"Doing":      StatusDoing,
		"done":       StatusDone,
	} {
		got, err := ParseStatusFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStatusFilter("archived")
	require.Error(t, err)
}

func TestSort_ByWeek(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("a", "A", testutil.WithWeek(3)),
		testutil.NewTestTask("b", "B", testutil.WithWeek(1)),
		testutil.NewTestTask("c", "C", testutil.WithWeek(2)),
	}

	got := Sort(tasks, SortWeek)

	assert.Equal(t, []string{"b", "c", "a"}, taskIDs(got))
}

func TestSort_ByCreation(t *testing.T) {
	base := testutil.FixedNow
	tasks := []domain.Task{
		testutil.NewTestTask("mid", "M", testutil.WithCreatedAt(base.Add(time.Hour))),
		testutil.NewTestTask("old", "O", testutil.WithCreatedAt(base)),
		testutil.NewTestTask("new", "N", testutil.WithCreatedAt(base.Add(2*time.Hour))),
	}

	assert.Equal(t, []string{"new", "mid", "old"}, taskIDs(Sort(tasks, SortNewest)))
	assert.Equal(t, []string{"old", "mid", "new"}, taskIDs(Sort(tasks, SortOldest)))
}

func TestSort_ByDeadlineIsStable(t *testing.T) {
	d1 := testutil.FixedNow.AddDate(0, 0, 1)
	d2 := testutil.FixedNow.AddDate(0, 0, 2)
	tasks := []domain.Task{
		testutil.NewTestTask("late-1", "L1", testutil.WithDeadline(d2)),
		testutil.NewTestTask("early-1", "E1", testutil.WithDeadline(d1)),
		testutil.NewTestTask("late-2", "L2", testutil.WithDeadline(d2)),
		testutil.NewTestTask("early-2", "E2", testutil.WithDeadline(d1)),
	}

	got := Sort(tasks, SortDeadline)

	assert.Equal(t, []string{"early-1", "early-2", "late-1", "late-2"}, taskIDs(got))
}

func TestSort_ManualAndUnknownKeepOrder(t *testing.T) {
	tasks := mixedTasks()
	assert.Equal(t, taskIDs(tasks), taskIDs(Sort(tasks, SortManual)))
	assert.Equal(t, taskIDs(tasks), taskIDs(Sort(tasks, SortKey("priority"))))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, k)

	k, err = ParseSortKey("Deadline")
	require.NoError(t, err)
	assert.Equal(t, SortDeadline, k)

	k, err = ParseSortKey("MANUAL")
	require.NoError(t, err)
	assert.Equal(t, SortManual, k)

	_, err = ParseSortKey("alphabetical")
	require.Error(t, err)
}

func TestView_Apply(t *testing.T) {
	tasks := mixedTasks()

	v := DefaultView()
	v.Status = StatusIncomplete
	v.CourseID = "math"
	v.Sort = SortWeek

	assert.Equal(t, []string{"t1", "t3"}, taskIDs(v.Apply(tasks)))

	v.Week = 2
	assert.Equal(t, []string{"t3"}, taskIDs(v.Apply(tasks)))
}

func TestView_DefaultShowsEverything(t *testing.T) {
	tasks := mixedTasks()
	assert.Len(t, DefaultView().Apply(tasks), len(tasks))
}
