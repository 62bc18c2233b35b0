package cli

import (
	"testing"

	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/alexanderramin/studymate/internal/query"
	"github.com/alexanderramin/studymate/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestBoard(t *testing.T, app *App, view query.View) *boardModel {
	t.Helper()
	m := newBoardModel(app, view)
	t.Cleanup(m.Close)
	return m
}

func boardTitles(m *boardModel) []string {
	out := make([]string, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Task.Title
	}
	return out
}

func TestBoard_NavigateAndCycleStatus(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	seedTask(t, app, "B", math, 1)
	id := seedTask(t, app, "A", math, 1)

	m := newTestBoard(t, app, query.DefaultView())
	require.Equal(t, []string{"A", "B"}, boardTitles(m))

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m.Update(runeKey("s"))
	task, _ := app.Tracker.Tasks().FindByID(id)
	assert.Equal(t, domain.StatusDoing, task.Status)

	m.Update(runeKey("s"))
	m.Update(runeKey("s"))
	task, _ = app.Tracker.Tasks().FindByID(id)
	assert.Equal(t, domain.StatusTodo, task.Status, "Done cycles back to Todo")
}

func TestBoard_CursorStaysInBounds(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	seedTask(t, app, "Only", math, 1)

	m := newTestBoard(t, app, query.DefaultView())
	m.Update(runeKey("k"))
	assert.Equal(t, 0, m.cursor)
	m.Update(runeKey("j"))
	assert.Equal(t, 0, m.cursor)
}

func TestBoard_MoveSwitchesToManualOrderAndReorders(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	seedTask(t, app, "C", math, 3)
	seedTask(t, app, "B", math, 2)
	seedTask(t, app, "A", math, 1)

	m := newTestBoard(t, app, query.DefaultView())
	require.Equal(t, []string{"A", "B", "C"}, boardTitles(m))

	m.Update(runeKey("J"))
	assert.Equal(t, query.SortManual, m.view.Sort)
	assert.Equal(t, []string{"B", "A", "C"}, boardTitles(m))
	assert.Equal(t, []string{"B", "A", "C"}, taskTitles(app))
	assert.Equal(t, 1, m.cursor, "cursor follows the moved task")

	m.Update(runeKey("J"))
	assert.Equal(t, []string{"B", "C", "A"}, boardTitles(m))
	assert.Equal(t, 2, m.cursor)

	m.Update(runeKey("J"))
	assert.Equal(t, []string{"B", "C", "A"}, boardTitles(m), "moving past the end is a no-op")

	m.Update(runeKey("K"))
	m.Update(runeKey("K"))
	assert.Equal(t, []string{"A", "B", "C"}, boardTitles(m))
	assert.Equal(t, 0, m.cursor)
}

func TestBoard_MoveWithinFilteredView(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	bio := seedCourse(t, app, "Biology", domain.ColorGreen)
	seedTask(t, app, "Math 2", math, 1)
	seedTask(t, app, "Lab", bio, 1)
	seedTask(t, app, "Math 1", math, 1)

	view := query.DefaultView()
	view.CourseID = math
	view.Sort = query.SortManual
	m := newTestBoard(t, app, view)
	require.Equal(t, []string{"Math 1", "Math 2"}, boardTitles(m))

	m.Update(runeKey("J"))
	assert.Equal(t, []string{"Math 2", "Math 1"}, boardTitles(m))
	assert.Equal(t, []string{"Lab", "Math 2", "Math 1"}, taskTitles(app))
}

func TestBoard_DeleteNeedsConfirmation(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	seedTask(t, app, "Keep", math, 1)
	seedTask(t, app, "Drop", math, 1)

	m := newTestBoard(t, app, query.DefaultView())

	m.Update(runeKey("x"))
	assert.Contains(t, m.notice, `Delete "Drop"?`)
	m.Update(runeKey("n"))
	assert.Equal(t, "Delete cancelled", m.notice)
	assert.Len(t, app.Tracker.Tasks().List(), 2)

	m.Update(runeKey("x"))
	m.Update(runeKey("y"))
	assert.Equal(t, []string{"Keep"}, taskTitles(app))
	assert.Equal(t, []string{"Keep"}, boardTitles(m))
	assert.Equal(t, 0, m.cursor)
}

func TestBoard_FilterAndSortKeysCycle(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	id := seedTask(t, app, "Done one", math, 1)
	seedTask(t, app, "Open one", math, 1)
	app.Tracker.Tasks().UpdateStatus(t.Context(), id, domain.StatusDone)

	m := newTestBoard(t, app, query.DefaultView())

	m.Update(runeKey("f"))
	assert.Equal(t, query.StatusTodo, m.view.Status)
	assert.Equal(t, []string{"Open one"}, boardTitles(m))

	m.Update(runeKey("o"))
	assert.Equal(t, query.SortOldest, m.view.Sort)
}

func TestBoard_SeesExternalChanges(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	m := newTestBoard(t, app, query.DefaultView())
	require.Empty(t, m.rows)

	seedTask(t, app, "Added elsewhere", math, 1)

	msg := m.Init()()
	require.IsType(t, boardChangedMsg{}, msg)
	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd, "board keeps listening")
	assert.Equal(t, []string{"Added elsewhere"}, boardTitles(m))
}

func TestBoard_ViewRendersRowsAndHelp(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	seedTask(t, app, "Essay", math, 4)
	seedTask(t, app, "Stray", "course-gone", 2)

	m := newTestBoard(t, app, query.DefaultView())
	out := ansiPattern.ReplaceAllString(m.View(), "")

	assert.Contains(t, out, "STUDY BOARD")
	assert.Contains(t, out, "status: all · sort: newest")
	assert.Contains(t, out, "▸ ○ Todo Stray")
	assert.Contains(t, out, "course deleted")
	assert.Contains(t, out, "W4")
	assert.Contains(t, out, "quit")
}

func TestBoard_QuitKey(t *testing.T) {
	app := testApp(t)
	m := newTestBoard(t, app, query.DefaultView())

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNext_Wraps(t *testing.T) {
	keys := []string{"a", "b", "c"}
	assert.Equal(t, "b", next(keys, "a"))
	assert.Equal(t, "a", next(keys, "c"))
	assert.Equal(t, "a", next(keys, "zzz"))
}

func TestBoard_ScriptedSession(t *testing.T) {
	app := testApp(t)
	math := seedCourse(t, app, "Math", domain.ColorRed)
	seedTask(t, app, "Read chapter", math, 2)
	seedTask(t, app, "Problem set", math, 3)

	m := newTestBoard(t, app, query.DefaultView())
	d := teatest.New(t, m, teatest.WithSize(100, 30))

	d.PressDown()
	d.Press("ss")
	assert.Contains(t, d.View(), "✔ Done Read chapter")

	d.Press("K")
	assert.Equal(t, []string{"Read chapter", "Problem set"}, taskTitles(app))
	assert.Contains(t, d.View(), "sort: manual")

	d.Press("q")
	assert.True(t, d.Quitting)
	d.Press("x")
	assert.Empty(t, m.pendingDelete, "keys after quit are ignored")
}
