package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/studymate/internal/cli/formatter"
	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/alexanderramin/studymate/internal/query"
	"github.com/alexanderramin/studymate/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// boardChangedMsg signals that a repository published a new snapshot.
type boardChangedMsg struct{}

type boardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Cycle    key.Binding
	Delete   key.Binding
	Confirm  key.Binding
	Filter   key.Binding
	Sort     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		MoveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Cycle:    key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "cycle status")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Confirm:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Sort:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Cycle, k.MoveDown, k.MoveUp, k.Help, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.MoveDown, k.MoveUp},
		{k.Cycle, k.Delete, k.Confirm},
		{k.Filter, k.Sort, k.Help, k.Quit},
	}
}

// boardModel is the interactive task board. It re-reads the tracker
// whenever either repository publishes a snapshot.
type boardModel struct {
	app    *App
	view   query.View
	rows   []service.BoardRow
	cursor int
	keys   boardKeyMap
	help   help.Model

	notice        string
	pendingDelete string

	changes     chan struct{}
	unsubscribe []func()
}

func newBoardModel(app *App, view query.View) *boardModel {
	m := &boardModel{
		app:     app,
		view:    view,
		keys:    defaultBoardKeys(),
		help:    help.New(),
		changes: make(chan struct{}, 1),
	}
	notify := func() {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	}
	m.unsubscribe = []func(){
		app.Tracker.Tasks().Subscribe(func([]domain.Task) { notify() }),
		app.Tracker.Courses().Subscribe(func([]domain.Course) { notify() }),
	}
	m.reload()
	return m
}

// Close detaches the board from the repositories.
func (m *boardModel) Close() {
	if m.unsubscribe == nil {
		return
	}
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
	close(m.changes)
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return boardChangedMsg{}
	}
}

func (m *boardModel) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case boardChangedMsg:
		m.reload()
		return m, waitForChange(m.changes)

	case tea.KeyMsg:
		if m.pendingDelete != "" {
			m.resolveDelete(key.Matches(msg, m.keys.Confirm))
			return m, nil
		}
		m.notice = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Cycle):
			if task, ok := m.selected(); ok {
				m.app.Tracker.Tasks().UpdateStatus(context.Background(), task.ID, task.Status.Next())
				m.reload()
			}
		case key.Matches(msg, m.keys.MoveUp):
			m.move(-1)
		case key.Matches(msg, m.keys.MoveDown):
			m.move(1)
		case key.Matches(msg, m.keys.Delete):
			if task, ok := m.selected(); ok {
				m.pendingDelete = task.ID
				m.notice = fmt.Sprintf("Delete %q? press y to confirm", task.Title)
			}
		case key.Matches(msg, m.keys.Filter):
			m.view.Status = next(query.StatusFilters, m.view.Status)
			m.reload()
		case key.Matches(msg, m.keys.Sort):
			m.view.Sort = next(append(slices.Clone(query.SortKeys), query.SortManual), m.view.Sort)
			m.reload()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *boardModel) resolveDelete(confirmed bool) {
	id := m.pendingDelete
	m.pendingDelete = ""
	if !confirmed {
		m.notice = "Delete cancelled"
		return
	}
	task, _ := m.app.Tracker.Tasks().FindByID(id)
	m.app.Tracker.Tasks().DeleteTask(context.Background(), id)
	m.notice = fmt.Sprintf("Deleted %q", task.Title)
	m.reload()
}

// move swaps the selected task past its visible neighbour in the manual
// order, switching the board to manual order first.
func (m *boardModel) move(delta int) {
	if m.view.Sort != query.SortManual {
		m.view.Sort = query.SortManual
		m.reload()
		m.notice = "Switched to manual order"
	}
	target := m.cursor + delta
	if target < 0 || target >= len(m.rows) {
		return
	}
	dragged := m.rows[m.cursor].Task.ID
	m.app.Tracker.Tasks().Reorder(context.Background(), dragged, m.rows[target].Task.ID)
	m.reload()
}

// reload re-reads the board and keeps the cursor on the same task when it
// is still visible.
func (m *boardModel) reload() {
	var keep string
	if task, ok := m.selected(); ok {
		keep = task.ID
	}
	m.rows = m.app.Tracker.Board(m.view)
	for i, row := range m.rows {
		if row.Task.ID == keep {
			m.cursor = i
			return
		}
	}
	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
}

func (m *boardModel) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return domain.Task{}, false
	}
	return m.rows[m.cursor].Task, true
}

func (m *boardModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Study board"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(m.describeView()))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString("  " + formatter.Dim("No tasks match this view."))
		b.WriteString("\n")
	}
	today := m.app.now()
	for i, row := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		title := row.Task.Title
		if row.Task.IsDone() {
			title = formatter.Dim(title)
		}
		fmt.Fprintf(&b, "%s%s %s  %s  %s  %s\n",
			cursor,
			formatter.StatusPill(row.Task.Status),
			title,
			formatter.CoursePill(row.CourseName, row.CourseColor, row.Orphaned),
			formatter.Dim(fmt.Sprintf("W%d", row.Task.Week)),
			formatter.Deadline(row.Task, today),
		)
	}

	if m.notice != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.notice) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *boardModel) describeView() string {
	parts := []string{"status: " + string(m.view.Status), "sort: " + string(m.view.Sort)}
	if m.view.Week != query.AllWeeks {
		parts = append(parts, fmt.Sprintf("week: %d", m.view.Week))
	}
	if m.view.CourseID != query.AllCourses {
		name := service.DeletedCourseLabel
		if c, ok := m.app.Tracker.Courses().FindByID(m.view.CourseID); ok {
			name = c.Name
		}
		parts = append(parts, "course: "+name)
	}
	return strings.Join(parts, " · ")
}

// next returns the element after cur in options, wrapping around. An
// unknown cur yields the first option.
func next[T comparable](options []T, cur T) T {
	i := slices.Index(options, cur)
	return options[(i+1)%len(options)]
}
