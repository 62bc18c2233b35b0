package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/alexanderramin/studymate/internal/state"
	"github.com/alexanderramin/studymate/internal/storage"
)

// StoreTaskRepo implements TaskRepo over a storage.Store. Tasks are kept
// newest first; the whole collection is rewritten under TasksKey on every
// mutation.
type StoreTaskRepo struct {
	mu    sync.Mutex
	store *storage.Store
	state *state.Container[[]domain.Task]
	opts  options
}

// NewStoreTaskRepo loads and normalizes the persisted tasks.
func NewStoreTaskRepo(ctx context.Context, store *storage.Store, opts ...Option) *StoreTaskRepo {
	o := buildOptions(opts)
	records := storage.Get(ctx, store, TasksKey, []taskRecord{})
	return &StoreTaskRepo{
		store: store,
		state: state.New(normalizeTasks(records, o.logger)),
		opts:  o,
	}
}

// AddTask prepends a new task. It returns nil without touching the
// collection when the title is blank, the course is missing, the week is
// outside [1, 16] or the status is unknown.
func (r *StoreTaskRepo) AddTask(ctx context.Context, in NewTask) *domain.Task {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.CourseID == "" || !domain.ValidWeek(in.Week) {
		return nil
	}
	status := in.Status
	if status == "" {
		status = domain.StatusTodo
	}
	if !status.Valid() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.opts.nowUTC()
	deadline := domain.Today(r.opts.now())
	if !in.Deadline.IsZero() {
		deadline = domain.AsDate(in.Deadline)
	}
	t := domain.Task{
		ID:              r.opts.newID(),
		Title:           title,
		CourseID:        in.CourseID,
		Week:            in.Week,
		Status:          status,
		Deadline:        deadline,
		SubmissionPlace: in.SubmissionPlace,
		CreatedAt:       now,
	}
	current := r.state.Get()
	next := make([]domain.Task, 0, len(current)+1)
	next = append(append(next, t), current...)
	r.commit(ctx, next)
	return &t
}

func (r *StoreTaskRepo) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) {
	if !status.Valid() {
		return
	}
	r.update(ctx, id, func(t *domain.Task) {
		t.Status = status
	})
}

// UpdateFields applies the non-nil fields of patch. A title that trims to
// empty rejects the whole patch.
func (r *StoreTaskRepo) UpdateFields(ctx context.Context, id string, patch TaskPatch) {
	var title string
	if patch.Title != nil {
		title = strings.TrimSpace(*patch.Title)
		if title == "" {
			return
		}
	}
	r.update(ctx, id, func(t *domain.Task) {
		if patch.Title != nil {
			t.Title = title
		}
		if patch.Deadline != nil {
			t.Deadline = domain.AsDate(*patch.Deadline)
		}
		if patch.SubmissionPlace != nil {
			t.SubmissionPlace = *patch.SubmissionPlace
		}
	})
}

func (r *StoreTaskRepo) DeleteTask(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.state.Get()
	i := indexOfTask(current, id)
	if i < 0 {
		return
	}
	r.commit(ctx, slices.Delete(slices.Clone(current), i, i+1))
}

func (r *StoreTaskRepo) DeleteByCourse(ctx context.Context, courseID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.state.Get()
	next := slices.DeleteFunc(slices.Clone(current), func(t domain.Task) bool {
		return t.CourseID == courseID
	})
	if len(next) == len(current) {
		return
	}
	r.commit(ctx, next)
}

// Reorder moves the dragged task into the slot the target occupied before
// the move: dragging down lands after the target, dragging up lands before
// it. Unknown IDs, or dragging a task onto itself, change nothing.
func (r *StoreTaskRepo) Reorder(ctx context.Context, draggedID, targetID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.state.Get()
	from := indexOfTask(current, draggedID)
	to := indexOfTask(current, targetID)
	if from < 0 || to < 0 || from == to {
		return
	}
	next := slices.Clone(current)
	moved := next[from]
	next = slices.Delete(next, from, from+1)
	next = slices.Insert(next, to, moved)
	r.commit(ctx, next)
}

func (r *StoreTaskRepo) FindByID(id string) (domain.Task, bool) {
	current := r.state.Get()
	if i := indexOfTask(current, id); i >= 0 {
		return current[i], true
	}
	return domain.Task{}, false
}

// List returns a copy of the tasks, newest first unless reordered.
func (r *StoreTaskRepo) List() []domain.Task {
	return slices.Clone(r.state.Get())
}

func (r *StoreTaskRepo) CountByCourse(courseID string) int {
	n := 0
	for _, t := range r.state.Get() {
		if t.CourseID == courseID {
			n++
		}
	}
	return n
}

// Subscribe calls fn with every new task snapshot. fn must not mutate the
// repository from inside the callback.
func (r *StoreTaskRepo) Subscribe(fn func([]domain.Task)) func() {
	return r.state.Subscribe(fn)
}

// update applies fn to a copy of the task with the given id and commits.
func (r *StoreTaskRepo) update(ctx context.Context, id string, fn func(*domain.Task)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.state.Get()
	i := indexOfTask(current, id)
	if i < 0 {
		return
	}
	next := slices.Clone(current)
	fn(&next[i])
	r.commit(ctx, next)
}

func (r *StoreTaskRepo) commit(ctx context.Context, next []domain.Task) {
	r.store.Set(ctx, TasksKey, toTaskRecords(next))
	r.state.Set(next)
}

func indexOfTask(tasks []domain.Task, id string) int {
	return slices.IndexFunc(tasks, func(t domain.Task) bool { return t.ID == id })
}
