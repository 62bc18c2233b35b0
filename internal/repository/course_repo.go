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

// StoreCourseRepo implements CourseRepo over a storage.Store. The whole
// collection is rewritten under CoursesKey on every mutation.
type StoreCourseRepo struct {
	mu    sync.Mutex
	store *storage.Store
	state *state.Container[[]domain.Course]
	opts  options
}

// NewStoreCourseRepo loads and normalizes the persisted courses.
func NewStoreCourseRepo(ctx context.Context, store *storage.Store, opts ...Option) *StoreCourseRepo {
	o := buildOptions(opts)
	records := storage.Get(ctx, store, CoursesKey, []courseRecord{})
	return &StoreCourseRepo{
		store: store,
		state: state.New(normalizeCourses(records, o.logger)),
		opts:  o,
	}
}

func (r *StoreCourseRepo) AddCourse(ctx context.Context, name string, color domain.Color) *domain.Course {
	name = strings.TrimSpace(name)
	if name == "" || !color.Valid() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := domain.Course{
		ID:        r.opts.newID(),
		Name:      name,
		Color:     color,
		CreatedAt: r.opts.nowUTC(),
	}
	current := r.state.Get()
	next := make([]domain.Course, 0, len(current)+1)
	next = append(append(next, current...), c)
	r.commit(ctx, next)
	return &c
}

func (r *StoreCourseRepo) UpdateCourse(ctx context.Context, id, name string, color domain.Color) {
	name = strings.TrimSpace(name)
	if name == "" || !color.Valid() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.state.Get()
	i := indexOfCourse(current, id)
	if i < 0 {
		return
	}
	next := slices.Clone(current)
	next[i].Name = name
	next[i].Color = color
	r.commit(ctx, next)
}

func (r *StoreCourseRepo) DeleteCourse(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.state.Get()
	i := indexOfCourse(current, id)
	if i < 0 {
		return
	}
	next := slices.Delete(slices.Clone(current), i, i+1)
	r.commit(ctx, next)
}

func (r *StoreCourseRepo) FindByID(id string) (domain.Course, bool) {
	current := r.state.Get()
	if i := indexOfCourse(current, id); i >= 0 {
		return current[i], true
	}
	return domain.Course{}, false
}

// List returns a copy of the courses in insertion order.
func (r *StoreCourseRepo) List() []domain.Course {
	return slices.Clone(r.state.Get())
}

// Subscribe calls fn with every new course snapshot. fn must not mutate
// the repository from inside the callback.
func (r *StoreCourseRepo) Subscribe(fn func([]domain.Course)) func() {
	return r.state.Subscribe(fn)
}

// commit writes next through to the store and publishes it. Callers hold mu.
func (r *StoreCourseRepo) commit(ctx context.Context, next []domain.Course) {
	r.store.Set(ctx, CoursesKey, toCourseRecords(next))
	r.state.Set(next)
}

func indexOfCourse(courses []domain.Course, id string) int {
	return slices.IndexFunc(courses, func(c domain.Course) bool { return c.ID == id })
}
