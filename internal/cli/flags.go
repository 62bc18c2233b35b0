package cli

import (
	"time"

	"github.com/alexanderramin/studymate/internal/domain"
	"github.com/alexanderramin/studymate/internal/query"
	"github.com/spf13/pflag"
)

// statusValue is a --status flag holding a task status.
type statusValue domain.TaskStatus

func (v *statusValue) String() string { return string(*v) }
func (v *statusValue) Type() string   { return "status" }
func (v *statusValue) Set(s string) error {
	st, err := domain.ParseTaskStatus(s)
	if err != nil {
		return err
	}
	*v = statusValue(st)
	return nil
}

// colorValue is a --color flag restricted to the course palette.
type colorValue domain.Color

func (v *colorValue) String() string { return string(*v) }
func (v *colorValue) Type() string   { return "color" }
func (v *colorValue) Set(s string) error {
	c, err := domain.ParseColor(s)
	if err != nil {
		return err
	}
	*v = colorValue(c)
	return nil
}

// filterValue is a --status flag for listings, accepting all/completed/
// incomplete as well as the exact statuses.
type filterValue query.StatusFilter

func (v *filterValue) String() string { return string(*v) }
func (v *filterValue) Type() string   { return "filter" }
func (v *filterValue) Set(s string) error {
	f, err := query.ParseStatusFilter(s)
	if err != nil {
		return err
	}
	*v = filterValue(f)
	return nil
}

// sortValue is a --sort flag.
type sortValue query.SortKey

func (v *sortValue) String() string { return string(*v) }
func (v *sortValue) Type() string   { return "sort" }
func (v *sortValue) Set(s string) error {
	k, err := query.ParseSortKey(s)
	if err != nil {
		return err
	}
	*v = sortValue(k)
	return nil
}

// dateValue is a YYYY-MM-DD flag. The zero value means unset.
type dateValue time.Time

func (v *dateValue) String() string {
	t := time.Time(*v)
	if t.IsZero() {
		return ""
	}
	return domain.FormatDate(t)
}
func (v *dateValue) Type() string { return "date" }
func (v *dateValue) Set(s string) error {
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*v = dateValue(t)
	return nil
}

var (
	_ pflag.Value = (*statusValue)(nil)
	_ pflag.Value = (*colorValue)(nil)
	_ pflag.Value = (*filterValue)(nil)
	_ pflag.Value = (*sortValue)(nil)
	_ pflag.Value = (*dateValue)(nil)
)

// viewFlags binds the listing filters shared by "task list" and "board".
type viewFlags struct {
	status filterValue
	course string
	week   int
	sort   sortValue
}

func (f *viewFlags) register(fs *pflag.FlagSet) {
	f.status = filterValue(query.StatusAll)
	fs.Var(&f.status, "status", "Filter: all, completed, incomplete, Todo, Doing or Done")
	fs.StringVar(&f.course, "course", query.AllCourses, "Course ID, ID prefix, or \"all\"")
	fs.IntVar(&f.week, "week", query.AllWeeks, "Week 1-16 (0 for all)")
	fs.Var(&f.sort, "sort", "Order: newest, oldest, deadline, week or manual")
}

// view resolves the flags into a query.View.
func (f *viewFlags) view(app *App) (query.View, error) {
	v := query.View{
		Status:   query.StatusFilter(f.status),
		CourseID: query.AllCourses,
		Week:     f.week,
		Sort:     query.SortKey(f.sort),
	}
	if v.Sort == "" {
		v.Sort = app.defaultSort()
	}
	if f.week != query.AllWeeks && !domain.ValidWeek(f.week) {
		return v, weekRangeError(f.week)
	}
	if f.course != "" && f.course != query.AllCourses {
		id, err := resolveCourseID(app, f.course)
		if err != nil {
			return v, err
		}
		v.CourseID = id
	}
	return v, nil
}
