package query

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/studymate/internal/domain"
)

// SortKey orders a task list.
type SortKey string

const (
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
	SortDeadline SortKey = "deadline"
	SortWeek     SortKey = "week"
	// SortManual keeps the stored order, which Reorder controls.
	SortManual SortKey = "manual"
)

// SortKeys lists the ordering keys in the order the board cycles them.
var SortKeys = []SortKey{SortNewest, SortOldest, SortDeadline, SortWeek}

// ParseSortKey accepts a key in any letter case; empty means newest.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortNewest, nil
	}
	for _, k := range append(SortKeys, SortManual) {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q (want newest, oldest, deadline, week or manual)", s)
}

// Sort returns a stably sorted copy of tasks. SortManual and unknown keys
// keep the input order.
func Sort(tasks []domain.Task, key SortKey) []domain.Task {
	out := slices.Clone(tasks)
	cmp := comparator(key)
	if cmp == nil {
		return out
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func comparator(key SortKey) func(a, b domain.Task) int {
	switch key {
	case SortNewest:
		return func(a, b domain.Task) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortOldest:
		return func(a, b domain.Task) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortDeadline:
		return func(a, b domain.Task) int { return a.Deadline.Compare(b.Deadline) }
	case SortWeek:
		return func(a, b domain.Task) int { return a.Week - b.Week }
	default:
		return nil
	}
}
