package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/studymate/internal/db"
)

// FailingExecDB wraps a DBTX and fails ExecContext calls from the FailFrom-th
// call onward (counted from 1). Reads pass through, so a store built on it
// loads normally and then loses every write.
type FailingExecDB struct {
	db.DBTX
	FailFrom int32
	Err      error
	count    atomic.Int32
}

func (f *FailingExecDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if f.FailFrom > 0 && n >= f.FailFrom {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// Execs reports how many ExecContext calls were attempted.
func (f *FailingExecDB) Execs() int {
	return int(f.count.Load())
}
