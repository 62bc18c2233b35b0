package testutil

import (
	"bytes"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/alexanderramin/studymate/internal/db"
	"github.com/alexanderramin/studymate/internal/storage"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore returns a Store backed by a fresh in-memory SQLite database.
func NewTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewSQLite(NewTestDB(t), nil)
}

// NewLogBuffer returns a debug-level logger and the buffer it writes to.
func NewLogBuffer() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
