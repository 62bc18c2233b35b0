// Package storage is the persistent key-value layer under the repositories.
// Values are JSON documents, one per key, always written whole. Reads never
// fail: absent, corrupt or unreachable data degrades to the caller's default.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/alexanderramin/studymate/internal/db"
)

// Store wraps a Backend with JSON encoding and failure swallowing.
type Store struct {
	backend Backend
	logger  *slog.Logger
	durable bool
	closer  io.Closer
}

// New creates a Store over backend. A nil logger discards log output.
func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	_, inMemory := backend.(*MemoryBackend)
	return &Store{backend: backend, logger: logger, durable: !inMemory}
}

// Open opens the SQLite database at path and returns a Store over it. When
// the database cannot be opened the failure is logged and the Store falls
// back to process memory; the session still works, it just won't persist.
func Open(path string, logger *slog.Logger) *Store {
	conn, err := db.OpenDB(path)
	if err != nil {
		s := New(NewMemoryBackend(), logger)
		s.logger.Warn("persistent storage unavailable, using memory",
			"path", path, "error", err.Error())
		return s
	}
	s := New(NewSQLiteBackend(conn), logger)
	s.closer = conn
	return s
}

// NewSQLite wraps an already open database.
func NewSQLite(conn *sql.DB, logger *slog.Logger) *Store {
	return New(NewSQLiteBackend(conn), logger)
}

// Durable reports whether writes survive the process.
func (s *Store) Durable() bool {
	return s.durable
}

// Close releases the underlying database, if the Store opened one.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Get returns the value stored under key decoded as T, or def when the key
// is absent, the stored bytes do not decode, or the backend fails.
func Get[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, ok, err := s.backend.Load(ctx, key)
	if err != nil {
		s.logger.ErrorContext(ctx, "storage_read_failed", "key", key, "error", err.Error())
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.WarnContext(ctx, "storage_value_corrupt", "key", key, "error", err.Error())
		return def
	}
	return v
}

// Set encodes value and overwrites key. Failures are logged, never returned.
func (s *Store) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.ErrorContext(ctx, "storage_encode_failed", "key", key, "error", err.Error())
		return
	}
	if err := s.backend.Save(ctx, key, raw); err != nil {
		s.logger.ErrorContext(ctx, "storage_write_failed", "key", key, "bytes", len(raw), "error", err.Error())
	}
}
