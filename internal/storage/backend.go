package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/studymate/internal/db"
)

// Backend is the durable key-value substrate beneath a Store.
type Backend interface {
	// Load returns the raw bytes stored under key. The bool is false when
	// the key has never been written.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save overwrites key with value.
	Save(ctx context.Context, key string, value []byte) error
}

// SQLiteBackend stores each key as one row of kv_entries.
type SQLiteBackend struct {
	db db.DBTX
}

// NewSQLiteBackend creates a backend over an open, migrated database.
func NewSQLiteBackend(conn db.DBTX) *SQLiteBackend {
	return &SQLiteBackend{db: conn}
}

func (b *SQLiteBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading key %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (b *SQLiteBackend) Save(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := b.db.ExecContext(ctx, query, key, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving key %q: %w", key, err)
	}
	return nil
}

// MemoryBackend keeps values in a map for the lifetime of the process.
// It is the fallback when no database can be opened, and the test double
// for everything above the store.
type MemoryBackend struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{m: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (b *MemoryBackend) Save(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	b.m[key] = stored
	return nil
}
