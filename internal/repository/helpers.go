package repository

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Option configures a repository.
type Option func(*options)

type options struct {
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// WithClock sets the time source used for CreatedAt and default deadlines.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator sets the source of new entity IDs.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

// WithLogger sets where normalization warnings go.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// nowUTC returns the current time in UTC without a monotonic reading, so
// values compare equal after a round trip through storage.
func (o options) nowUTC() time.Time {
	return o.now().UTC()
}
