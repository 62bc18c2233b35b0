package domain

import "time"

// Course is a user-defined academic subject that groups tasks.
type Course struct {
	ID        string
	Name      string
	Color     Color
	CreatedAt time.Time
}
