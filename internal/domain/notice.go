package domain

import "time"

// Notice is an immutable announcement posted by the hall admin.
type Notice struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
}
