package domain

import "time"

// ComplaintStatus represents the resolution flag of a complaint.
type ComplaintStatus string

const (
	ComplaintStatusUnresolved ComplaintStatus = "unresolved"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

// Complaint is a free-text grievance filed by a student.
type Complaint struct {
	ID        string
	UserID    string
	StudentID string
	Body      string
	Status    ComplaintStatus
	CreatedAt time.Time
}
