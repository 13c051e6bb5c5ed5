package events

import (
	"time"

	"github.com/hallkeeper/hall-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSeatRequested      EventType = "seat_requested"
	EventSeatAssigned       EventType = "seat_assigned"
	EventPaymentConfirmed   EventType = "payment_confirmed"
	EventComplaintSubmitted EventType = "complaint_submitted"
	EventComplaintResolved  EventType = "complaint_resolved"
	EventNoticePosted       EventType = "notice_posted"
)

// Actor identifies who caused an event. AccountID is empty for the reserved admin.
type Actor struct {
	Role      domain.Role `json:"role"`
	AccountID string      `json:"account_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	SubjectID string    `json:"subject_id"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// SeatChangedPayload payload.
type SeatChangedPayload struct {
	StudentID  string            `json:"student_id"`
	SeatStatus domain.SeatStatus `json:"seat_status"`
	SeatNumber *string           `json:"seat_number,omitempty"`
}

// ComplaintPayload payload.
type ComplaintPayload struct {
	StudentID   string                 `json:"student_id"`
	Status      domain.ComplaintStatus `json:"status"`
	BodyPreview string                 `json:"body_preview,omitempty"`
}

// NoticePostedPayload payload.
type NoticePostedPayload struct {
	Title string `json:"title"`
}
