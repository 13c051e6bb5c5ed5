package dto

import "time"

// SubmitComplaintRequest payload.
type SubmitComplaintRequest struct {
	ComplaintText string `json:"complaintText"`
}

// ResolveComplaintRequest payload.
type ResolveComplaintRequest struct {
	ComplaintID string `json:"complaintId"`
}

// ComplaintResponse is a stored complaint.
type ComplaintResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StudentID string    `json:"studentId"`
	Complaint string    `json:"complaint"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ComplaintMessageResponse acknowledges a resolution.
type ComplaintMessageResponse struct {
	Message   string            `json:"message"`
	Complaint ComplaintResponse `json:"complaint"`
}
