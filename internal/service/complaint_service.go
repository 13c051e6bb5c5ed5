package service

import (
	"context"
	"strings"

	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/events"
	"github.com/hallkeeper/hall-service/internal/repository"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// ComplaintService files and resolves student complaints.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
}

// NewComplaintService constructs the service. dispatcher may be nil.
func NewComplaintService(complaints repository.ComplaintRepository, accounts repository.AccountRepository, dispatcher events.Dispatcher) *ComplaintService {
	return &ComplaintService{complaints: complaints, accounts: accounts, dispatcher: dispatcher}
}

// Submit records a complaint, snapshotting the caller's student id.
func (s *ComplaintService) Submit(ctx context.Context, userID, text string) (*domain.Complaint, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("Complaint text cannot be empty.", nil)
	}
	if err := checkID(userID, msgUserNotFound); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, msgUserNotFound)
	}

	complaint := &domain.Complaint{
		UserID:    account.ID,
		StudentID: account.StudentID,
		Body:      text,
		Status:    domain.ComplaintStatusUnresolved,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:      events.EventComplaintSubmitted,
		SubjectID: complaint.ID,
		Actor:     events.Actor{Role: domain.RoleStudent, AccountID: account.ID},
		Payload: events.ComplaintPayload{
			StudentID:   complaint.StudentID,
			Status:      complaint.Status,
			BodyPreview: preview(complaint.Body, 80),
		},
	})
	return complaint, nil
}

// List returns every complaint, newest first.
func (s *ComplaintService) List(ctx context.Context) ([]domain.Complaint, error) {
	return s.complaints.ListNewestFirst(ctx)
}

// Resolve flags a complaint as resolved.
func (s *ComplaintService) Resolve(ctx context.Context, complaintID string) (*domain.Complaint, error) {
	complaintID = strings.TrimSpace(complaintID)
	if complaintID == "" {
		return nil, apperrors.NewValidationError("Complaint ID is required.", nil)
	}
	if err := checkID(complaintID, msgComplaintNotFound); err != nil {
		return nil, err
	}
	complaint, err := s.complaints.Resolve(ctx, complaintID)
	if err != nil {
		return nil, notFoundOr(err, msgComplaintNotFound)
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:      events.EventComplaintResolved,
		SubjectID: complaint.ID,
		Actor:     events.Actor{Role: domain.RoleAdmin},
		Payload:   events.ComplaintPayload{StudentID: complaint.StudentID, Status: complaint.Status},
	})
	return complaint, nil
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
