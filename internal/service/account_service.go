package service

import (
	"context"
	"strings"
	"time"

	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/events"
	"github.com/hallkeeper/hall-service/internal/repository"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// AccountService drives the dormitory seat lifecycle
// none -> pending -> payment_pending -> approved.
// Transitions are permissive: none of them checks the current state.
type AccountService struct {
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewAccountService constructs the service. dispatcher may be nil.
func NewAccountService(accounts repository.AccountRepository, dispatcher events.Dispatcher) *AccountService {
	return &AccountService{accounts: accounts, dispatcher: dispatcher, now: time.Now}
}

// Dashboard returns the caller's account.
func (s *AccountService) Dashboard(ctx context.Context, userID string) (*domain.Account, error) {
	if err := checkID(userID, msgUserNotFound); err != nil {
		return nil, err
	}
	account, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, msgUserNotFound)
	}
	return account, nil
}

// RequestSeat moves the caller to pending and stamps the request time.
func (s *AccountService) RequestSeat(ctx context.Context, userID string) (*domain.Account, error) {
	if err := checkID(userID, msgUserNotFound); err != nil {
		return nil, err
	}
	account, err := s.accounts.MarkSeatRequested(ctx, userID, s.now())
	if err != nil {
		return nil, notFoundOr(err, msgUserNotFound)
	}
	s.publishSeat(ctx, events.EventSeatRequested, account, events.Actor{Role: domain.RoleStudent, AccountID: userID})
	return account, nil
}

// ConfirmPayment moves the caller to approved and stamps the payment time.
func (s *AccountService) ConfirmPayment(ctx context.Context, userID string) (*domain.Account, error) {
	if err := checkID(userID, msgUserNotFound); err != nil {
		return nil, err
	}
	account, err := s.accounts.ConfirmPayment(ctx, userID, s.now())
	if err != nil {
		return nil, notFoundOr(err, msgUserNotFound)
	}
	s.publishSeat(ctx, events.EventPaymentConfirmed, account, events.Actor{Role: domain.RoleStudent, AccountID: userID})
	return account, nil
}

// ApproveSeat assigns seatNumber and moves the account to payment_pending.
func (s *AccountService) ApproveSeat(ctx context.Context, userID, seatNumber string) (*domain.Account, error) {
	userID = strings.TrimSpace(userID)
	seatNumber = strings.TrimSpace(seatNumber)
	if userID == "" || seatNumber == "" {
		return nil, apperrors.NewValidationError("User ID and seat number are required.", nil)
	}
	if err := checkID(userID, msgUserNotFound); err != nil {
		return nil, err
	}
	account, err := s.accounts.AssignSeat(ctx, userID, seatNumber)
	if err != nil {
		return nil, notFoundOr(err, msgUserNotFound)
	}
	s.publishSeat(ctx, events.EventSeatAssigned, account, events.Actor{Role: domain.RoleAdmin})
	return account, nil
}

// ListStudents returns student accounts, earliest seat request first.
func (s *AccountService) ListStudents(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.ListStudentsByRequestTime(ctx)
}

func (s *AccountService) publishSeat(ctx context.Context, t events.EventType, account *domain.Account, actor events.Actor) {
	publish(ctx, s.dispatcher, events.Event{
		Type:      t,
		SubjectID: account.ID,
		Actor:     actor,
		Payload: events.SeatChangedPayload{
			StudentID:  account.StudentID,
			SeatStatus: account.SeatStatus,
			SeatNumber: account.SeatNumber,
		},
	})
}
