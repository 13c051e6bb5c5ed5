// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/repository"
)

var (
	_ repository.AccountRepository   = (*AccountRepository)(nil)
	_ repository.MealRepository      = (*MealRepository)(nil)
	_ repository.ComplaintRepository = (*ComplaintRepository)(nil)
	_ repository.NoticeRepository    = (*NoticeRepository)(nil)
)

// AccountRepository is a mock implementation of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	return account(args)
}

func (m *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	return account(args)
}

func (m *AccountRepository) ListStudentsByRequestTime(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *AccountRepository) MarkSeatRequested(ctx context.Context, id string, at time.Time) (*domain.Account, error) {
	args := m.Called(ctx, id, at)
	return account(args)
}

func (m *AccountRepository) AssignSeat(ctx context.Context, id, seatNumber string) (*domain.Account, error) {
	args := m.Called(ctx, id, seatNumber)
	return account(args)
}

func (m *AccountRepository) ConfirmPayment(ctx context.Context, id string, at time.Time) (*domain.Account, error) {
	args := m.Called(ctx, id, at)
	return account(args)
}

func account(args mock.Arguments) (*domain.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// MealRepository is a mock implementation of repository.MealRepository.
type MealRepository struct {
	mock.Mock
}

func (m *MealRepository) Upsert(ctx context.Context, meal *domain.MealRecord) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

func (m *MealRepository) ListByUserInRange(ctx context.Context, userID, from, to string) ([]domain.MealRecord, error) {
	args := m.Called(ctx, userID, from, to)
	return meals(args)
}

func (m *MealRepository) ListByUserNewestFirst(ctx context.Context, userID string) ([]domain.MealRecord, error) {
	args := m.Called(ctx, userID)
	return meals(args)
}

func (m *MealRepository) ListByDate(ctx context.Context, date string) ([]domain.MealRecord, error) {
	args := m.Called(ctx, date)
	return meals(args)
}

func (m *MealRepository) CountsByUserInRange(ctx context.Context, userIDs []string, from, to string) (map[string]domain.MealCounts, error) {
	args := m.Called(ctx, userIDs, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.MealCounts), args.Error(1)
}

func meals(args mock.Arguments) ([]domain.MealRecord, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MealRecord), args.Error(1)
}

// ComplaintRepository is a mock implementation of repository.ComplaintRepository.
type ComplaintRepository struct {
	mock.Mock
}

func (m *ComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *ComplaintRepository) ListNewestFirst(ctx context.Context) ([]domain.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *ComplaintRepository) Resolve(ctx context.Context, id string) (*domain.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

// NoticeRepository is a mock implementation of repository.NoticeRepository.
type NoticeRepository struct {
	mock.Mock
}

func (m *NoticeRepository) Create(ctx context.Context, notice *domain.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *NoticeRepository) ListNewestFirst(ctx context.Context) ([]domain.Notice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notice), args.Error(1)
}
