package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/repository/mocks"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// upsertStore mimics the (user, date) uniqueness of the meal table.
type upsertStore struct {
	mocks.MealRepository
	rows map[[2]string]domain.MealRecord
}

func (s *upsertStore) Upsert(_ context.Context, meal *domain.MealRecord) error {
	if s.rows == nil {
		s.rows = map[[2]string]domain.MealRecord{}
	}
	s.rows[[2]string{meal.UserID, meal.Date}] = *meal
	return nil
}

func TestSaveIsIdempotentUpsert(t *testing.T) {
	store := &upsertStore{}
	svc := NewMealService(MealDependencies{MealRepo: store, AccountRepo: new(mocks.AccountRepository)})
	ctx := context.Background()

	_, err := svc.Save(ctx, MealSaveInput{UserID: accountID, StudentID: "S-1", Date: "2025-07-10", Breakfast: true})
	require.NoError(t, err)
	saved, err := svc.Save(ctx, MealSaveInput{UserID: accountID, StudentID: "S-1", Date: "2025-07-10", Lunch: true})
	require.NoError(t, err)

	require.Len(t, store.rows, 1)
	got := store.rows[[2]string{accountID, "2025-07-10"}]
	assert.False(t, got.Breakfast)
	assert.True(t, got.Lunch)
	assert.False(t, got.Dinner)
	assert.Equal(t, got, *saved)
}

func TestSaveFallsBackToAccountStudentID(t *testing.T) {
	meals := new(mocks.MealRepository)
	accounts := new(mocks.AccountRepository)
	svc := NewMealService(MealDependencies{MealRepo: meals, AccountRepo: accounts})
	ctx := context.Background()

	accounts.On("GetByID", ctx, accountID).Return(&domain.Account{ID: accountID, StudentID: "S-77"}, nil)
	meals.On("Upsert", ctx, mock.MatchedBy(func(m *domain.MealRecord) bool {
		return m.StudentID == "S-77" && m.Date == "2025-07-10" && m.Dinner
	})).Return(nil)

	_, err := svc.Save(ctx, MealSaveInput{UserID: accountID, Date: "2025-07-10", Dinner: true})
	require.NoError(t, err)
	meals.AssertExpectations(t)
}

func TestSaveRejectsBadDate(t *testing.T) {
	meals := new(mocks.MealRepository)
	svc := NewMealService(MealDependencies{MealRepo: meals, AccountRepo: new(mocks.AccountRepository)})

	for _, date := range []string{"", "10/07/2025", "2025-13-01", "2025-02-30"} {
		_, err := svc.Save(context.Background(), MealSaveInput{UserID: accountID, StudentID: "S", Date: date})
		assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus, date)
	}
	meals.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSaveForRemovedAccountIsNotFound(t *testing.T) {
	meals := new(mocks.MealRepository)
	svc := NewMealService(MealDependencies{MealRepo: meals, AccountRepo: new(mocks.AccountRepository)})
	meals.On("Upsert", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23503"})

	_, err := svc.Save(context.Background(), MealSaveInput{UserID: accountID, StudentID: "S-1", Date: "2025-07-10", Lunch: true})
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "User not found.", de.Message)
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		from, to string
	}{
		{2025, time.July, "2025-07-01", "2025-07-31"},
		{2024, time.February, "2024-02-01", "2024-02-29"},
		{2025, time.February, "2025-02-01", "2025-02-28"},
		{2025, time.December, "2025-12-01", "2025-12-31"},
	}
	for _, tt := range tests {
		from, to := MonthRange(tt.year, tt.month)
		assert.Equal(t, tt.from, from)
		assert.Equal(t, tt.to, to)
	}
}

func TestListMonth(t *testing.T) {
	meals := new(mocks.MealRepository)
	svc := NewMealService(MealDependencies{MealRepo: meals})
	ctx := context.Background()
	records := []domain.MealRecord{{Date: "2024-02-29", Lunch: true}}

	meals.On("ListByUserInRange", ctx, accountID, "2024-02-01", "2024-02-29").Return(records, nil)

	got, err := svc.ListMonth(ctx, accountID, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	_, err = svc.ListMonth(ctx, accountID, 13, 2024)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
	_, err = svc.ListMonth(ctx, accountID, 0, 0)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
}

func TestSummarizeByMonth(t *testing.T) {
	records := []domain.MealRecord{
		{Date: "2025-08-01", Dinner: true},
		{Date: "2025-07-03", Breakfast: true},
		{Date: "2025-07-02", Breakfast: true, Lunch: true, Dinner: true},
		{Date: "2025-07-01", Breakfast: true, Lunch: true},
	}

	got := SummarizeByMonth(records)

	require.Len(t, got, 2)
	assert.Equal(t, MonthlySummary{MealCounts: domain.MealCounts{Breakfast: 3, Lunch: 2, Dinner: 1}, TotalCost: 180}, got["2025-07"])
	assert.Equal(t, MonthlySummary{MealCounts: domain.MealCounts{Dinner: 1}, TotalCost: 40}, got["2025-08"])
	assert.Empty(t, SummarizeByMonth(nil))
}

func TestHistory(t *testing.T) {
	meals := new(mocks.MealRepository)
	svc := NewMealService(MealDependencies{MealRepo: meals})
	ctx := context.Background()

	meals.On("ListByUserNewestFirst", ctx, accountID).Return([]domain.MealRecord{
		{Date: "2025-07-02", Lunch: true},
	}, nil)

	got, err := svc.History(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, 40, got["2025-07"].TotalCost)
}

func TestTomorrowUTC(t *testing.T) {
	east := time.FixedZone("UTC+6", 6*3600)
	// 01:00 on Aug 1 at UTC+6 is still July 31 in UTC.
	assert.Equal(t, "2025-08-01", TomorrowUTC(time.Date(2025, 8, 1, 1, 0, 0, 0, east)))
	assert.Equal(t, "2026-01-01", TomorrowUTC(time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)))
}

func TestOverview(t *testing.T) {
	meals := new(mocks.MealRepository)
	west := time.FixedZone("UTC-5", -5*3600)
	svc := NewMealService(MealDependencies{MealRepo: meals, MonthLocation: west})
	// 21:30 on July 31 at UTC-5 is 02:30 on Aug 1 UTC, so tomorrow is Aug 2
	// while "this month" is still July.
	svc.now = fixedClock(time.Date(2025, 7, 31, 21, 30, 0, 0, west))
	ctx := context.Background()

	plans := []domain.MealRecord{
		{UserID: "u1", StudentID: "S-1", Date: "2025-08-02", Breakfast: true, Lunch: true},
		{UserID: "u2", StudentID: "S-2", Date: "2025-08-02", Lunch: true, Dinner: true},
	}
	meals.On("ListByDate", ctx, "2025-08-02").Return(plans, nil)
	meals.On("CountsByUserInRange", ctx, []string{"u1", "u2"}, "2025-07-01", "2025-07-31").
		Return(map[string]domain.MealCounts{"u1": {Breakfast: 12, Lunch: 9, Dinner: 4}}, nil)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-02", overview.Date)
	assert.Equal(t, domain.MealCounts{Breakfast: 1, Lunch: 2, Dinner: 1}, overview.Summary)
	require.Len(t, overview.Plans, 2)
	assert.Equal(t, domain.MealCounts{Breakfast: 12, Lunch: 9, Dinner: 4}, overview.Plans[0].MonthlyTotals)
	assert.Equal(t, domain.MealCounts{}, overview.Plans[1].MonthlyTotals)
	meals.AssertExpectations(t)
}

func TestOverviewWithNoPlans(t *testing.T) {
	meals := new(mocks.MealRepository)
	svc := NewMealService(MealDependencies{MealRepo: meals, MonthLocation: time.UTC})
	svc.now = fixedClock(time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	meals.On("ListByDate", ctx, "2025-07-11").Return([]domain.MealRecord{}, nil)
	meals.On("CountsByUserInRange", ctx, []string{}, "2025-07-01", "2025-07-31").
		Return(map[string]domain.MealCounts{}, nil)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MealCounts{}, overview.Summary)
	assert.Empty(t, overview.Plans)
}
