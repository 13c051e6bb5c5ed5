package service

import (
	"context"
	"strings"
	"time"

	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/repository"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// MealService manages daily meal plans and their monthly accounting.
type MealService struct {
	meals    repository.MealRepository
	accounts repository.AccountRepository
	monthLoc *time.Location
	now      func() time.Time
}

// MealDependencies bundles repositories for meal service.
type MealDependencies struct {
	MealRepo    repository.MealRepository
	AccountRepo repository.AccountRepository
	// MonthLocation anchors "this month" in the overview; nil means time.Local.
	MonthLocation *time.Location
}

// MealSaveInput is a full day's selection. It replaces any existing plan.
type MealSaveInput struct {
	UserID    string
	StudentID string
	Date      string
	Breakfast bool
	Lunch     bool
	Dinner    bool
}

// MonthlySummary is the billing view of one month.
type MonthlySummary struct {
	domain.MealCounts
	TotalCost int
}

// PlanDetail pairs one account's plan for the overview day with its month totals.
type PlanDetail struct {
	Meal          domain.MealRecord
	MonthlyTotals domain.MealCounts
}

// CateringOverview is what the kitchen needs to prepare for Date.
type CateringOverview struct {
	Date    string
	Summary domain.MealCounts
	Plans   []PlanDetail
}

// NewMealService constructs the service.
func NewMealService(deps MealDependencies) *MealService {
	loc := deps.MonthLocation
	if loc == nil {
		loc = time.Local
	}
	return &MealService{
		meals:    deps.MealRepo,
		accounts: deps.AccountRepo,
		monthLoc: loc,
		now:      time.Now,
	}
}

// Save upserts the caller's plan for the given day.
func (s *MealService) Save(ctx context.Context, input MealSaveInput) (*domain.MealRecord, error) {
	day, err := time.Parse(domain.DateLayout, strings.TrimSpace(input.Date))
	if err != nil {
		return nil, apperrors.NewValidationError("A valid date (YYYY-MM-DD) is required.", nil)
	}

	studentID := strings.TrimSpace(input.StudentID)
	if studentID == "" {
		account, err := s.accounts.GetByID(ctx, input.UserID)
		if err != nil {
			return nil, notFoundOr(err, msgUserNotFound)
		}
		studentID = account.StudentID
	}

	meal := &domain.MealRecord{
		UserID:    input.UserID,
		StudentID: studentID,
		Date:      day.Format(domain.DateLayout),
		Breakfast: input.Breakfast,
		Lunch:     input.Lunch,
		Dinner:    input.Dinner,
	}
	if err := s.meals.Upsert(ctx, meal); err != nil {
		// The caller's account was removed after the token was issued.
		if apperrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewNotFound(msgUserNotFound)
		}
		return nil, err
	}
	return meal, nil
}

// ListMonth returns the caller's records inside the given calendar month.
func (s *MealService) ListMonth(ctx context.Context, userID string, month, year int) ([]domain.MealRecord, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, apperrors.NewValidationError("Month and year are required.", nil)
	}
	from, to := MonthRange(year, time.Month(month))
	return s.meals.ListByUserInRange(ctx, userID, from, to)
}

// History groups all of the caller's records by month with their cost.
func (s *MealService) History(ctx context.Context, userID string) (map[string]MonthlySummary, error) {
	records, err := s.meals.ListByUserNewestFirst(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SummarizeByMonth(records), nil
}

// Overview builds tomorrow's catering plan. Tomorrow is the UTC day after now;
// monthly totals use the configured month location. The two reads are not a
// single snapshot.
func (s *MealService) Overview(ctx context.Context) (*CateringOverview, error) {
	now := s.now()
	tomorrow := TomorrowUTC(now)

	plans, err := s.meals.ListByDate(ctx, tomorrow)
	if err != nil {
		return nil, err
	}

	local := now.In(s.monthLoc)
	from, to := MonthRange(local.Year(), local.Month())
	totals, err := s.meals.CountsByUserInRange(ctx, distinctUsers(plans), from, to)
	if err != nil {
		return nil, err
	}

	return BuildOverview(tomorrow, plans, totals), nil
}

// MonthRange returns the inclusive first and last day strings of a month.
func MonthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(domain.DateLayout), last.Format(domain.DateLayout)
}

// TomorrowUTC returns the calendar day after now's UTC date.
func TomorrowUTC(now time.Time) string {
	return now.UTC().AddDate(0, 0, 1).Format(domain.DateLayout)
}

// SummarizeByMonth tallies records per "YYYY-MM" key.
func SummarizeByMonth(records []domain.MealRecord) map[string]MonthlySummary {
	counts := make(map[string]domain.MealCounts)
	for _, record := range records {
		key := record.MonthKey()
		c := counts[key]
		c.Add(record)
		counts[key] = c
	}

	result := make(map[string]MonthlySummary, len(counts))
	for key, c := range counts {
		result[key] = MonthlySummary{MealCounts: c, TotalCost: c.Cost()}
	}
	return result
}

// BuildOverview assembles the overview; accounts missing from totals get zero counts.
func BuildOverview(date string, plans []domain.MealRecord, totals map[string]domain.MealCounts) *CateringOverview {
	overview := &CateringOverview{Date: date, Plans: make([]PlanDetail, 0, len(plans))}
	for _, plan := range plans {
		overview.Summary.Add(plan)
		overview.Plans = append(overview.Plans, PlanDetail{
			Meal:          plan,
			MonthlyTotals: totals[plan.UserID],
		})
	}
	return overview
}

func distinctUsers(records []domain.MealRecord) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}
	return ids
}
