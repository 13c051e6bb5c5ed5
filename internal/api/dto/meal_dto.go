package dto

import "time"

// SaveMealRequest is a full day's plan.
type SaveMealRequest struct {
	StudentID string `json:"studentId"`
	Date      string `json:"date"`
	Breakfast bool   `json:"breakfast"`
	Lunch     bool   `json:"lunch"`
	Dinner    bool   `json:"dinner"`
}

// MealResponse is a stored meal record.
type MealResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StudentID string    `json:"studentId"`
	Date      string    `json:"date"`
	Breakfast bool      `json:"breakfast"`
	Lunch     bool      `json:"lunch"`
	Dinner    bool      `json:"dinner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveMealResponse acknowledges an upsert.
type SaveMealResponse struct {
	Message string       `json:"message"`
	Meal    MealResponse `json:"meal"`
}

// MealCountsResponse tallies selections.
type MealCountsResponse struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
}

// MonthlyHistoryResponse is one month of the meal history.
type MonthlyHistoryResponse struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
	TotalCost int `json:"totalCost"`
}

// PlanDetailResponse pairs a plan for the overview day with month totals.
type PlanDetailResponse struct {
	UserID        string             `json:"userId"`
	StudentID     string             `json:"studentId"`
	Date          string             `json:"date"`
	Breakfast     bool               `json:"breakfast"`
	Lunch         bool               `json:"lunch"`
	Dinner        bool               `json:"dinner"`
	MonthlyTotals MealCountsResponse `json:"monthlyTotals"`
}

// MealsOverviewResponse is the next-day catering view.
type MealsOverviewResponse struct {
	Date          string               `json:"date"`
	Summary       MealCountsResponse   `json:"summary"`
	DetailedPlans []PlanDetailResponse `json:"detailedPlans"`
}
