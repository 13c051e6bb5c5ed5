package domain

import "time"

// DateLayout is the calendar day format used for meal records.
const DateLayout = "2006-01-02"

// Per-meal prices used for monthly billing.
const (
	BreakfastPrice = 20
	LunchPrice     = 40
	DinnerPrice    = 40
)

// MealRecord is one account's meal selection for a single day.
// At most one record exists per (UserID, Date).
type MealRecord struct {
	ID        string
	UserID    string
	StudentID string
	Date      string
	Breakfast bool
	Lunch     bool
	Dinner    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthKey returns the "YYYY-MM" prefix of the record's date.
func (m MealRecord) MonthKey() string {
	if len(m.Date) < 7 {
		return m.Date
	}
	return m.Date[:7]
}

// MealCounts tallies selected meals.
type MealCounts struct {
	Breakfast int
	Lunch     int
	Dinner    int
}

// Add counts the selections of a single record.
func (c *MealCounts) Add(m MealRecord) {
	if m.Breakfast {
		c.Breakfast++
	}
	if m.Lunch {
		c.Lunch++
	}
	if m.Dinner {
		c.Dinner++
	}
}

// Cost prices the tally at the fixed per-meal rates.
func (c MealCounts) Cost() int {
	return c.Breakfast*BreakfastPrice + c.Lunch*LunchPrice + c.Dinner*DinnerPrice
}
