package handlers

import (
	"sort"

	"github.com/hallkeeper/hall-service/internal/api/dto"
	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/service"
)

func accountResponse(a *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:               a.ID,
		StudentID:        a.StudentID,
		Email:            a.Email,
		DOB:              a.DOB,
		Role:             string(a.Role),
		SeatStatus:       string(a.SeatStatus),
		SeatNumber:       a.SeatNumber,
		RequestTimestamp: a.RequestTimestamp,
		PaymentTimestamp: a.PaymentTimestamp,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func mealResponse(m *domain.MealRecord) dto.MealResponse {
	return dto.MealResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		StudentID: m.StudentID,
		Date:      m.Date,
		Breakfast: m.Breakfast,
		Lunch:     m.Lunch,
		Dinner:    m.Dinner,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func countsResponse(c domain.MealCounts) dto.MealCountsResponse {
	return dto.MealCountsResponse{Breakfast: c.Breakfast, Lunch: c.Lunch, Dinner: c.Dinner}
}

func historyResponse(history map[string]service.MonthlySummary) map[string]dto.MonthlyHistoryResponse {
	out := make(map[string]dto.MonthlyHistoryResponse, len(history))
	for month, summary := range history {
		out[month] = dto.MonthlyHistoryResponse{
			Breakfast: summary.Breakfast,
			Lunch:     summary.Lunch,
			Dinner:    summary.Dinner,
			TotalCost: summary.TotalCost,
		}
	}
	return out
}

func overviewResponse(o *service.CateringOverview) dto.MealsOverviewResponse {
	plans := make([]dto.PlanDetailResponse, 0, len(o.Plans))
	for _, p := range o.Plans {
		plans = append(plans, dto.PlanDetailResponse{
			UserID:        p.Meal.UserID,
			StudentID:     p.Meal.StudentID,
			Date:          p.Meal.Date,
			Breakfast:     p.Meal.Breakfast,
			Lunch:         p.Meal.Lunch,
			Dinner:        p.Meal.Dinner,
			MonthlyTotals: countsResponse(p.MonthlyTotals),
		})
	}
	sort.SliceStable(plans, func(i, j int) bool { return plans[i].StudentID < plans[j].StudentID })
	return dto.MealsOverviewResponse{Date: o.Date, Summary: countsResponse(o.Summary), DetailedPlans: plans}
}

func complaintResponse(c *domain.Complaint) dto.ComplaintResponse {
	return dto.ComplaintResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		StudentID: c.StudentID,
		Complaint: c.Body,
		Status:    string(c.Status),
		Timestamp: c.CreatedAt,
	}
}

func noticeResponse(n *domain.Notice) dto.NoticeResponse {
	return dto.NoticeResponse{ID: n.ID, Title: n.Title, Content: n.Content, Timestamp: n.CreatedAt}
}
