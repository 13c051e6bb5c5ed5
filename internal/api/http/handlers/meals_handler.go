package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hallkeeper/hall-service/internal/api/dto"
	"github.com/hallkeeper/hall-service/internal/service"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// MealsHandler manages meal plans and their reports.
type MealsHandler struct {
	meals *service.MealService
}

// NewMealsHandler constructs handler.
func NewMealsHandler(meals *service.MealService) *MealsHandler {
	return &MealsHandler{meals: meals}
}

// ListMonth GET /api/student/meals?month=&year=.
func (h *MealsHandler) ListMonth(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	records, err := h.meals.ListMonth(c.UserContext(), userID, c.QueryInt("month"), c.QueryInt("year"))
	if err != nil {
		return err
	}
	items := make([]dto.MealResponse, 0, len(records))
	for i := range records {
		items = append(items, mealResponse(&records[i]))
	}
	return c.JSON(items)
}

// Save POST /api/student/meals.
func (h *MealsHandler) Save(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.SaveMealRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload.", nil)
	}

	meal, err := h.meals.Save(c.UserContext(), service.MealSaveInput{
		UserID:    userID,
		StudentID: req.StudentID,
		Date:      req.Date,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.SaveMealResponse{
		Message: "Meal plan saved successfully!",
		Meal:    mealResponse(meal),
	})
}

// History GET /api/student/meal-history.
func (h *MealsHandler) History(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	history, err := h.meals.History(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(historyResponse(history))
}

// Overview GET /api/admin/meals-overview.
func (h *MealsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.meals.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(overviewResponse(overview))
}
