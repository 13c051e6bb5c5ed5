package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hallkeeper/hall-service/internal/api/dto"
	"github.com/hallkeeper/hall-service/internal/service"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// AdminHandler serves seat administration.
type AdminHandler struct {
	accounts *service.AccountService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(accounts *service.AccountService) *AdminHandler {
	return &AdminHandler{accounts: accounts}
}

// ListUsers GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	accounts, err := h.accounts.ListStudents(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, accountResponse(&accounts[i]))
	}
	return c.JSON(items)
}

// ApproveSeat POST /api/admin/approve-seat.
func (h *AdminHandler) ApproveSeat(c *fiber.Ctx) error {
	var req dto.ApproveSeatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload.", nil)
	}
	account, err := h.accounts.ApproveSeat(c.UserContext(), req.UserID, req.SeatNumber)
	if err != nil {
		return err
	}
	return c.JSON(dto.AccountMessageResponse{
		Message: fmt.Sprintf("Seat %s assigned successfully.", strings.TrimSpace(req.SeatNumber)),
		User:    accountResponse(account),
	})
}
