package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hallkeeper/hall-service/internal/api/dto"
	"github.com/hallkeeper/hall-service/internal/auth"
	"github.com/hallkeeper/hall-service/internal/service"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// StudentHandler serves the caller's own account and seat lifecycle.
type StudentHandler struct {
	accounts *service.AccountService
}

// NewStudentHandler constructs handler.
func NewStudentHandler(accounts *service.AccountService) *StudentHandler {
	return &StudentHandler{accounts: accounts}
}

// Dashboard GET /api/student/dashboard.
func (h *StudentHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	account, err := h.accounts.Dashboard(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(accountResponse(account))
}

// RequestSeat POST /api/student/request-seat.
func (h *StudentHandler) RequestSeat(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	if _, err := h.accounts.RequestSeat(c.UserContext(), userID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Seat request submitted successfully!"})
}

// ConfirmPayment POST /api/student/confirm-payment.
func (h *StudentHandler) ConfirmPayment(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	account, err := h.accounts.ConfirmPayment(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.AccountMessageResponse{
		Message: "Payment successful! Your seat is confirmed.",
		User:    accountResponse(account),
	})
}

// callerID returns the account id bound to the caller's token.
func callerID(c *fiber.Ctx) (string, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || !principal.HasAccount() {
		return "", apperrors.NewForbidden("Access denied.")
	}
	return principal.UserID, nil
}
