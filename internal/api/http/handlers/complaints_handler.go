package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hallkeeper/hall-service/internal/api/dto"
	"github.com/hallkeeper/hall-service/internal/service"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// ComplaintsHandler serves the complaint register.
type ComplaintsHandler struct {
	complaints *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaints *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{complaints: complaints}
}

// Submit POST /api/student/complaints.
func (h *ComplaintsHandler) Submit(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.SubmitComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload.", nil)
	}
	if _, err := h.complaints.Submit(c.UserContext(), userID, req.ComplaintText); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.MessageResponse{Message: "Complaint submitted successfully!"})
}

// List GET /api/admin/complaints.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	complaints, err := h.complaints.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, complaintResponse(&complaints[i]))
	}
	return c.JSON(items)
}

// Resolve POST /api/admin/resolve-complaint.
func (h *ComplaintsHandler) Resolve(c *fiber.Ctx) error {
	var req dto.ResolveComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload.", nil)
	}
	complaint, err := h.complaints.Resolve(c.UserContext(), req.ComplaintID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ComplaintMessageResponse{
		Message:   "Complaint marked as resolved.",
		Complaint: complaintResponse(complaint),
	})
}
