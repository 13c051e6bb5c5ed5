package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hallkeeper/hall-service/internal/api/dto"
	"github.com/hallkeeper/hall-service/internal/service"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// NoticesHandler serves the notice board.
type NoticesHandler struct {
	notices *service.NoticeService
}

// NewNoticesHandler constructs handler.
func NewNoticesHandler(notices *service.NoticeService) *NoticesHandler {
	return &NoticesHandler{notices: notices}
}

// Post POST /api/admin/notices.
func (h *NoticesHandler) Post(c *fiber.Ctx) error {
	var req dto.PostNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload.", nil)
	}
	if _, err := h.notices.Post(c.UserContext(), req.Title, req.Content); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.MessageResponse{Message: "Notice posted successfully."})
}

// List GET /api/student/notices.
func (h *NoticesHandler) List(c *fiber.Ctx) error {
	notices, err := h.notices.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.NoticeResponse, 0, len(notices))
	for i := range notices {
		items = append(items, noticeResponse(&notices[i]))
	}
	return c.JSON(items)
}
