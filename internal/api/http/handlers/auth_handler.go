package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hallkeeper/hall-service/internal/api/dto"
	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/service"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// AuthHandler exposes signup and login.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload.", nil)
	}
	if blank(req.StudentID, req.DOB, req.Email, req.Password) {
		return apperrors.NewValidationError("Student ID, date of birth, email and password are required.", nil)
	}

	_, err := h.auth.Signup(c.UserContext(), service.SignupInput{
		StudentID: req.StudentID,
		DOB:       req.DOB,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.MessageResponse{Message: "User registered successfully!"})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload.", nil)
	}
	if blank(req.EmailOrUsername, req.Password) {
		return apperrors.NewInvalidCredentials()
	}

	result, err := h.auth.Login(c.UserContext(), req.EmailOrUsername, req.Password)
	if err != nil {
		return err
	}

	message := "Student login successful!"
	if result.Role == domain.RoleAdmin {
		message = "Admin login successful!"
	}
	return c.JSON(dto.LoginResponse{
		Message:   message,
		Token:     result.Token,
		Role:      string(result.Role),
		StudentID: result.StudentID,
		ExpiresAt: result.ExpiresAt,
	})
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
