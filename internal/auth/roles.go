package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hallkeeper/hall-service/internal/domain"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

const accessDenied = "Access denied."

// RequireRole ensures the caller's token carries one of the allowed roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewForbidden(accessDenied)
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden(accessDenied)
		}
		return c.Next()
	}
}

// RequireAccount ensures the token is bound to a stored account, which the
// reserved admin token is not.
func RequireAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.HasAccount() {
			return apperrors.NewForbidden(accessDenied)
		}
		return c.Next()
	}
}
