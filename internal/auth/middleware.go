package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hallkeeper/hall-service/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller as decoded from the token.
type Principal struct {
	UserID string
	Role   domain.Role
}

// HasAccount reports whether the token is bound to a stored account.
func (p *Principal) HasAccount() bool {
	return p != nil && p.UserID != ""
}

// AuthMiddleware validates bearer tokens.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Failures carry no body:
// 401 when no bearer token is presented, 403 when it does not verify.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		c.Status(fiber.StatusUnauthorized)
		return nil
	}

	claims, err := m.tokens.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		c.Status(fiber.StatusForbidden)
		return nil
	}

	c.Locals(principalKey, &Principal{UserID: claims.UserID, Role: claims.Role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
