// Package middleware contains HTTP middleware for request processing.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"leadpilot/lead-intent-api/internal/services"
)

const accountIDKey = "account_id"

// AuthMiddleware validates bearer tokens on protected endpoints.
type AuthMiddleware struct {
	tokenService services.TokenService
}

func NewAuthMiddleware(tokenService services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the Authorization header and stores the caller's
// account id in the request context.
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format. Expected 'Bearer <token>'",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Access token is required",
			})
		}

		accountID, err := m.tokenService.ValidateToken(token)
		if err != nil {
			message := "Invalid access token"
			if errors.Is(err, services.ErrTokenExpired) {
				message = "Access token has expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": message,
			})
		}

		c.Locals(accountIDKey, accountID)

		return c.Next()
	}
}

// AccountIDFromContext extracts the authenticated caller's account id.
func AccountIDFromContext(c *fiber.Ctx) (uuid.UUID, bool) {
	accountID, ok := c.Locals(accountIDKey).(uuid.UUID)
	return accountID, ok
}
