package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/domain"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/jwt"
)

var errNoIdentity = errors.New("no authenticated identity in request")

// AuthMiddleware validates the access token and attaches the identity claims
// to the request. The token is read from the accessToken cookie, falling back
// to an Authorization bearer header for non-browser clients. Any validation
// failure is reported uniformly.
func AuthMiddleware(tokenService *jwt.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		claims, err := tokenService.ValidateAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies("accessToken"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

// UserIDFromLocals reads the authenticated user id set by AuthMiddleware.
func UserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals("user_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, errNoIdentity
	}
	return userID, nil
}

// RoleFromLocals reads the authenticated role set by AuthMiddleware.
func RoleFromLocals(c *fiber.Ctx) (domain.Role, error) {
	role, ok := c.Locals("role").(domain.Role)
	if !ok {
		return "", errNoIdentity
	}
	return role, nil
}
