package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/domain"
)

// RequireAdmin allows only admins past. Must run after AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return requireRole(domain.RoleAdmin)
}

// RequireVendor allows vendors and admins.
func RequireVendor() fiber.Handler {
	return requireRole(domain.RoleVendor, domain.RoleAdmin)
}

func requireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := RoleFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}
