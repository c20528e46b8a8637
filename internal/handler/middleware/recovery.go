package middleware

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

// RecoveryMiddleware recovers from panics and returns a generic 500. The
// panic value and stack stay server-side.
func RecoveryMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC: %v\n%s", r, debug.Stack())

				if err := c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Internal server error",
				}); err != nil {
					log.Printf("Error sending panic response: %v", err)
				}
			}
		}()

		return c.Next()
	}
}
