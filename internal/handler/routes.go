package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	healthHandler *HealthHandler,
	authMiddleware fiber.Handler,
	requireAdmin fiber.Handler,
) {
	// Health check (public)
	app.Get("/health", healthHandler.Health)

	// API v1
	api := app.Group("/api/v1")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.Post("/register", userHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh-token", authHandler.RefreshToken)

	// User routes (protected)
	users := api.Group("/users", authMiddleware)
	users.Get("/logged-in-user", userHandler.GetLoggedInUser)
	users.Get("/profile", userHandler.GetProfile)
	users.Put("/profile", userHandler.UpdateProfile)
	users.Post("/change-password", userHandler.ChangePassword)

	// Admin routes (require admin role)
	users.Get("/", requireAdmin, userHandler.ListUsers)
	users.Get("/:id", requireAdmin, userHandler.GetUser)
	users.Put("/:id", requireAdmin, userHandler.UpdateUser)
	users.Delete("/:id", requireAdmin, userHandler.DeleteUser)
}
