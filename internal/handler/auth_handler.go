package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/service"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/jwt"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	cookies     *CookieManager
	validator   *validator.Validator
}

func NewAuthHandler(authService *service.AuthService, cookies *CookieManager, validator *validator.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		validator:   validator,
	}
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrAccountDeactivated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrTooManyAttempts):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			log.Printf("Login error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Login failed! Please try again",
			})
		}
	}

	// Cookies are only written once every check has passed
	h.cookies.SetAuthCookies(c, resp.Tokens)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": resp.User,
	})
}

// RefreshToken mints a new access token from the refresh cookie. Only the
// access cookie is overwritten; the refresh token is not rotated.
// POST /api/v1/auth/refresh-token
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies(RefreshTokenCookie)
	if refreshToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Refresh token missing",
		})
	}

	accessToken, err := h.authService.Refresh(c.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrInvalidToken):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired refresh token",
			})
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			log.Printf("Refresh token error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Token refresh failed",
			})
		}
	}

	h.cookies.SetAccessCookie(c, accessToken)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Token refreshed",
	})
}
