package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/config"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/domain"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieManager writes the token pair as http-only cookies. The session has no
// server-side record; its lifetime is exactly the cookies' max-age. The access
// cookie is SameSite=None in production so a separately hosted storefront can
// send it cross-site; the refresh cookie is always Strict.
type CookieManager struct {
	cfg *config.Config
}

func NewCookieManager(cfg *config.Config) *CookieManager {
	return &CookieManager{cfg: cfg}
}

func (m *CookieManager) SetAuthCookies(c *fiber.Ctx, tokens *domain.TokenPair) {
	m.SetAccessCookie(c, tokens.AccessToken)
	m.setCookie(c, RefreshTokenCookie, tokens.RefreshToken, m.cfg.JWT.RefreshTokenExpiry, "Strict")
}

func (m *CookieManager) SetAccessCookie(c *fiber.Ctx, token string) {
	sameSite := "Lax"
	if m.cfg.IsProduction() {
		sameSite = "None"
	}
	m.setCookie(c, AccessTokenCookie, token, m.cfg.JWT.AccessTokenExpiry, sameSite)
}

func (m *CookieManager) setCookie(c *fiber.Ctx, name, value string, maxAge time.Duration, sameSite string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HTTPOnly: true,
		Secure:   m.cfg.IsProduction(),
		SameSite: sameSite,
		Path:     "/",
	})
}
