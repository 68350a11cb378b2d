package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/api/dto"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/config"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/service"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// AuthHandler exposes the public register/login/logout endpoints and owns the
// session cookie contract.
type AuthHandler struct {
	users   *service.UserService
	authCfg config.AuthConfig
	appCfg  config.AppConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(users *service.UserService, authCfg config.AuthConfig, appCfg config.AppConfig) *AuthHandler {
	return &AuthHandler{users: users, authCfg: authCfg, appCfg: appCfg}
}

// Register handles POST /auth/register. New accounts are always role user and
// are logged in immediately.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	user, token, _, err := h.users.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	user, token, _, err := h.users.Login(c.Context(), req.Email, req.Password, clientIP(c), clientUserAgent(c))
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":          user.ID,
			"email":       user.Email,
			"role":        user.Role,
			"name":        user.Name,
			"last_login":  user.LastLogin,
			"login_count": user.LoginCount,
			"settings":    user.Settings,
		},
	})
}

// Logout handles POST /auth/logout. Clearing the cookie is all there is:
// the token itself stays valid until natural expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.authCfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.authCfg.TokenTTL() / time.Second),
		HTTPOnly: true,
		Secure:   h.appCfg.IsProduction(),
		SameSite: h.cookieSameSite(),
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.authCfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.appCfg.IsProduction(),
		SameSite: h.cookieSameSite(),
	})
}

func (h *AuthHandler) cookieSameSite() string {
	if h.appCfg.IsProduction() {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteLaxMode
}

// clientIP prefers the client-declared forwarding header, then the connection
// address.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "Unknown"
}

func clientUserAgent(c *fiber.Ctx) string {
	if ua := c.Get(fiber.HeaderUserAgent); ua != "" {
		return ua
	}
	return "Unknown"
}
