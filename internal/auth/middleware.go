package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/repository"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

const currentUserKey = "auth_current_user"

// Middleware is the authentication gate: it extracts the session cookie,
// verifies the token, loads the live user record, and rejects with a stable
// machine code at each step. One success path, four rejection states.
type Middleware struct {
	tokens     *TokenManager
	users      repository.UserRepository
	cookieName string
}

// NewMiddleware constructs the gate.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository, cookieName string) *Middleware {
	return &Middleware{tokens: tokens, users: users, cookieName: cookieName}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(m.cookieName)
	if token == "" {
		return apperrors.NewAuthError(apperrors.CodeNoToken, "Not authenticated")
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenExpired):
			return apperrors.NewAuthError(apperrors.CodeTokenExpired, "Token expired")
		case errors.Is(err, ErrTokenInvalid):
			return apperrors.NewAuthError(apperrors.CodeInvalidToken, "Invalid token")
		default:
			return apperrors.NewAuthError(apperrors.CodeAuthFailed, "Authentication failed")
		}
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewAuthError(apperrors.CodeUserNotFound, "User not found")
		}
		return apperrors.MapError(err)
	}

	if !user.IsActive {
		return apperrors.NewAuthError(apperrors.CodeUserDeactivated, "User account is deactivated")
	}

	sanitized := user.Sanitized()
	c.Locals(currentUserKey, &sanitized)
	return c.Next()
}

// CurrentUser retrieves the authenticated user attached by the gate.
func CurrentUser(c *fiber.Ctx) (*domain.SanitizedUser, bool) {
	val := c.Locals(currentUserKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.SanitizedUser)
	return user, ok
}
