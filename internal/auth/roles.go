package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// RequireRole ensures the authenticated actor holds one of the allowed roles.
// It consults only the actor's own role; resource-sensitive checks (such as
// admins touching only user-role targets) live inside the specific operation.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperrors.NewUnauthorized("User not authenticated")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[user.Role]; !exists {
			return apperrors.NewForbidden("Access denied")
		}
		return c.Next()
	}
}
