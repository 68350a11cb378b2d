package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/api/dto"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/auth"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/service"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// UsersHandler exposes account management and self-service endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// currentUser pulls the authenticated account injected by the auth middleware.
func currentUser(c *fiber.Ctx) (*domain.SanitizedUser, error) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		return nil, apperrors.NewAuthError(apperrors.CodeAuthFailed, "Not authenticated")
	}
	return actor, nil
}

// Create handles POST /users/create. Superadmin only; any role may be set.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	role := domain.RoleUser
	if req.Role != "" {
		role, err = domain.ParseRole(req.Role)
		if err != nil {
			return apperrors.NewValidationError("Invalid role", nil)
		}
	}

	user, err := h.users.CreateUser(c.Context(), actor, req.Name, req.Email, req.Password, role)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user.Sanitized(),
	})
}

// AdminCreate handles POST /users/admin-create. Admin path: new accounts are
// limited to role user.
func (h *UsersHandler) AdminCreate(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	user, err := h.users.AdminCreateUser(c.Context(), actor, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user.Sanitized(),
	})
}

// Update handles PUT /users/update/:id. Superadmin only; may change role.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return apperrors.NewValidationError("Invalid role", nil)
	}

	user, err := h.users.UpdateUser(c.Context(), actor, c.Params("id"), req.Name, req.Email, role)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    user.Sanitized(),
	})
}

// UpdateDetails handles PUT /users/edit-user/:id. Admin path: name and email
// of user-role accounts only.
func (h *UsersHandler) UpdateDetails(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	user, err := h.users.UpdateUserDetails(c.Context(), actor, c.Params("id"), req.Name, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    user.Sanitized(),
	})
}

// Delete handles DELETE /users/delete/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.users.DeleteUser(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": users})
}

// Profile handles GET /auth/profile.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateProfile handles PUT /users/profile.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	user, err := h.users.UpdateProfile(c.Context(), actor.ID, req.Name, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// ChangePassword handles PUT /users/change-password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	if err := h.users.ChangePassword(c.Context(), actor.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// UpdateSettings handles PUT /users/settings. Omitted flags are untouched.
func (h *UsersHandler) UpdateSettings(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	settings, err := h.users.UpdateSettings(c.Context(), actor.ID, service.SettingsInput{
		DarkMode:           req.DarkMode,
		TwoFactorAuth:      req.TwoFactorAuth,
		EmailNotifications: req.EmailNotifications,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}

// LoginHistory handles GET /users/login-history.
func (h *UsersHandler) LoginHistory(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	history, err := h.users.LoginHistory(c.Context(), actor.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"login_history": history})
}
