package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// CreateUserRequest payload for privileged account creation.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
	)
}

// UpdateUserRequest payload for the superadmin update path.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Role, validation.Required),
	)
}

// UpdateUserDetailsRequest payload for the admin update path: name and email
// only.
type UpdateUserDetailsRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r UpdateUserDetailsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
	)
}

// UpdateProfileRequest payload for self-service profile changes.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
	)
}

// ChangePasswordRequest payload for self-service password changes.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(6, 100)),
	)
}

// UpdateSettingsRequest payload; absent flags stay unchanged.
type UpdateSettingsRequest struct {
	DarkMode           *bool `json:"dark_mode"`
	TwoFactorAuth      *bool `json:"two_factor_auth"`
	EmailNotifications *bool `json:"email_notifications"`
}
