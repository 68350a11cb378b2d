package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/auth"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/config"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/events"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/repository"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// UserService coordinates account lifecycle operations: registration, login,
// privileged mutations, and self-service profile management.
type UserService struct {
	users          repository.UserRepository
	tokens         *auth.TokenManager
	dispatcher     events.Dispatcher
	bcryptCost     int
	protectedEmail string
	now            func() time.Time
}

// UserDependencies bundles requirements for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:          deps.UserRepo,
		tokens:         auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		dispatcher:     deps.Dispatcher,
		bcryptCost:     cfg.Auth.BcryptCost,
		protectedEmail: domain.NormalizeEmail(cfg.Superadmin.ProtectedEmail),
		now:            time.Now,
	}
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *UserService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Register creates a new account. Public registrations are always role user;
// on success the caller is logged in immediately.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	email = domain.NormalizeEmail(email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("User already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
		Settings:     domain.DefaultSettings(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Concurrent registration loses to the unique index; same outcome.
		if apperrors.IsUniqueViolation(err) {
			return nil, "", time.Time{}, apperrors.NewValidationError("User already exists", nil)
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	return user, token, exp, nil
}

// Login authenticates by email and password and records login statistics.
// Unknown emails and wrong passwords stay distinguishable: the former is a
// 400 "User not found", the latter a 401 "Invalid credentials".
func (s *UserService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (*domain.User, string, time.Time, error) {
	email = domain.NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewValidationError("User not found", nil)
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}

	user.RecordLogin(s.now(), ipAddress, userAgent)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventUserLoggedIn, events.UserLoggedInPayload{
		UserID:    user.ID,
		Email:     user.Email,
		IPAddress: ipAddress,
	})
	return user, token, exp, nil
}

// CreateUser is the superadmin-scope create: any role may be assigned.
func (s *UserService) CreateUser(ctx context.Context, actor *domain.SanitizedUser, name, email, password string, role domain.Role) (*domain.User, error) {
	if !auth.Allowed(actor.Role, auth.OpCreateAnyRole, role) {
		return nil, apperrors.NewForbidden("Not authorized to create users")
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("Invalid role", nil)
	}
	return s.createAccount(ctx, name, email, password, role)
}

// AdminCreateUser is the admin-scope create: the role is forced to user and
// any request for a higher role is rejected.
func (s *UserService) AdminCreateUser(ctx context.Context, actor *domain.SanitizedUser, name, email, password, requestedRole string) (*domain.User, error) {
	if !auth.Allowed(actor.Role, auth.OpCreateUser, domain.RoleUser) {
		return nil, apperrors.NewForbidden("Only admins can use this endpoint")
	}
	if requestedRole != "" && requestedRole != string(domain.RoleUser) {
		return nil, apperrors.NewForbidden("Admins can only create users, not admins or superadmins")
	}
	return s.createAccount(ctx, name, email, password, domain.RoleUser)
}

func (s *UserService) createAccount(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	email = domain.NormalizeEmail(email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("User already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		Settings:     domain.DefaultSettings(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("User already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateUser is the superadmin-scope update: name, email, and role of any
// account. A superadmin may never demote themselves.
func (s *UserService) UpdateUser(ctx context.Context, actor *domain.SanitizedUser, targetID, name, email string, role domain.Role) (*domain.User, error) {
	if !auth.Allowed(actor.Role, auth.OpUpdateAnyUser, role) {
		return nil, apperrors.NewForbidden("Access denied")
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("Invalid role", nil)
	}
	if targetID == actor.ID && role != domain.RoleSuperadmin {
		return nil, apperrors.NewForbidden("You cannot change your own role from superadmin")
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = domain.NormalizeEmail(email)
	}
	user.Role = role

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("Email already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateUserDetails is the admin-scope update: name and email only, and only
// on accounts holding role user.
func (s *UserService) UpdateUserDetails(ctx context.Context, actor *domain.SanitizedUser, targetID, name, email string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if !auth.Allowed(actor.Role, auth.OpUpdateDetails, user.Role) {
		return nil, apperrors.NewForbidden("Admins are not allowed to edit admins or superadmins")
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = domain.NormalizeEmail(email)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("Email already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// DeleteUser removes an account. The protected superadmin can never be
// deleted through any API path, and no actor may delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, actor *domain.SanitizedUser, targetID string) error {
	if !auth.Allowed(actor.Role, auth.OpDeleteUser, domain.RoleUser) {
		return apperrors.NewForbidden("Access denied")
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User", nil)
		}
		return apperrors.MapError(err)
	}

	if domain.NormalizeEmail(target.Email) == s.protectedEmail {
		return apperrors.NewForbidden("This superadmin cannot be deleted via the API")
	}
	if targetID == actor.ID {
		return apperrors.NewForbidden("You cannot delete your own account")
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// ListUsers returns every account, sanitized.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.SanitizedUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	sanitized := make([]domain.SanitizedUser, 0, len(users))
	for i := range users {
		sanitized = append(sanitized, users[i].Sanitized())
	}
	return sanitized, nil
}

// GetProfile loads the caller's own record.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.SanitizedUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, apperrors.MapError(err)
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// UpdateProfile changes the caller's own name and email, re-checking email
// uniqueness against every other account.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, email string) (*domain.SanitizedUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if email != "" {
		email = domain.NormalizeEmail(email)
		if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing.ID != userID {
			return nil, apperrors.NewValidationError("Email already exists", nil)
		} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.MapError(err)
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("Email already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// ChangePassword verifies the current password before storing a new hash.
// On a failed verification the stored hash is untouched.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User", nil)
		}
		return apperrors.MapError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthorized("Current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	user.PasswordHash = hash

	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// SettingsInput carries optional flag changes; nil leaves a flag unchanged.
type SettingsInput struct {
	DarkMode           *bool
	TwoFactorAuth      *bool
	EmailNotifications *bool
}

// UpdateSettings mutates the caller's preference flags.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, input SettingsInput) (*domain.Settings, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if input.DarkMode != nil {
		user.Settings.DarkMode = *input.DarkMode
	}
	if input.TwoFactorAuth != nil {
		user.Settings.TwoFactorAuth = *input.TwoFactorAuth
	}
	if input.EmailNotifications != nil {
		user.Settings.EmailNotifications = *input.EmailNotifications
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &user.Settings, nil
}

// LoginHistory returns the caller's bounded login audit trail, oldest first.
func (s *UserService) LoginHistory(ctx context.Context, userID string) ([]domain.LoginRecord, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if user.LoginHistory == nil {
		return []domain.LoginRecord{}, nil
	}
	return user.LoginHistory, nil
}

// EnsureSuperadmin creates the seed superadmin account when it does not exist
// yet. Used by the seed command, not by any HTTP path.
func (s *UserService) EnsureSuperadmin(ctx context.Context, name, email, password string) (*domain.User, bool, error) {
	email = domain.NormalizeEmail(email)

	if existing, err := s.users.GetByEmail(ctx, email); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, apperrors.MapError(err)
	}

	user, err := s.createAccount(ctx, name, email, password, domain.RoleSuperadmin)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: s.now(),
		Payload:   payload,
	})
}
