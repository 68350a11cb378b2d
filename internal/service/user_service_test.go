package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/config"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// memUserRepo is an in-memory repository used by the service tests.
type memUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return pgUniqueViolation()
		}
	}
	m.seq++
	user.ID = fmt.Sprintf("user-%d", m.seq)
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.users, id)
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func pgUniqueViolation() error {
	return &pgconn.PgError{
		Code:    "23505",
		Message: "duplicate key value violates unique constraint",
	}
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 24,
			BcryptCost:    bcrypt.MinCost,
			CookieName:    "token",
		},
		Superadmin: config.SuperadminConfig{
			ProtectedEmail: "root@example.com",
		},
	}
}

func newTestService() (*UserService, *memUserRepo) {
	repo := newMemUserRepo()
	svc := NewUserService(testConfig(), UserDependencies{UserRepo: repo})
	return svc, repo
}

func seedUser(t *testing.T, svc *UserService, name, email, password string, role domain.Role) *domain.User {
	t.Helper()
	user, err := svc.createAccount(context.Background(), name, email, password, role)
	require.NoError(t, err)
	return user
}

func actorFor(u *domain.User) *domain.SanitizedUser {
	sanitized := u.Sanitized()
	return &sanitized
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, token, _, err := svc.Register(ctx, "Alice", "Alice@Example.Com", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	logged, token, _, err := svc.Login(ctx, "alice@example.com", "password1", "10.0.0.1", "agent")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, logged.LoginCount)
	require.Len(t, logged.LoginHistory, 1)
	assert.Equal(t, "10.0.0.1", logged.LoginHistory[0].IPAddress)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password1")
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, "Other", "alice@example.com", "password2")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "User already exists", domainErr.Message)
}

func TestLogin_FailureModes(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	seedUser(t, svc, "Alice", "alice@example.com", "password1", domain.RoleUser)

	_, _, _, err := svc.Login(ctx, "nobody@example.com", "password1", "", "")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "User not found", domainErr.Message)

	_, _, _, err = svc.Login(ctx, "alice@example.com", "wrong", "", "")
	domainErr = apperrors.ToDomainError(err)
	assert.Equal(t, 401, domainErr.HTTPStatus)
	assert.Equal(t, "Invalid credentials", domainErr.Message)
}

func TestAdminCreateUser_RoleRestriction(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	admin := seedUser(t, svc, "Admin", "admin@example.com", "password1", domain.RoleAdmin)

	created, err := svc.AdminCreateUser(ctx, actorFor(admin), "New", "new@example.com", "password1", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, created.Role)

	_, err = svc.AdminCreateUser(ctx, actorFor(admin), "Evil", "evil@example.com", "password1", "admin")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 403, domainErr.HTTPStatus)
}

func TestUpdateUser_SelfDemotionBlocked(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	root := seedUser(t, svc, "Root", "root2@example.com", "password1", domain.RoleSuperadmin)

	_, err := svc.UpdateUser(ctx, actorFor(root), root.ID, "", "", domain.RoleAdmin)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 403, domainErr.HTTPStatus)
	assert.Equal(t, "You cannot change your own role from superadmin", domainErr.Message)

	// Keeping the same role is fine.
	_, err = svc.UpdateUser(ctx, actorFor(root), root.ID, "Renamed", "", domain.RoleSuperadmin)
	assert.NoError(t, err)
}

func TestUpdateUserDetails_AdminScope(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	admin := seedUser(t, svc, "Admin", "admin@example.com", "password1", domain.RoleAdmin)
	plain := seedUser(t, svc, "Plain", "plain@example.com", "password1", domain.RoleUser)
	other := seedUser(t, svc, "Other", "other@example.com", "password1", domain.RoleAdmin)

	updated, err := svc.UpdateUserDetails(ctx, actorFor(admin), plain.ID, "Renamed", "")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, domain.RoleUser, updated.Role)

	_, err = svc.UpdateUserDetails(ctx, actorFor(admin), other.ID, "Nope", "")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 403, domainErr.HTTPStatus)
	assert.Equal(t, "Admins are not allowed to edit admins or superadmins", domainErr.Message)
}

func TestDeleteUser_Invariants(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	root := seedUser(t, svc, "Root", "root2@example.com", "password1", domain.RoleSuperadmin)
	protected := seedUser(t, svc, "Protected", "root@example.com", "password1", domain.RoleSuperadmin)
	victim := seedUser(t, svc, "Victim", "victim@example.com", "password1", domain.RoleUser)

	// The protected account survives every delete attempt.
	err := svc.DeleteUser(ctx, actorFor(root), protected.ID)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 403, domainErr.HTTPStatus)
	assert.Equal(t, "This superadmin cannot be deleted via the API", domainErr.Message)

	// No self-delete.
	err = svc.DeleteUser(ctx, actorFor(root), root.ID)
	domainErr = apperrors.ToDomainError(err)
	assert.Equal(t, 403, domainErr.HTTPStatus)
	assert.Equal(t, "You cannot delete your own account", domainErr.Message)

	// Normal delete works.
	require.NoError(t, svc.DeleteUser(ctx, actorFor(root), victim.ID))
	_, err = repo.GetByID(ctx, victim.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestChangePassword_WrongCurrentLeavesHashUntouched(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	user := seedUser(t, svc, "Alice", "alice@example.com", "password1", domain.RoleUser)

	before, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong-current", "newpassword")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 401, domainErr.HTTPStatus)
	assert.Equal(t, "Current password is incorrect", domainErr.Message)

	after, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)

	// And the happy path actually rotates it.
	require.NoError(t, svc.ChangePassword(ctx, user.ID, "password1", "newpassword"))
	rotated, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, rotated.PasswordHash)

	_, _, _, err = svc.Login(ctx, "alice@example.com", "newpassword", "", "")
	assert.NoError(t, err)
}

func TestUpdateSettings_PartialFlags(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	user := seedUser(t, svc, "Alice", "alice@example.com", "password1", domain.RoleUser)

	dark := true
	settings, err := svc.UpdateSettings(ctx, user.ID, SettingsInput{DarkMode: &dark})
	require.NoError(t, err)

	assert.True(t, settings.DarkMode)
	assert.False(t, settings.TwoFactorAuth)
	assert.True(t, settings.EmailNotifications, "untouched flag keeps its default")
}

func TestListUsers_Sanitized(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	seedUser(t, svc, "Alice", "alice@example.com", "password1", domain.RoleUser)
	seedUser(t, svc, "Bob", "bob@example.com", "password1", domain.RoleAdmin)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestEnsureSuperadmin_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, created, err := svc.EnsureSuperadmin(ctx, "Root", "root@example.com", "password1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.RoleSuperadmin, first.Role)

	second, created, err := svc.EnsureSuperadmin(ctx, "Root", "root@example.com", "password1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}
