package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

type stubUserRepo struct {
	user *domain.User
}

func (s *stubUserRepo) Create(context.Context, *domain.User) error { return nil }
func (s *stubUserRepo) Update(context.Context, *domain.User) error { return nil }
func (s *stubUserRepo) Delete(context.Context, string) error       { return nil }
func (s *stubUserRepo) List(context.Context) ([]domain.User, error) {
	return nil, nil
}
func (s *stubUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	if s.user == nil {
		return nil, pgx.ErrNoRows
	}
	return s.user, nil
}
func (s *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, pgx.ErrNoRows
	}
	copied := *s.user
	return &copied, nil
}

func newGateApp(tokens *TokenManager, repo *stubUserRepo) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"error": fiber.Map{"code": domainErr.Code, "message": domainErr.Message},
			})
		},
	})

	gate := NewMiddleware(tokens, repo, "token")
	app.Get("/protected", gate.Handle, func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"id": user.ID})
	})
	return app
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error.Code
}

func TestMiddleware_NoToken(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	app := newGateApp(tokens, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeNoToken, errorCode(t, resp))
}

func TestMiddleware_InvalidToken(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	app := newGateApp(tokens, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeInvalidToken, errorCode(t, resp))
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return issuedAt })

	token, _, err := tokens.Issue("user-1")
	require.NoError(t, err)

	tokens.WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) })
	app := newGateApp(tokens, &stubUserRepo{user: &domain.User{ID: "user-1", IsActive: true}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeTokenExpired, errorCode(t, resp))
}

func TestMiddleware_UserNotFound(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	token, _, err := tokens.Issue("ghost")
	require.NoError(t, err)

	app := newGateApp(tokens, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeUserNotFound, errorCode(t, resp))
}

func TestMiddleware_DeactivatedUser(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	token, _, err := tokens.Issue("user-1")
	require.NoError(t, err)

	app := newGateApp(tokens, &stubUserRepo{user: &domain.User{ID: "user-1", IsActive: false}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeUserDeactivated, errorCode(t, resp))
}

func TestMiddleware_Success(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	token, _, err := tokens.Issue("user-1")
	require.NoError(t, err)

	app := newGateApp(tokens, &stubUserRepo{user: &domain.User{ID: "user-1", IsActive: true}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user-1", body.ID)
}

func TestRequireRole(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"error": fiber.Map{"code": domainErr.Code},
			})
		},
	})

	inject := func(role domain.Role) fiber.Handler {
		return func(c *fiber.Ctx) error {
			c.Locals(currentUserKey, &domain.SanitizedUser{ID: "u", Role: role})
			return c.Next()
		}
	}

	app.Get("/admin-only", inject(domain.RoleUser), RequireRole(domain.RoleAdmin, domain.RoleSuperadmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/user-ok", inject(domain.RoleUser), RequireRole(domain.RoleUser), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/anonymous", RequireRole(domain.RoleUser), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/user-ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/anonymous", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
