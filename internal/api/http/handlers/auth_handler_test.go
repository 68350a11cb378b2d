package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/config"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/service"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

type fakeUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func newAuthApp(env string) *fiber.App {
	cfg := config.Config{
		App: config.AppConfig{Env: env},
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 24,
			BcryptCost:    bcrypt.MinCost,
			CookieName:    "token",
		},
	}
	users := service.NewUserService(cfg, service.UserDependencies{UserRepo: newFakeUserRepo()})
	handler := NewAuthHandler(users, cfg.Auth, cfg.App)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"error": fiber.Map{"code": domainErr.Code, "message": domainErr.Message},
			})
		},
	})
	app.Post("/api/auth/register", handler.Register)
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/logout", handler.Logout)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestRegister_SetsSessionCookie(t *testing.T) {
	app := newAuthApp("development")

	resp := postJSON(t, app, "/api/auth/register", `{"name":"Alice","email":"alice@example.com","password":"password1"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 24*60*60, cookie.MaxAge)
}

func TestRegister_ProductionCookieAttributes(t *testing.T) {
	app := newAuthApp("production")

	resp := postJSON(t, app, "/api/auth/register", `{"name":"Alice","email":"alice@example.com","password":"password1"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestLogin_FailureMessages(t *testing.T) {
	app := newAuthApp("development")
	postJSON(t, app, "/api/auth/register", `{"name":"Alice","email":"alice@example.com","password":"password1"}`)

	resp := postJSON(t, app, "/api/auth/login", `{"email":"nobody@example.com","password":"password1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "User not found", body.Error.Message)

	resp = postJSON(t, app, "/api/auth/login", `{"email":"alice@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid credentials", body.Error.Message)
}

func TestLogout_ClearsCookie(t *testing.T) {
	app := newAuthApp("development")

	resp := postJSON(t, app, "/api/auth/logout", ``)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0 || !cookie.Expires.IsZero())
}
