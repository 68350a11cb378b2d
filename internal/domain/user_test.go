package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLogin_BoundedHistory(t *testing.T) {
	u := &User{}
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		u.RecordLogin(base.Add(time.Duration(i)*time.Minute), "10.0.0.1", "test-agent")
	}

	require.Len(t, u.LoginHistory, 20)
	assert.Equal(t, 25, u.LoginCount)

	// The 20 most recent records remain, oldest first.
	assert.Equal(t, base.Add(5*time.Minute), u.LoginHistory[0].Timestamp)
	assert.Equal(t, base.Add(24*time.Minute), u.LoginHistory[19].Timestamp)
	require.NotNil(t, u.LastLogin)
	assert.Equal(t, base.Add(24*time.Minute), *u.LastLogin)
}

func TestRecordLogin_UnknownFallbacks(t *testing.T) {
	u := &User{}
	u.RecordLogin(time.Now(), "", "")

	require.Len(t, u.LoginHistory, 1)
	assert.Equal(t, "Unknown", u.LoginHistory[0].IPAddress)
	assert.Equal(t, "Unknown", u.LoginHistory[0].UserAgent)
}

func TestSanitized_NeverCarriesPasswordHash(t *testing.T) {
	u := &User{
		ID:           "id-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret-material",
		Role:         RoleAdmin,
		IsActive:     true,
	}

	raw, err := json.Marshal(u.Sanitized())
	require.NoError(t, err)

	assert.False(t, strings.Contains(string(raw), "secret-material"))
	assert.False(t, strings.Contains(string(raw), "password"))
}

func TestSanitized_EmptyHistoryMarshalsAsArray(t *testing.T) {
	u := &User{ID: "id-1"}
	raw, err := json.Marshal(u.Sanitized())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"login_history":[]`)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com "))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.False(t, s.DarkMode)
	assert.False(t, s.TwoFactorAuth)
	assert.True(t, s.EmailNotifications)
}
