package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestTokenManager_IssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	token, expiresAt, err := tm.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestTokenManager_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tm := NewTokenManager("test-secret", 24*time.Hour).WithClock(fixedClock(issuedAt))
	token, _, err := tm.Issue("user-123")
	require.NoError(t, err)

	// Just inside the window.
	tm.WithClock(fixedClock(issuedAt.Add(23*time.Hour + 59*time.Minute)))
	_, err = tm.Verify(token)
	assert.NoError(t, err)

	// Just past the window.
	tm.WithClock(fixedClock(issuedAt.Add(24*time.Hour + time.Second)))
	_, err = tm.Verify(token)
	assert.True(t, errors.Is(err, ErrTokenExpired), "expected ErrTokenExpired, got %v", err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.Is(err, ErrTokenInvalid), "expected ErrTokenInvalid, got %v", err)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tm.Verify(raw)
		assert.Error(t, err, "token %q should not verify", raw)
	}
}
