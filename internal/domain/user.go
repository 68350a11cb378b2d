package domain

import (
	"strings"
	"time"
)

// loginHistoryCap bounds the login audit trail; the oldest entry is evicted
// once the cap is reached.
const loginHistoryCap = 20

// LoginRecord captures a single successful login event.
type LoginRecord struct {
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
}

// Settings holds per-user preference flags, each independently mutable by the
// owning user.
type Settings struct {
	DarkMode           bool `json:"dark_mode"`
	TwoFactorAuth      bool `json:"two_factor_auth"`
	EmailNotifications bool `json:"email_notifications"`
}

// DefaultSettings returns the flags applied to new accounts.
func DefaultSettings() Settings {
	return Settings{EmailNotifications: true}
}

// User is the credential-store entity behind every account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLogin    *time.Time
	LoginCount   int
	LoginHistory []LoginRecord
	Settings     Settings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases and trims an email the way the store indexes it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RecordLogin updates login statistics for a successful authentication and
// appends to the bounded history.
func (u *User) RecordLogin(now time.Time, ipAddress, userAgent string) {
	if ipAddress == "" {
		ipAddress = "Unknown"
	}
	if userAgent == "" {
		userAgent = "Unknown"
	}

	u.LastLogin = &now
	u.LoginCount++
	u.LoginHistory = append(u.LoginHistory, LoginRecord{
		Timestamp: now,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	})
	if len(u.LoginHistory) > loginHistoryCap {
		u.LoginHistory = u.LoginHistory[len(u.LoginHistory)-loginHistoryCap:]
	}
}

// SanitizedUser is the transport-safe projection of a User. It never carries
// the password hash.
type SanitizedUser struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Role         Role          `json:"role"`
	IsActive     bool          `json:"is_active"`
	LastLogin    *time.Time    `json:"last_login"`
	LoginCount   int           `json:"login_count"`
	LoginHistory []LoginRecord `json:"login_history"`
	Settings     Settings      `json:"settings"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Sanitized strips the secret for downstream use.
func (u *User) Sanitized() SanitizedUser {
	history := u.LoginHistory
	if history == nil {
		history = []LoginRecord{}
	}
	return SanitizedUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		IsActive:     u.IsActive,
		LastLogin:    u.LastLogin,
		LoginCount:   u.LoginCount,
		LoginHistory: history,
		Settings:     u.Settings,
		CreatedAt:    u.CreatedAt,
	}
}
