package events

import (
	"time"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventLeadCaptured   EventType = "lead_captured"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	IPAddress string `json:"ip_address"`
}

// LeadCapturedPayload payload.
type LeadCapturedPayload struct {
	LeadID      string `json:"lead_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Category    string `json:"category"`
}
