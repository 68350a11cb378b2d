package domain

import "time"

// Lead is a captured enquiry from the public site.
type Lead struct {
	ID          string
	Name        string
	PhoneNumber string
	Category    string
	CreatedAt   time.Time
}
