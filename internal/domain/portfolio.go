package domain

import "time"

// MaxPortfolioImages caps the gallery per entry.
const MaxPortfolioImages = 4

// PortfolioImage references an uploaded asset by URL.
type PortfolioImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
}

// Portfolio is a showcase entry in the site gallery.
type Portfolio struct {
	ID          string
	Name        string
	URL         string
	Description string
	Images      []PortfolioImage
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
