package domain

import "time"

// SeoMetadata holds per-page SEO fields keyed by a unique page identifier
// such as "home" or "blog-list".
type SeoMetadata struct {
	ID               string
	PageIdentifier   string
	PageName         string
	MetaTitle        string
	MetaDescription  string
	OGTitle          string
	OGDescription    string
	SocialMediaImage string
	Keywords         []string
	CanonicalURL     string
	IsActive         bool
	CreatedBy        string
	LastUpdatedBy    *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
