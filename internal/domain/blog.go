package domain

import "time"

// BlogStatus is the publication state of a post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// BlogUpdate is one entry in a post's edit audit trail.
type BlogUpdate struct {
	Date   time.Time `json:"date"`
	UserID string    `json:"user_id"`
	Change string    `json:"change"`
}

// Blog is a post on the marketing site. Description may contain HTML.
type Blog struct {
	ID              string
	Title           string
	Slug            string
	Description     string
	MetaTitle       string
	MetaDescription string
	PublishedDate   time.Time
	Status          BlogStatus
	Banner          string
	Thumbnail       string
	MobileBanner    string
	MainCategoryID  string
	SubcategoryIDs  []string
	Tags            []string
	Updates         []BlogUpdate
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
