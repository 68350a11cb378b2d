package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
)

// BlogRequest payload for blog create/update. Image fields carry URLs or
// upload paths; the upload pipeline itself lives outside this service.
type BlogRequest struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	PublishedDate   *time.Time `json:"published_date"`
	Status          string     `json:"status"`
	Banner          string     `json:"banner"`
	Thumbnail       string     `json:"thumbnail"`
	MobileBanner    string     `json:"mobile_banner"`
	MainCategoryID  string     `json:"main_category_id"`
	SubcategoryIDs  []string   `json:"subcategory_ids"`
	Tags            []string   `json:"tags"`
}

// ValidateCreate enforces create-time requirements.
func (r BlogRequest) ValidateCreate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.MainCategoryID, validation.Required, is.UUIDv4),
	)
}

// CategoryRequest payload for category create/update.
type CategoryRequest struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	ParentCategoryID *string `json:"parent_category_id"`
	Description      string  `json:"description"`
	IsActive         *bool   `json:"is_active"`
}

// ValidateCreate enforces create-time requirements.
func (r CategoryRequest) ValidateCreate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Type, validation.Required, validation.In("main", "sub")),
	)
}

// PortfolioRequest payload for portfolio create/update.
type PortfolioRequest struct {
	Name        string                  `json:"name"`
	URL         string                  `json:"url"`
	Description string                  `json:"description"`
	Images      []domain.PortfolioImage `json:"images"`
}

// ValidateCreate enforces create-time requirements.
func (r PortfolioRequest) ValidateCreate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.URL, validation.Required),
	)
}

// SeoRequest payload for SEO metadata create/update.
type SeoRequest struct {
	PageIdentifier   string   `json:"page_identifier"`
	PageName         string   `json:"page_name"`
	MetaTitle        string   `json:"meta_title"`
	MetaDescription  string   `json:"meta_description"`
	OGTitle          string   `json:"og_title"`
	OGDescription    string   `json:"og_description"`
	SocialMediaImage string   `json:"social_media_image"`
	Keywords         []string `json:"keywords"`
	CanonicalURL     string   `json:"canonical_url"`
	IsActive         *bool    `json:"is_active"`
}

// ValidateCreate enforces create-time requirements.
func (r SeoRequest) ValidateCreate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PageIdentifier, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.PageName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.MetaTitle, validation.Required, validation.Length(1, 60)),
		validation.Field(&r.MetaDescription, validation.Required, validation.Length(1, 160)),
	)
}

// SeoBulkUpdateRequest payload for bulk updates.
type SeoBulkUpdateRequest struct {
	Items []SeoBulkItem `json:"items"`
}

// SeoBulkItem is one record within a bulk update.
type SeoBulkItem struct {
	ID string `json:"id"`
	SeoRequest
}

// LeadRequest payload for public lead capture.
type LeadRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Category    string `json:"category"`
}

func (r LeadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.PhoneNumber, validation.Required, validation.Length(5, 20)),
		validation.Field(&r.Category, validation.Required, validation.Length(1, 100)),
	)
}
