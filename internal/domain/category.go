package domain

import "time"

// CategoryType distinguishes top-level categories from subcategories.
type CategoryType string

const (
	CategoryTypeMain CategoryType = "main"
	CategoryTypeSub  CategoryType = "sub"
)

// Category groups blog posts. Subcategories reference a parent main category.
type Category struct {
	ID               string
	Name             string
	Slug             string
	Type             CategoryType
	ParentCategoryID *string
	Description      string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
