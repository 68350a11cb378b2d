package service

import (
	"context"
	"errors"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/repository"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// CategoryService coordinates category workflows, including the
// referential-integrity checks guarding deletion.
type CategoryService struct {
	categories repository.CategoryRepository
	blogs      repository.BlogRepository
}

// NewCategoryService builds the service.
func NewCategoryService(categories repository.CategoryRepository, blogs repository.BlogRepository) *CategoryService {
	return &CategoryService{categories: categories, blogs: blogs}
}

// CategoryInput describes create/update payloads.
type CategoryInput struct {
	Name             string
	Type             string
	ParentCategoryID *string
	Description      string
	IsActive         *bool
}

// ListActive returns all active categories, mains before subs.
func (s *CategoryService) ListActive(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return categories, nil
}

// ListMains returns active main categories.
func (s *CategoryService) ListMains(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListMains(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return categories, nil
}

// ListSubcategories returns active subcategories of a parent.
func (s *CategoryService) ListSubcategories(ctx context.Context, parentID string) ([]domain.Category, error) {
	categories, err := s.categories.ListSubsByParent(ctx, parentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return categories, nil
}

// Get returns a single category.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Category", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// Create stores a new category. Names are unique; subcategories require a
// parent.
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	categoryType := domain.CategoryType(input.Type)
	if categoryType != domain.CategoryTypeMain && categoryType != domain.CategoryTypeSub {
		return nil, apperrors.NewValidationError("Type must be main or sub", nil)
	}
	if categoryType == domain.CategoryTypeSub {
		if input.ParentCategoryID == nil || *input.ParentCategoryID == "" {
			return nil, apperrors.NewValidationError("Subcategories require a parent category", nil)
		}
		if _, err := s.categories.GetByID(ctx, *input.ParentCategoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("Parent category not found", nil)
			}
			return nil, apperrors.MapError(err)
		}
	}

	if _, err := s.categories.GetByName(ctx, input.Name); err == nil {
		return nil, apperrors.NewValidationError("Category with this name already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	var parent *string
	if categoryType == domain.CategoryTypeSub {
		parent = input.ParentCategoryID
	}

	category := &domain.Category{
		Name:             input.Name,
		Slug:             slug.Make(input.Name),
		Type:             categoryType,
		ParentCategoryID: parent,
		Description:      input.Description,
		IsActive:         true,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("Category with this name already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// Update edits name, description, or active flag.
func (s *CategoryService) Update(ctx context.Context, id string, input CategoryInput) (*domain.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != category.Name {
		if existing, err := s.categories.GetByName(ctx, input.Name); err == nil && existing.ID != id {
			return nil, apperrors.NewValidationError("Category with this name already exists", nil)
		} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.MapError(err)
		}
		category.Name = input.Name
		category.Slug = slug.Make(input.Name)
	}
	if input.Description != "" {
		category.Description = input.Description
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categories.Update(ctx, category); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("Category with this name already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// Delete removes a category unless blogs still reference it or subcategories
// hang off it.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	blogCount, err := s.blogs.CountByCategory(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if blogCount > 0 {
		return apperrors.NewValidationError("Cannot delete category as it is being used by blogs",
			map[string]any{"blogs_count": blogCount})
	}

	subCount, err := s.categories.CountSubsByParent(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if subCount > 0 {
		return apperrors.NewValidationError("Cannot delete category as it has subcategories",
			map[string]any{"subcategories_count": subCount})
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Category", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// CategoryBlogCount pairs a category with its blog usage.
type CategoryBlogCount struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// BlogCounts reports per-category blog usage split by type.
func (s *CategoryService) BlogCounts(ctx context.Context) (main, sub []CategoryBlogCount, total int, err error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, nil, 0, apperrors.MapError(err)
	}

	main = make([]CategoryBlogCount, 0)
	sub = make([]CategoryBlogCount, 0)
	for i := range categories {
		count, err := s.blogs.CountByCategory(ctx, categories[i].ID)
		if err != nil {
			return nil, nil, 0, apperrors.MapError(err)
		}
		entry := CategoryBlogCount{ID: categories[i].ID, Count: count}
		switch categories[i].Type {
		case domain.CategoryTypeMain:
			main = append(main, entry)
		case domain.CategoryTypeSub:
			sub = append(sub, entry)
		}
		total += count
	}
	return main, sub, total, nil
}

// BlogsByCategory lists blogs referencing the category as main or sub.
func (s *CategoryService) BlogsByCategory(ctx context.Context, categoryID string) ([]domain.Blog, error) {
	blogs, err := s.blogs.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return blogs, nil
}
