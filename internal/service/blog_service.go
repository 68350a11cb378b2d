package service

import (
	"context"
	"errors"
	"time"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/repository"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// BlogService coordinates blog post workflows.
type BlogService struct {
	blogs      repository.BlogRepository
	categories repository.CategoryRepository
	now        func() time.Time
}

// NewBlogService builds the service.
func NewBlogService(blogs repository.BlogRepository, categories repository.CategoryRepository) *BlogService {
	return &BlogService{blogs: blogs, categories: categories, now: time.Now}
}

// BlogInput describes create/update payloads.
type BlogInput struct {
	Title           string
	Slug            string
	Description     string
	MetaTitle       string
	MetaDescription string
	PublishedDate   *time.Time
	Status          string
	Banner          string
	Thumbnail       string
	MobileBanner    string
	MainCategoryID  string
	SubcategoryIDs  []string
	Tags            []string
}

// BlogPage is a paginated listing.
type BlogPage struct {
	Blogs []domain.Blog `json:"blogs"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int           `json:"total"`
	Pages int           `json:"pages"`
}

// List returns blogs newest first.
func (s *BlogService) List(ctx context.Context, page, limit int) (*BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	blogs, err := s.blogs.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	total, err := s.blogs.Count(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return &BlogPage{Blogs: blogs, Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

// Get resolves a blog by id or slug.
func (s *BlogService) Get(ctx context.Context, idOrSlug string) (*domain.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, idOrSlug)
	if err == nil {
		return blog, nil
	}
	// Not a known id; a non-UUID value errors at the database level too, so
	// fall through to the slug lookup either way.
	blog, err = s.blogs.GetBySlug(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Blog", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return blog, nil
}

// Create stores a new post. The slug comes from the explicit slug when given,
// otherwise from the title; duplicates are rejected.
func (s *BlogService) Create(ctx context.Context, actor *domain.SanitizedUser, input BlogInput) (*domain.Blog, error) {
	finalSlug := slug.Make(input.Slug)
	if finalSlug == "" {
		finalSlug = slug.Make(input.Title)
	}
	if finalSlug == "" {
		return nil, apperrors.NewValidationError("Title is required", nil)
	}

	if _, err := s.blogs.GetBySlug(ctx, finalSlug); err == nil {
		return nil, apperrors.NewValidationError("Slug already exists. Please choose a different slug", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	if _, err := s.categories.GetByID(ctx, input.MainCategoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("Main category not found", nil)
		}
		return nil, apperrors.MapError(err)
	}

	status := domain.BlogStatus(input.Status)
	if status == "" {
		status = domain.BlogStatusDraft
	}
	if status != domain.BlogStatusDraft && status != domain.BlogStatusPublished {
		return nil, apperrors.NewValidationError("Invalid status", nil)
	}

	publishedDate := s.now()
	if input.PublishedDate != nil {
		publishedDate = *input.PublishedDate
	}

	blog := &domain.Blog{
		Title:           input.Title,
		Slug:            finalSlug,
		Description:     input.Description,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		PublishedDate:   publishedDate,
		Status:          status,
		Banner:          input.Banner,
		Thumbnail:       input.Thumbnail,
		MobileBanner:    input.MobileBanner,
		MainCategoryID:  input.MainCategoryID,
		SubcategoryIDs:  emptyIfNil(input.SubcategoryIDs),
		Tags:            emptyIfNil(input.Tags),
		CreatedBy:       actor.ID,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("Slug already exists. Please choose a different slug", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return blog, nil
}

// Update edits a post and appends an entry to its audit trail.
func (s *BlogService) Update(ctx context.Context, actor *domain.SanitizedUser, idOrSlug string, input BlogInput) (*domain.Blog, error) {
	blog, err := s.Get(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		blog.Title = input.Title
	}
	if input.Slug != "" {
		newSlug := slug.Make(input.Slug)
		if newSlug != blog.Slug {
			if _, err := s.blogs.GetBySlug(ctx, newSlug); err == nil {
				return nil, apperrors.NewValidationError("Slug already exists. Please choose a different slug", nil)
			} else if !errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.MapError(err)
			}
			blog.Slug = newSlug
		}
	}
	if input.Description != "" {
		blog.Description = input.Description
	}
	if input.MetaTitle != "" {
		blog.MetaTitle = input.MetaTitle
	}
	if input.MetaDescription != "" {
		blog.MetaDescription = input.MetaDescription
	}
	if input.PublishedDate != nil {
		blog.PublishedDate = *input.PublishedDate
	}
	if input.Status != "" {
		status := domain.BlogStatus(input.Status)
		if status != domain.BlogStatusDraft && status != domain.BlogStatusPublished {
			return nil, apperrors.NewValidationError("Invalid status", nil)
		}
		blog.Status = status
	}
	if input.Banner != "" {
		blog.Banner = input.Banner
	}
	if input.Thumbnail != "" {
		blog.Thumbnail = input.Thumbnail
	}
	if input.MobileBanner != "" {
		blog.MobileBanner = input.MobileBanner
	}
	if input.MainCategoryID != "" {
		if _, err := s.categories.GetByID(ctx, input.MainCategoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("Main category not found", nil)
			}
			return nil, apperrors.MapError(err)
		}
		blog.MainCategoryID = input.MainCategoryID
	}
	if input.SubcategoryIDs != nil {
		blog.SubcategoryIDs = input.SubcategoryIDs
	}
	if input.Tags != nil {
		blog.Tags = input.Tags
	}

	blog.Updates = append(blog.Updates, domain.BlogUpdate{
		Date:   s.now(),
		UserID: actor.ID,
		Change: "Blog updated",
	})

	if err := s.blogs.Update(ctx, blog); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("Slug already exists. Please choose a different slug", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return blog, nil
}

// Delete removes a post by id or slug.
func (s *BlogService) Delete(ctx context.Context, idOrSlug string) error {
	blog, err := s.Get(ctx, idOrSlug)
	if err != nil {
		return err
	}
	if err := s.blogs.Delete(ctx, blog.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Blog", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// Stats returns publication counts.
func (s *BlogService) Stats(ctx context.Context) (*repository.BlogStats, error) {
	stats, err := s.blogs.Stats(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stats, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
