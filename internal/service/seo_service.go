package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/persistence"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/repository"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

const (
	maxMetaTitleLen       = 60
	maxMetaDescriptionLen = 160
)

// SeoService coordinates SEO metadata workflows. Public page lookups go
// through the Redis cache; cache failures never fail the lookup.
type SeoService struct {
	records repository.SeoRepository
	cache   *persistence.Redis
}

// NewSeoService builds the service.
func NewSeoService(records repository.SeoRepository, cache *persistence.Redis) *SeoService {
	return &SeoService{records: records, cache: cache}
}

// SeoInput describes create/update payloads.
type SeoInput struct {
	PageIdentifier   string
	PageName         string
	MetaTitle        string
	MetaDescription  string
	OGTitle          string
	OGDescription    string
	SocialMediaImage string
	Keywords         []string
	CanonicalURL     string
	IsActive         *bool
}

// GetByPage resolves the metadata for a public page identifier.
func (s *SeoService) GetByPage(ctx context.Context, pageIdentifier string) (*domain.SeoMetadata, error) {
	pageIdentifier = strings.TrimSpace(pageIdentifier)

	if cached := s.cache.GetSeoPage(ctx, pageIdentifier); cached != nil {
		return cached, nil
	}

	meta, err := s.records.GetByPageIdentifier(ctx, pageIdentifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("SEO metadata", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.cache.SetSeoPage(ctx, meta)
	return meta, nil
}

// Get returns a record by id.
func (s *SeoService) Get(ctx context.Context, id string) (*domain.SeoMetadata, error) {
	meta, err := s.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("SEO metadata", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return meta, nil
}

// SeoPage is a paginated listing for the admin dashboard.
type SeoPage struct {
	Records []domain.SeoMetadata `json:"records"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
	Total   int                  `json:"total"`
}

// List returns records filtered by search term and active flag.
func (s *SeoService) List(ctx context.Context, page, limit int, search *string, active *bool) (*SeoPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	records, total, err := s.records.List(ctx, repository.SeoFilter{
		Search: search,
		Active: active,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &SeoPage{Records: records, Page: page, Limit: limit, Total: total}, nil
}

// Create stores a new record; page identifiers are unique.
func (s *SeoService) Create(ctx context.Context, actor *domain.SanitizedUser, input SeoInput) (*domain.SeoMetadata, error) {
	if err := validateSeoLengths(input.MetaTitle, input.MetaDescription); err != nil {
		return nil, err
	}

	pageIdentifier := strings.TrimSpace(input.PageIdentifier)
	if _, err := s.records.GetByPageIdentifier(ctx, pageIdentifier); err == nil {
		return nil, apperrors.NewValidationError("SEO metadata for this page already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	meta := &domain.SeoMetadata{
		PageIdentifier:   pageIdentifier,
		PageName:         strings.TrimSpace(input.PageName),
		MetaTitle:        strings.TrimSpace(input.MetaTitle),
		MetaDescription:  strings.TrimSpace(input.MetaDescription),
		OGTitle:          strings.TrimSpace(input.OGTitle),
		OGDescription:    strings.TrimSpace(input.OGDescription),
		SocialMediaImage: strings.TrimSpace(input.SocialMediaImage),
		Keywords:         emptyIfNil(input.Keywords),
		CanonicalURL:     strings.TrimSpace(input.CanonicalURL),
		IsActive:         isActive,
		CreatedBy:        actor.ID,
	}
	if err := s.records.Create(ctx, meta); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("SEO metadata for this page already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return meta, nil
}

// Update edits a record, tracks the editor, and drops the cached copy.
func (s *SeoService) Update(ctx context.Context, actor *domain.SanitizedUser, id string, input SeoInput) (*domain.SeoMetadata, error) {
	meta, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PageName != "" {
		meta.PageName = strings.TrimSpace(input.PageName)
	}
	if input.MetaTitle != "" {
		meta.MetaTitle = strings.TrimSpace(input.MetaTitle)
	}
	if input.MetaDescription != "" {
		meta.MetaDescription = strings.TrimSpace(input.MetaDescription)
	}
	if err := validateSeoLengths(meta.MetaTitle, meta.MetaDescription); err != nil {
		return nil, err
	}
	if input.OGTitle != "" {
		meta.OGTitle = strings.TrimSpace(input.OGTitle)
	}
	if input.OGDescription != "" {
		meta.OGDescription = strings.TrimSpace(input.OGDescription)
	}
	if input.SocialMediaImage != "" {
		meta.SocialMediaImage = strings.TrimSpace(input.SocialMediaImage)
	}
	if input.Keywords != nil {
		meta.Keywords = input.Keywords
	}
	if input.CanonicalURL != "" {
		meta.CanonicalURL = strings.TrimSpace(input.CanonicalURL)
	}
	if input.IsActive != nil {
		meta.IsActive = *input.IsActive
	}
	meta.LastUpdatedBy = &actor.ID

	if err := s.records.Update(ctx, meta); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.cache.InvalidateSeoPage(ctx, meta.PageIdentifier)
	return meta, nil
}

// Delete removes a record and its cached copy.
func (s *SeoService) Delete(ctx context.Context, id string) error {
	meta, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.records.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("SEO metadata", nil)
		}
		return apperrors.MapError(err)
	}
	s.cache.InvalidateSeoPage(ctx, meta.PageIdentifier)
	return nil
}

// BulkItem is one record in a bulk update request.
type BulkItem struct {
	ID    string
	Input SeoInput
}

// BulkResult reports the outcome for one bulk item.
type BulkResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BulkUpdate applies updates item by item; a failing item never aborts the
// rest.
func (s *SeoService) BulkUpdate(ctx context.Context, actor *domain.SanitizedUser, items []BulkItem) []BulkResult {
	results := make([]BulkResult, 0, len(items))
	for _, item := range items {
		if _, err := s.Update(ctx, actor, item.ID, item.Input); err != nil {
			results = append(results, BulkResult{ID: item.ID, Error: apperrors.ToDomainError(err).Message})
			continue
		}
		results = append(results, BulkResult{ID: item.ID, Success: true})
	}
	return results
}

func validateSeoLengths(metaTitle, metaDescription string) error {
	if len(strings.TrimSpace(metaTitle)) > maxMetaTitleLen {
		return apperrors.NewValidationError("Meta title must be 60 characters or fewer", nil)
	}
	if len(strings.TrimSpace(metaDescription)) > maxMetaDescriptionLen {
		return apperrors.NewValidationError("Meta description must be 160 characters or fewer", nil)
	}
	return nil
}
