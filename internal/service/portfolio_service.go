package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/repository"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// PortfolioService coordinates portfolio gallery workflows.
type PortfolioService struct {
	portfolios repository.PortfolioRepository
}

// NewPortfolioService builds the service.
func NewPortfolioService(portfolios repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{portfolios: portfolios}
}

// PortfolioInput describes create/update payloads.
type PortfolioInput struct {
	Name        string
	URL         string
	Description string
	Images      []domain.PortfolioImage
}

// List returns all entries, newest first.
func (s *PortfolioService) List(ctx context.Context) ([]domain.Portfolio, error) {
	entries, err := s.portfolios.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}

// Get returns a single entry.
func (s *PortfolioService) Get(ctx context.Context, id string) (*domain.Portfolio, error) {
	entry, err := s.portfolios.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Portfolio", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return entry, nil
}

// Create stores a new entry; at most four images.
func (s *PortfolioService) Create(ctx context.Context, actor *domain.SanitizedUser, input PortfolioInput) (*domain.Portfolio, error) {
	if len(input.Images) > domain.MaxPortfolioImages {
		return nil, apperrors.NewValidationError("A portfolio entry may hold at most 4 images", nil)
	}

	entry := &domain.Portfolio{
		Name:        input.Name,
		URL:         input.URL,
		Description: input.Description,
		Images:      input.Images,
		CreatedBy:   actor.ID,
	}
	if err := s.portfolios.Create(ctx, entry); err != nil {
		return nil, apperrors.MapError(err)
	}
	return entry, nil
}

// Update edits an entry; the image cap still applies.
func (s *PortfolioService) Update(ctx context.Context, id string, input PortfolioInput) (*domain.Portfolio, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		entry.Name = input.Name
	}
	if input.URL != "" {
		entry.URL = input.URL
	}
	if input.Description != "" {
		entry.Description = input.Description
	}
	if input.Images != nil {
		if len(input.Images) > domain.MaxPortfolioImages {
			return nil, apperrors.NewValidationError("A portfolio entry may hold at most 4 images", nil)
		}
		entry.Images = input.Images
	}

	if err := s.portfolios.Update(ctx, entry); err != nil {
		return nil, apperrors.MapError(err)
	}
	return entry, nil
}

// Delete removes an entry.
func (s *PortfolioService) Delete(ctx context.Context, id string) error {
	if err := s.portfolios.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Portfolio", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}
