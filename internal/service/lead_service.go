package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/events"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/repository"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// LeadService coordinates lead capture from the public site.
type LeadService struct {
	leads      repository.LeadRepository
	dispatcher events.Dispatcher
}

// NewLeadService builds the service.
func NewLeadService(leads repository.LeadRepository, dispatcher events.Dispatcher) *LeadService {
	return &LeadService{leads: leads, dispatcher: dispatcher}
}

// Create captures a new lead and emits a notification event.
func (s *LeadService) Create(ctx context.Context, name, phoneNumber, category string) (*domain.Lead, error) {
	lead := &domain.Lead{
		Name:        name,
		PhoneNumber: phoneNumber,
		Category:    category,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventLeadCaptured,
			Timestamp: time.Now(),
			Payload: events.LeadCapturedPayload{
				LeadID:      lead.ID,
				Name:        lead.Name,
				PhoneNumber: lead.PhoneNumber,
				Category:    lead.Category,
			},
		})
	}
	return lead, nil
}

// List returns all leads, newest first.
func (s *LeadService) List(ctx context.Context) ([]domain.Lead, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return leads, nil
}

// Get returns a single lead.
func (s *LeadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Lead", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return lead, nil
}

// Delete removes a lead.
func (s *LeadService) Delete(ctx context.Context, id string) error {
	if err := s.leads.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Lead", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}
