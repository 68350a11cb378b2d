package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/events"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

type memLeadRepo struct {
	seq   int
	leads map[string]*domain.Lead
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{leads: map[string]*domain.Lead{}}
}

func (m *memLeadRepo) Create(_ context.Context, lead *domain.Lead) error {
	m.seq++
	lead.ID = fmt.Sprintf("lead-%d", m.seq)
	copied := *lead
	m.leads[lead.ID] = &copied
	return nil
}

func (m *memLeadRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.leads[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.leads, id)
	return nil
}

func (m *memLeadRepo) GetByID(_ context.Context, id string) (*domain.Lead, error) {
	l, ok := m.leads[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *l
	return &copied, nil
}

func (m *memLeadRepo) List(_ context.Context) ([]domain.Lead, error) {
	out := make([]domain.Lead, 0, len(m.leads))
	for _, l := range m.leads {
		out = append(out, *l)
	}
	return out, nil
}

func TestLeadCreate_EmitsCapturedEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var captured []events.Event
	dispatcher.Subscribe(events.EventLeadCaptured, func(_ context.Context, e events.Event) error {
		captured = append(captured, e)
		return nil
	})

	svc := NewLeadService(newMemLeadRepo(), dispatcher)

	lead, err := svc.Create(context.Background(), "Prospect", "+15551234567", "web-design")
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)

	require.Len(t, captured, 1)
	payload, ok := captured[0].Payload.(events.LeadCapturedPayload)
	require.True(t, ok)
	assert.Equal(t, lead.ID, payload.LeadID)
	assert.Equal(t, "web-design", payload.Category)
}

func TestLeadLifecycle(t *testing.T) {
	svc := NewLeadService(newMemLeadRepo(), nil)
	ctx := context.Background()

	lead, err := svc.Create(ctx, "Prospect", "+15551234567", "seo")
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prospect", fetched.Name)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, lead.ID))

	_, err = svc.Get(ctx, lead.ID)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}
