package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
)

// LeadRepository encapsulates lead persistence.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
}

type leadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository instantiates repository.
func NewLeadRepository(pool *pgxpool.Pool) LeadRepository {
	return &leadRepository{pool: pool}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	const query = `
        INSERT INTO leads (name, phone_number, category)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		lead.Name,
		lead.PhoneNumber,
		lead.Category,
	).Scan(&lead.ID, &lead.CreatedAt)
}

func (r *leadRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	const query = `SELECT id, name, phone_number, category, created_at FROM leads WHERE id=$1`
	var lead domain.Lead
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.Name,
		&lead.PhoneNumber,
		&lead.Category,
		&lead.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	const query = `SELECT id, name, phone_number, category, created_at FROM leads ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.PhoneNumber, &lead.Category, &lead.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
