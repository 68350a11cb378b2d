package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
)

// PortfolioRepository encapsulates portfolio persistence.
type PortfolioRepository interface {
	Create(ctx context.Context, entry *domain.Portfolio) error
	Update(ctx context.Context, entry *domain.Portfolio) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Portfolio, error)
	List(ctx context.Context) ([]domain.Portfolio, error)
}

type portfolioRepository struct {
	pool *pgxpool.Pool
}

// NewPortfolioRepository instantiates repository.
func NewPortfolioRepository(pool *pgxpool.Pool) PortfolioRepository {
	return &portfolioRepository{pool: pool}
}

const portfolioColumns = `id, name, url, description, images, created_by, created_at, updated_at`

func (r *portfolioRepository) Create(ctx context.Context, entry *domain.Portfolio) error {
	const query = `
        INSERT INTO portfolios (name, url, description, images, created_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	images := entry.Images
	if images == nil {
		images = []domain.PortfolioImage{}
	}
	return r.pool.QueryRow(ctx, query,
		entry.Name,
		entry.URL,
		entry.Description,
		images,
		entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *portfolioRepository) Update(ctx context.Context, entry *domain.Portfolio) error {
	const query = `
        UPDATE portfolios SET name=$1, url=$2, description=$3, images=$4, updated_at=NOW()
        WHERE id=$5`
	images := entry.Images
	if images == nil {
		images = []domain.PortfolioImage{}
	}
	cmd, err := r.pool.Exec(ctx, query,
		entry.Name,
		entry.URL,
		entry.Description,
		images,
		entry.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM portfolios WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *portfolioRepository) GetByID(ctx context.Context, id string) (*domain.Portfolio, error) {
	const query = `SELECT ` + portfolioColumns + ` FROM portfolios WHERE id=$1`
	var entry domain.Portfolio
	if err := scanPortfolio(r.pool.QueryRow(ctx, query, id), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *portfolioRepository) List(ctx context.Context) ([]domain.Portfolio, error) {
	const query = `SELECT ` + portfolioColumns + ` FROM portfolios ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.Portfolio, 0)
	for rows.Next() {
		var entry domain.Portfolio
		if err := scanPortfolio(rows, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanPortfolio(row pgx.Row, entry *domain.Portfolio) error {
	return row.Scan(
		&entry.ID,
		&entry.Name,
		&entry.URL,
		&entry.Description,
		&entry.Images,
		&entry.CreatedBy,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}
