package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
)

// CategoryRepository encapsulates category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	ListActive(ctx context.Context) ([]domain.Category, error)
	ListMains(ctx context.Context) ([]domain.Category, error)
	ListSubsByParent(ctx context.Context, parentID string) ([]domain.Category, error)
	CountSubsByParent(ctx context.Context, parentID string) (int, error)
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository instantiates repository.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

const categoryColumns = `id, name, slug, type, parent_category_id, description, is_active, created_at, updated_at`

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	const query = `
        INSERT INTO categories (name, slug, type, parent_category_id, description, is_active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		category.Name,
		category.Slug,
		category.Type,
		category.ParentCategoryID,
		category.Description,
		category.IsActive,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	const query = `
        UPDATE categories SET name=$1, slug=$2, description=$3, is_active=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		category.Name,
		category.Slug,
		category.Description,
		category.IsActive,
		category.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories WHERE name=$1`
	return r.fetchSingle(ctx, query, name)
}

func (r *categoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories WHERE is_active=TRUE ORDER BY type, name`
	return r.list(ctx, query)
}

func (r *categoryRepository) ListMains(ctx context.Context) ([]domain.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories WHERE type='main' AND is_active=TRUE ORDER BY name`
	return r.list(ctx, query)
}

func (r *categoryRepository) ListSubsByParent(ctx context.Context, parentID string) ([]domain.Category, error) {
	const query = `
        SELECT ` + categoryColumns + ` FROM categories
        WHERE type='sub' AND parent_category_id=$1 AND is_active=TRUE
        ORDER BY name`
	return r.list(ctx, query, parentID)
}

func (r *categoryRepository) CountSubsByParent(ctx context.Context, parentID string) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE parent_category_id=$1`, parentID).Scan(&total)
	return total, err
}

func (r *categoryRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Category, error) {
	var category domain.Category
	if err := scanCategory(r.pool.QueryRow(ctx, query, arg), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) list(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := scanCategory(rows, &category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func scanCategory(row pgx.Row, category *domain.Category) error {
	return row.Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.Type,
		&category.ParentCategoryID,
		&category.Description,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
}
