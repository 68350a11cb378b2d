package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
)

// SeoFilter captures list parameters for the admin dashboard.
type SeoFilter struct {
	Search *string
	Active *bool
	Limit  int
	Offset int
}

// SeoRepository encapsulates SEO metadata persistence.
type SeoRepository interface {
	Create(ctx context.Context, meta *domain.SeoMetadata) error
	Update(ctx context.Context, meta *domain.SeoMetadata) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.SeoMetadata, error)
	GetByPageIdentifier(ctx context.Context, pageIdentifier string) (*domain.SeoMetadata, error)
	List(ctx context.Context, filter SeoFilter) ([]domain.SeoMetadata, int, error)
}

type seoRepository struct {
	pool *pgxpool.Pool
}

// NewSeoRepository instantiates repository.
func NewSeoRepository(pool *pgxpool.Pool) SeoRepository {
	return &seoRepository{pool: pool}
}

const seoColumns = `id, page_identifier, page_name, meta_title, meta_description, og_title,
        og_description, social_media_image, keywords, canonical_url, is_active,
        created_by, last_updated_by, created_at, updated_at`

func (r *seoRepository) Create(ctx context.Context, meta *domain.SeoMetadata) error {
	const query = `
        INSERT INTO seo_metadata (page_identifier, page_name, meta_title, meta_description,
            og_title, og_description, social_media_image, keywords, canonical_url, is_active, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		meta.PageIdentifier,
		meta.PageName,
		meta.MetaTitle,
		meta.MetaDescription,
		meta.OGTitle,
		meta.OGDescription,
		meta.SocialMediaImage,
		meta.Keywords,
		meta.CanonicalURL,
		meta.IsActive,
		meta.CreatedBy,
	).Scan(&meta.ID, &meta.CreatedAt, &meta.UpdatedAt)
}

func (r *seoRepository) Update(ctx context.Context, meta *domain.SeoMetadata) error {
	const query = `
        UPDATE seo_metadata SET page_name=$1, meta_title=$2, meta_description=$3, og_title=$4,
            og_description=$5, social_media_image=$6, keywords=$7, canonical_url=$8,
            is_active=$9, last_updated_by=$10, updated_at=NOW()
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		meta.PageName,
		meta.MetaTitle,
		meta.MetaDescription,
		meta.OGTitle,
		meta.OGDescription,
		meta.SocialMediaImage,
		meta.Keywords,
		meta.CanonicalURL,
		meta.IsActive,
		meta.LastUpdatedBy,
		meta.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *seoRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM seo_metadata WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *seoRepository) GetByID(ctx context.Context, id string) (*domain.SeoMetadata, error) {
	const query = `SELECT ` + seoColumns + ` FROM seo_metadata WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *seoRepository) GetByPageIdentifier(ctx context.Context, pageIdentifier string) (*domain.SeoMetadata, error) {
	const query = `SELECT ` + seoColumns + ` FROM seo_metadata WHERE page_identifier=$1`
	return r.fetchSingle(ctx, query, pageIdentifier)
}

func (r *seoRepository) List(ctx context.Context, filter SeoFilter) ([]domain.SeoMetadata, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	idx := 1

	if filter.Search != nil && *filter.Search != "" {
		where += fmt.Sprintf(" AND (page_identifier ILIKE $%d OR page_name ILIKE $%d OR meta_title ILIKE $%d)", idx, idx, idx)
		args = append(args, "%"+*filter.Search+"%")
		idx++
	}
	if filter.Active != nil {
		where += fmt.Sprintf(" AND is_active=$%d", idx)
		args = append(args, *filter.Active)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM seo_metadata"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + seoColumns + " FROM seo_metadata" + where +
		fmt.Sprintf(" ORDER BY page_identifier LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]domain.SeoMetadata, 0)
	for rows.Next() {
		var meta domain.SeoMetadata
		if err := scanSeo(rows, &meta); err != nil {
			return nil, 0, err
		}
		records = append(records, meta)
	}
	return records, total, rows.Err()
}

func (r *seoRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.SeoMetadata, error) {
	var meta domain.SeoMetadata
	if err := scanSeo(r.pool.QueryRow(ctx, query, arg), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func scanSeo(row pgx.Row, meta *domain.SeoMetadata) error {
	return row.Scan(
		&meta.ID,
		&meta.PageIdentifier,
		&meta.PageName,
		&meta.MetaTitle,
		&meta.MetaDescription,
		&meta.OGTitle,
		&meta.OGDescription,
		&meta.SocialMediaImage,
		&meta.Keywords,
		&meta.CanonicalURL,
		&meta.IsActive,
		&meta.CreatedBy,
		&meta.LastUpdatedBy,
		&meta.CreatedAt,
		&meta.UpdatedAt,
	)
}
