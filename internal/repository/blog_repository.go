package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
)

// BlogStats aggregates publication counts for the dashboard.
type BlogStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
}

// BlogRepository encapsulates blog persistence.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	List(ctx context.Context, limit, offset int) ([]domain.Blog, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Blog, error)
	Count(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	Stats(ctx context.Context) (*BlogStats, error)
}

type blogRepository struct {
	pool *pgxpool.Pool
}

// NewBlogRepository instantiates repository.
func NewBlogRepository(pool *pgxpool.Pool) BlogRepository {
	return &blogRepository{pool: pool}
}

const blogColumns = `id, title, slug, description, meta_title, meta_description, published_date,
        status, banner, thumbnail, mobile_banner, main_category_id, subcategory_ids, tags,
        updates, created_by, created_at, updated_at`

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	const query = `
        INSERT INTO blogs (title, slug, description, meta_title, meta_description, published_date,
            status, banner, thumbnail, mobile_banner, main_category_id, subcategory_ids, tags, updates, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		blog.Title,
		blog.Slug,
		blog.Description,
		blog.MetaTitle,
		blog.MetaDescription,
		blog.PublishedDate,
		blog.Status,
		blog.Banner,
		blog.Thumbnail,
		blog.MobileBanner,
		blog.MainCategoryID,
		blog.SubcategoryIDs,
		blog.Tags,
		emptyIfNilUpdates(blog.Updates),
		blog.CreatedBy,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
}

func (r *blogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	const query = `
        UPDATE blogs SET title=$1, slug=$2, description=$3, meta_title=$4, meta_description=$5,
            published_date=$6, status=$7, banner=$8, thumbnail=$9, mobile_banner=$10,
            main_category_id=$11, subcategory_ids=$12, tags=$13, updates=$14, updated_at=NOW()
        WHERE id=$15`
	cmd, err := r.pool.Exec(ctx, query,
		blog.Title,
		blog.Slug,
		blog.Description,
		blog.MetaTitle,
		blog.MetaDescription,
		blog.PublishedDate,
		blog.Status,
		blog.Banner,
		blog.Thumbnail,
		blog.MobileBanner,
		blog.MainCategoryID,
		blog.SubcategoryIDs,
		blog.Tags,
		emptyIfNilUpdates(blog.Updates),
		blog.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	const query = `SELECT ` + blogColumns + ` FROM blogs WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	const query = `SELECT ` + blogColumns + ` FROM blogs WHERE slug=$1`
	return r.fetchSingle(ctx, query, slug)
}

func (r *blogRepository) List(ctx context.Context, limit, offset int) ([]domain.Blog, error) {
	const query = `SELECT ` + blogColumns + ` FROM blogs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBlogs(rows)
}

func (r *blogRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Blog, error) {
	const query = `
        SELECT ` + blogColumns + ` FROM blogs
        WHERE main_category_id=$1 OR subcategory_ids @> to_jsonb(ARRAY[$1::text])
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBlogs(rows)
}

func (r *blogRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`).Scan(&total)
	return total, err
}

func (r *blogRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	const query = `
        SELECT COUNT(*) FROM blogs
        WHERE main_category_id=$1 OR subcategory_ids @> to_jsonb(ARRAY[$1::text])`
	var total int
	err := r.pool.QueryRow(ctx, query, categoryID).Scan(&total)
	return total, err
}

func (r *blogRepository) Stats(ctx context.Context) (*BlogStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status='published'),
               COUNT(*) FILTER (WHERE status='draft')
        FROM blogs`
	var stats BlogStats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Published, &stats.Draft); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *blogRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Blog, error) {
	var blog domain.Blog
	if err := scanBlog(r.pool.QueryRow(ctx, query, arg), &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func collectBlogs(rows pgx.Rows) ([]domain.Blog, error) {
	blogs := make([]domain.Blog, 0)
	for rows.Next() {
		var blog domain.Blog
		if err := scanBlog(rows, &blog); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

func scanBlog(row pgx.Row, blog *domain.Blog) error {
	return row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Slug,
		&blog.Description,
		&blog.MetaTitle,
		&blog.MetaDescription,
		&blog.PublishedDate,
		&blog.Status,
		&blog.Banner,
		&blog.Thumbnail,
		&blog.MobileBanner,
		&blog.MainCategoryID,
		&blog.SubcategoryIDs,
		&blog.Tags,
		&blog.Updates,
		&blog.CreatedBy,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)
}

func emptyIfNilUpdates(updates []domain.BlogUpdate) []domain.BlogUpdate {
	if updates == nil {
		return []domain.BlogUpdate{}
	}
	return updates
}
