package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

func newCategoryFixture() (*CategoryService, *BlogService) {
	blogRepo := newMemBlogRepo()
	categoryRepo := newMemCategoryRepo()
	return NewCategoryService(categoryRepo, blogRepo), NewBlogService(blogRepo, categoryRepo)
}

func TestCategoryCreate_TypeRules(t *testing.T) {
	svc, _ := newCategoryFixture()
	ctx := context.Background()

	main, err := svc.Create(ctx, CategoryInput{Name: "Tech", Type: "main"})
	require.NoError(t, err)
	assert.Equal(t, "tech", main.Slug)
	assert.True(t, main.IsActive)

	_, err = svc.Create(ctx, CategoryInput{Name: "Broken", Type: "neither"})
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)

	_, err = svc.Create(ctx, CategoryInput{Name: "Orphan Sub", Type: "sub"})
	domainErr = apperrors.ToDomainError(err)
	assert.Equal(t, "Subcategories require a parent category", domainErr.Message)

	sub, err := svc.Create(ctx, CategoryInput{Name: "Gadgets", Type: "sub", ParentCategoryID: &main.ID})
	require.NoError(t, err)
	require.NotNil(t, sub.ParentCategoryID)
	assert.Equal(t, main.ID, *sub.ParentCategoryID)
}

func TestCategoryCreate_DuplicateName(t *testing.T) {
	svc, _ := newCategoryFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, CategoryInput{Name: "Tech", Type: "main"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CategoryInput{Name: "Tech", Type: "main"})
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "Category with this name already exists", domainErr.Message)
}

func TestCategoryDelete_BlockedWhileReferenced(t *testing.T) {
	categorySvc, blogSvc := newCategoryFixture()
	ctx := context.Background()

	main, err := categorySvc.Create(ctx, CategoryInput{Name: "Tech", Type: "main"})
	require.NoError(t, err)

	_, err = blogSvc.Create(ctx, blogActor(), BlogInput{Title: "Uses Tech", MainCategoryID: main.ID})
	require.NoError(t, err)

	err = categorySvc.Delete(ctx, main.ID)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "Cannot delete category as it is being used by blogs", domainErr.Message)
	assert.Equal(t, 1, domainErr.Details["blogs_count"])

	require.NoError(t, blogSvc.Delete(ctx, "uses-tech"))
	assert.NoError(t, categorySvc.Delete(ctx, main.ID))
}

func TestCategoryDelete_BlockedBySubcategories(t *testing.T) {
	svc, _ := newCategoryFixture()
	ctx := context.Background()

	main, err := svc.Create(ctx, CategoryInput{Name: "Tech", Type: "main"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CategoryInput{Name: "Gadgets", Type: "sub", ParentCategoryID: &main.ID})
	require.NoError(t, err)

	err = svc.Delete(ctx, main.ID)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "Cannot delete category as it has subcategories", domainErr.Message)
}

func TestCategoryBlogCounts(t *testing.T) {
	categorySvc, blogSvc := newCategoryFixture()
	ctx := context.Background()

	main, err := categorySvc.Create(ctx, CategoryInput{Name: "Tech", Type: "main"})
	require.NoError(t, err)
	sub, err := categorySvc.Create(ctx, CategoryInput{Name: "Gadgets", Type: "sub", ParentCategoryID: &main.ID})
	require.NoError(t, err)

	_, err = blogSvc.Create(ctx, blogActor(), BlogInput{
		Title:          "Tagged Both",
		MainCategoryID: main.ID,
		SubcategoryIDs: []string{sub.ID},
	})
	require.NoError(t, err)

	mains, subs, total, err := categorySvc.BlogCounts(ctx)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, entry := range mains {
		counts[entry.ID] = entry.Count
	}
	for _, entry := range subs {
		counts[entry.ID] = entry.Count
	}
	assert.Equal(t, 1, counts[main.ID])
	assert.Equal(t, 1, counts[sub.ID])
	assert.Equal(t, 2, total)
}

func TestCategoryUpdate_RenameReslugs(t *testing.T) {
	svc, _ := newCategoryFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, CategoryInput{Name: "Old Name", Type: "main"})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, created.ID, CategoryInput{Name: "New Name", IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Slug)
	assert.False(t, updated.IsActive)
	assert.Equal(t, domain.CategoryTypeMain, updated.Type)
}
