package service_test

import (
	"testing"

	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/internal/testutil"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategoryThenDuplicate(t *testing.T) {
	f := newFixture(t)
	repo := testutil.NewCategoryRepository()
	svc := service.CreateCategoryService(repo, f.assets, f.publisher)
	payload := dto.CategoryRequest{Name: ptr("Shoes"), IsPublic: ptr(true)}

	name, err := svc.AddCategory(f.ctx, payload, testutil.ImageUpload("thumbnail"))
	require.NoError(t, err)
	assert.Equal(t, "Shoes", name)

	_, err = svc.AddCategory(f.ctx, payload, testutil.ImageUpload("thumbnail"))
	assert.ErrorIs(t, err, errs.ErrDuplicate)
	assert.EqualError(t, err, "Category already exists")

	assert.Equal(t, 1, repo.Inserts)
	assert.Equal(t, 1, f.uploader.UploadCount(), "duplicate must not upload")
}

func TestAddCategoryValidatesThumbnail(t *testing.T) {
	f := newFixture(t)
	repo := testutil.NewCategoryRepository()
	svc := service.CreateCategoryService(repo, f.assets, f.publisher)
	payload := dto.CategoryRequest{Name: ptr("Bags"), IsPublic: ptr(false)}

	_, err := svc.AddCategory(f.ctx, payload, nil)
	assert.EqualError(t, err, "Thumbnail is required")

	_, err = svc.AddCategory(f.ctx, payload, testutil.GIFUpload("thumbnail"))
	assert.ErrorIs(t, err, errs.ErrInvalidFormat)
	assert.EqualError(t, err, "Invalid image format")

	assert.Zero(t, f.uploader.UploadCount())
	assert.Zero(t, repo.Inserts)
}

func TestUpdateCategory(t *testing.T) {
	f := newFixture(t)
	repo := testutil.NewCategoryRepository()
	svc := service.CreateCategoryService(repo, f.assets, f.publisher)
	shoes := repo.Seed(domain.Category{Name: "Shoes", Thumbnail: hostedURL("shoes"), IsPublic: true})
	repo.Seed(domain.Category{Name: "Bags", Thumbnail: hostedURL("bags")})

	updated, err := svc.UpdateCategory(f.ctx, shoes.Hex(), dto.CategoryUpdateRequest{IsPublic: ptr(false)}, nil)
	require.NoError(t, err)
	assert.False(t, updated.IsPublic)
	assert.Equal(t, "Shoes", updated.Name)

	_, err = svc.UpdateCategory(f.ctx, shoes.Hex(), dto.CategoryUpdateRequest{Name: ptr("Shoes")}, nil)
	assert.ErrorIs(t, err, errs.ErrNoOp)

	_, err = svc.UpdateCategory(f.ctx, shoes.Hex(), dto.CategoryUpdateRequest{Name: ptr("Bags")}, nil)
	assert.EqualError(t, err, "Category already exists")

	_, err = svc.UpdateCategory(f.ctx, "65f1c0a2b3d4e5f607182930", dto.CategoryUpdateRequest{Name: ptr("Hats")}, nil)
	assert.EqualError(t, err, "Category not found")
}

func TestCategoryListings(t *testing.T) {
	f := newFixture(t)
	repo := testutil.NewCategoryRepository()
	svc := service.CreateCategoryService(repo, f.assets, f.publisher)

	_, err := svc.GetCategories(f.ctx)
	assert.EqualError(t, err, "Categories not found")

	for _, name := range []string{"Watches", "Bags", "Shoes"} {
		repo.Seed(domain.Category{Name: name})
	}

	names, err := svc.GetCategoryNames(f.ctx)
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, []string{"Bags", "Shoes", "Watches"}, []string{names[0].Name, names[1].Name, names[2].Name})

	all, err := svc.GetCategories(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", all[0].Name, "newest first")
}

func TestDeleteCategory(t *testing.T) {
	f := newFixture(t)
	repo := testutil.NewCategoryRepository()
	svc := service.CreateCategoryService(repo, f.assets, f.publisher)
	id := repo.Seed(domain.Category{Name: "Shoes", Thumbnail: hostedURL("shoes")})

	require.NoError(t, svc.DeleteCategory(f.ctx, id.Hex()))
	assert.Equal(t, []string{"shoes"}, f.uploader.Destroyed)

	err := svc.DeleteCategory(f.ctx, id.Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
