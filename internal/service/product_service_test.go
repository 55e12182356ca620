package service_test

import (
	"testing"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/internal/testutil"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func productRequest() dto.ProductRequest {
	return dto.ProductRequest{
		Name:          ptr("Trail Runner"),
		ProductDetail: ptr("Grippy outsole for wet rock"),
		AffiliateLink: ptr("https://shop.example.com/p/trail"),
		Category:      ptr("Shoes"),
		Quantity:      ptr(int64(10)),
		Amount:        ptr(150.0),
		Discount:      ptr(10.0),
		SellingPrice:  ptr(135.0),
		IsPublic:      ptr(true),
	}
}

func seedProduct(repo *testutil.ProductRepository) domain.Product {
	product := domain.Product{
		Name:               "Trail Runner",
		ProductDescription: "Light",
		ProductDetail:      "Grippy outsole for wet rock",
		AffiliateLink:      "https://shop.example.com/p/trail",
		Category:           "Shoes",
		Thumbnail:          hostedURL("thumbOld"),
		BigImage:           hostedURL("bigOld"),
		Quantity:           10,
		Amount:             150,
		Discount:           10,
		SellingPrice:       135,
		IsPublic:           true,
	}
	product.ID = repo.Seed(product)
	return product
}

func TestAddProduct(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.ProductRepository{}
	svc := service.CreateProductService(repo, f.assets, f.publisher)

	name, err := svc.AddProduct(f.ctx, productRequest(), testutil.ImageUpload("thumbnail"), testutil.ImageUpload("bigImage"))

	require.NoError(t, err)
	assert.Equal(t, "Trail Runner", name)
	assert.Equal(t, 2, f.uploader.UploadCount())
	assert.Equal(t, 1, repo.Inserts)
	assert.Equal(t, 1, f.publisher.Count())

	products, err := svc.GetProducts(f.ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, hostedURL(f.uploader.Uploaded[0]), products[0].Thumbnail)
}

func TestAddProductRejectsBeforeUploading(t *testing.T) {
	testCases := []struct {
		Name      string
		Thumbnail asset.Upload
		BigImage  asset.Upload
		Kind      error
		Message   string
	}{
		{Name: "missing thumbnail", BigImage: testutil.ImageUpload("bigImage"), Kind: errs.ErrValidation, Message: "Thumbnail is required"},
		{Name: "missing big image", Thumbnail: testutil.ImageUpload("thumbnail"), Kind: errs.ErrValidation, Message: "Big image is required"},
		{Name: "gif big image", Thumbnail: testutil.ImageUpload("thumbnail"), BigImage: testutil.GIFUpload("bigImage"), Kind: errs.ErrInvalidFormat, Message: "Invalid big image format"},
		{Name: "gif thumbnail", Thumbnail: testutil.GIFUpload("thumbnail"), BigImage: testutil.ImageUpload("bigImage"), Kind: errs.ErrInvalidFormat, Message: "Invalid thumbnail format"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			f := newFixture(t)
			repo := &testutil.ProductRepository{}
			svc := service.CreateProductService(repo, f.assets, f.publisher)

			_, err := svc.AddProduct(f.ctx, productRequest(), tc.Thumbnail, tc.BigImage)

			assert.ErrorIs(t, err, tc.Kind)
			assert.EqualError(t, err, tc.Message)
			assert.Zero(t, f.uploader.UploadCount())
			assert.Zero(t, repo.Inserts)
		})
	}
}

func TestAddProductUploadFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.uploader.UploadErr = testutil.ErrHostDown
	repo := &testutil.ProductRepository{}
	svc := service.CreateProductService(repo, f.assets, f.publisher)

	_, err := svc.AddProduct(f.ctx, productRequest(), testutil.ImageUpload("thumbnail"), testutil.ImageUpload("bigImage"))

	assert.ErrorIs(t, err, errs.ErrUploadFailure)
	assert.EqualError(t, err, "Thumbnail upload failed")
	assert.Zero(t, repo.Inserts)
	assert.Zero(t, f.publisher.Count())
}

func TestAddProductPersistFailureDiscardsUploads(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.ProductRepository{InsertErr: testutil.ErrHostDown}
	svc := service.CreateProductService(repo, f.assets, f.publisher)

	_, err := svc.AddProduct(f.ctx, productRequest(), testutil.ImageUpload("thumbnail"), testutil.ImageUpload("bigImage"))

	assert.ErrorIs(t, err, errs.ErrPersistFailure)
	assert.ElementsMatch(t, f.uploader.Uploaded, f.uploader.Destroyed)
}

func TestUpdateProductOnlyTouchesChangedField(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.ProductRepository{}
	svc := service.CreateProductService(repo, f.assets, f.publisher)
	product := seedProduct(repo)
	before := repo.Raw(product.ID)

	id, err := svc.UpdateProduct(f.ctx, product.ID.Hex(), dto.ProductUpdateRequest{
		SellingPrice: ptr(99.0),
		Name:         ptr("Trail Runner"),
	}, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, product.ID.Hex(), id)
	require.Len(t, repo.Updates, 1)
	assert.Equal(t, bson.M{"sellingPrice": 99.0}, repo.Updates[0])

	after := repo.Raw(product.ID)
	for key, value := range before {
		if key == "sellingPrice" || key == "updatedAt" {
			continue
		}
		assert.Equal(t, value, after[key], key)
	}
	assert.Equal(t, 99.0, after["sellingPrice"])
	assert.Zero(t, f.uploader.UploadCount())
	assert.Zero(t, f.uploader.DestroyCount())
}

func TestUpdateProductNoOp(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.ProductRepository{}
	svc := service.CreateProductService(repo, f.assets, f.publisher)
	product := seedProduct(repo)

	for _, payload := range []dto.ProductUpdateRequest{
		{},
		{Name: ptr(product.Name), SellingPrice: ptr(product.SellingPrice), IsPublic: ptr(product.IsPublic)},
	} {
		_, err := svc.UpdateProduct(f.ctx, product.ID.Hex(), payload, nil, nil)

		assert.ErrorIs(t, err, errs.ErrNoOp)
		assert.EqualError(t, err, "No fields to update")
	}

	assert.Empty(t, repo.Updates)
}

func TestUpdateProductReplacesThumbnail(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.ProductRepository{}
	svc := service.CreateProductService(repo, f.assets, f.publisher)
	product := seedProduct(repo)

	_, err := svc.UpdateProduct(f.ctx, product.ID.Hex(), dto.ProductUpdateRequest{}, testutil.ImageUpload("thumbnail"), nil)

	require.NoError(t, err)
	require.Len(t, f.uploader.Uploaded, 1)
	assert.Equal(t, []string{"thumbOld"}, f.uploader.Destroyed)

	updated, err := svc.GetProductByID(f.ctx, product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, hostedURL(f.uploader.Uploaded[0]), updated.Thumbnail)
	assert.Equal(t, product.BigImage, updated.BigImage)
}

func TestUpdateProductWriteFailureKeepsOldAsset(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.ProductRepository{}
	svc := service.CreateProductService(repo, f.assets, f.publisher)
	product := seedProduct(repo)
	repo.UpdateErr = testutil.ErrHostDown

	_, err := svc.UpdateProduct(f.ctx, product.ID.Hex(), dto.ProductUpdateRequest{}, testutil.ImageUpload("thumbnail"), nil)

	assert.ErrorIs(t, err, errs.ErrPersistFailure)
	assert.Equal(t, f.uploader.Uploaded, f.uploader.Destroyed, "only the fresh upload is discarded")
}

func TestDeleteProductDiscardsEveryAssetEvenWhenHostFails(t *testing.T) {
	f := newFixture(t)
	f.uploader.DestroyErr = testutil.ErrHostDown
	repo := &testutil.ProductRepository{}
	svc := service.CreateProductService(repo, f.assets, f.publisher)
	product := seedProduct(repo)

	err := svc.DeleteProduct(f.ctx, product.ID.Hex())

	require.NoError(t, err)
	assert.ElementsMatch(t, publicIDs(product.Thumbnail, product.BigImage), f.uploader.Destroyed)
	assert.Equal(t, 1, repo.Deletes)
	assert.Len(t, f.orphans.Assets, 2)
	assert.Equal(t, "products", f.orphans.Assets[0].Collection)
	assert.Equal(t, product.ID.Hex(), f.orphans.Assets[0].OwnerID)
}

func TestGetProductNotFound(t *testing.T) {
	f := newFixture(t)
	svc := service.CreateProductService(&testutil.ProductRepository{}, f.assets, f.publisher)

	for _, id := range []string{"65f1c0a2b3d4e5f607182930", "garbage"} {
		_, err := svc.GetProductByID(f.ctx, id)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.EqualError(t, err, "Product not found")
	}

	_, err := svc.GetProducts(f.ctx)
	assert.EqualError(t, err, "Products not found")

	recent, err := svc.GetRecentProducts(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestGetRecentProductsLimitsToFourNewest(t *testing.T) {
	f := newFixture(t)
	repo := &testutil.ProductRepository{}
	svc := service.CreateProductService(repo, f.assets, f.publisher)
	for _, name := range []string{"p1", "p2", "p3", "p4", "p5"} {
		repo.Seed(domain.Product{Name: name})
	}

	recent, err := svc.GetRecentProducts(f.ctx)

	require.NoError(t, err)
	require.Len(t, recent, 4)
	assert.Equal(t, "p5", recent[0].Name)
	assert.Equal(t, "p2", recent[3].Name)
}
