package service

import (
	"context"
	"errors"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/repository"
	"github.com/alimikegami/content-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
)

const recentLimit = 4

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest, thumbnail, bigImage asset.Upload) (name string, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProducts(ctx context.Context) (data []dto.ProductSummary, err error)
	GetRecentProducts(ctx context.Context) (data []dto.ProductCard, err error)
	UpdateProduct(ctx context.Context, id string, data dto.ProductUpdateRequest, thumbnail, bigImage asset.Upload) (productID string, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type ProductServiceImpl struct {
	repo      repository.ProductRepository
	assets    AssetService
	publisher EventPublisher
}

func CreateProductService(repo repository.ProductRepository, assets AssetService, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{repo: repo, assets: assets, publisher: publisher}
}

func productImages(product domain.Product, thumbnail, bigImage asset.Upload, required bool) []imageSlot {
	slots := []imageSlot{
		{field: "thumbnail", upload: thumbnail, current: product.Thumbnail, required: "Thumbnail is required", invalid: "Invalid thumbnail format", failed: "Thumbnail upload failed"},
		{field: "bigImage", upload: bigImage, current: product.BigImage, required: "Big image is required", invalid: "Invalid big image format", failed: "Big image upload failed"},
	}
	if !required {
		for i := range slots {
			slots[i].required = ""
		}
	}

	return slots
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest, thumbnail, bigImage asset.Upload) (name string, err error) {
	slots := productImages(domain.Product{}, thumbnail, bigImage, true)
	if err = prepareImages(ctx, s.assets, slots...); err != nil {
		return
	}

	owner := AssetOwner{Collection: "products"}
	images := bson.M{}
	fresh, _, err := uploadImages(ctx, s.assets, owner, images, slots...)
	if err != nil {
		return
	}

	product := domain.Product{
		Name:          *data.Name,
		ProductDetail: *data.ProductDetail,
		AffiliateLink: *data.AffiliateLink,
		Category:      *data.Category,
		Thumbnail:     stringField(images, "thumbnail"),
		BigImage:      stringField(images, "bigImage"),
		Quantity:      *data.Quantity,
		Amount:        *data.Amount,
		Discount:      *data.Discount,
		SellingPrice:  *data.SellingPrice,
		IsPublic:      *data.IsPublic,
	}
	if data.ProductDescription != nil {
		product.ProductDescription = *data.ProductDescription
	}

	product.ID, err = s.repo.AddProduct(ctx, product)
	if err != nil {
		s.assets.Discard(ctx, owner, fresh...)
		return "", errs.New(errs.ErrPersistFailure, "Product creation failed")
	}

	publishEvent(ctx, s.publisher, "product_created", product.ID.Hex(), product)

	return product.Name, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	product, err = s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return product, errs.New(errs.ErrNotFound, "Product not found")
		}
		return
	}

	return product, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (data []dto.ProductSummary, err error) {
	products, err := s.repo.GetProducts(ctx)
	if err != nil {
		return
	}

	if len(products) == 0 {
		return nil, errs.New(errs.ErrNotFound, "Products not found")
	}

	data = make([]dto.ProductSummary, 0, len(products))
	for _, product := range products {
		data = append(data, dto.ProductSummary{
			ID:           product.ID.Hex(),
			Name:         product.Name,
			Category:     product.Category,
			Thumbnail:    product.Thumbnail,
			Amount:       product.Amount,
			Discount:     product.Discount,
			SellingPrice: product.SellingPrice,
			IsPublic:     product.IsPublic,
		})
	}

	return data, nil
}

func (s *ProductServiceImpl) GetRecentProducts(ctx context.Context) (data []dto.ProductCard, err error) {
	products, err := s.repo.GetRecentProducts(ctx, recentLimit)
	if err != nil {
		return
	}

	data = make([]dto.ProductCard, 0, len(products))
	for _, product := range products {
		data = append(data, dto.ProductCard{
			ID:            product.ID.Hex(),
			Name:          product.Name,
			Thumbnail:     product.Thumbnail,
			AffiliateLink: product.AffiliateLink,
			SellingPrice:  product.SellingPrice,
		})
	}

	return data, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, data dto.ProductUpdateRequest, thumbnail, bigImage asset.Upload) (productID string, err error) {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	fields := bson.M{}
	setIfChanged(fields, "name", data.Name, product.Name)
	setIfChanged(fields, "productDescription", data.ProductDescription, product.ProductDescription)
	setIfChanged(fields, "productDetail", data.ProductDetail, product.ProductDetail)
	setIfChanged(fields, "affiliateLink", data.AffiliateLink, product.AffiliateLink)
	setIfChanged(fields, "category", data.Category, product.Category)
	setIfChanged(fields, "quantity", data.Quantity, product.Quantity)
	setIfChanged(fields, "amount", data.Amount, product.Amount)
	setIfChanged(fields, "discount", data.Discount, product.Discount)
	setIfChanged(fields, "sellingPrice", data.SellingPrice, product.SellingPrice)
	setIfChanged(fields, "isPublic", data.IsPublic, product.IsPublic)

	if len(fields) == 0 && thumbnail == nil && bigImage == nil {
		return "", errs.New(errs.ErrNoOp, "No fields to update")
	}

	slots := productImages(product, thumbnail, bigImage, false)
	if err = prepareImages(ctx, s.assets, slots...); err != nil {
		return
	}

	owner := AssetOwner{Collection: "products", ID: product.ID.Hex()}
	fresh, stale, err := uploadImages(ctx, s.assets, owner, fields, slots...)
	if err != nil {
		return
	}

	if err = s.repo.UpdateProduct(ctx, product.ID, fields); err != nil {
		s.assets.Discard(ctx, owner, fresh...)
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.New(errs.ErrNotFound, "Product not found")
		}
		return "", errs.New(errs.ErrPersistFailure, "Product update failed")
	}

	s.assets.Discard(ctx, owner, stale...)
	publishEvent(ctx, s.publisher, "product_updated", product.ID.Hex(), fields)

	return product.ID.Hex(), nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	s.assets.Discard(ctx, AssetOwner{Collection: "products", ID: product.ID.Hex()}, product.Thumbnail, product.BigImage)

	if err = s.repo.DeleteProduct(ctx, product.ID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.New(errs.ErrNotFound, "Product not found")
		}
		return errs.New(errs.ErrPersistFailure, "Product delete failed")
	}

	publishEvent(ctx, s.publisher, "product_deleted", product.ID.Hex(), product)

	return nil
}
