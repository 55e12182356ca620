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

type CategoryService interface {
	AddCategory(ctx context.Context, data dto.CategoryRequest, thumbnail asset.Upload) (name string, err error)
	GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error)
	GetCategories(ctx context.Context) (data []dto.CategorySummary, err error)
	GetCategoryNames(ctx context.Context) (data []dto.CategoryName, err error)
	GetRecentCategories(ctx context.Context) (data []dto.CategorySummary, err error)
	UpdateCategory(ctx context.Context, id string, data dto.CategoryUpdateRequest, thumbnail asset.Upload) (category domain.Category, err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type CategoryServiceImpl struct {
	repo      repository.CategoryRepository
	assets    AssetService
	publisher EventPublisher
}

func CreateCategoryService(repo repository.CategoryRepository, assets AssetService, publisher EventPublisher) CategoryService {
	return &CategoryServiceImpl{repo: repo, assets: assets, publisher: publisher}
}

var errCategoryExists = errs.New(errs.ErrDuplicate, "Category already exists")

func categoryImages(category domain.Category, thumbnail asset.Upload, required bool) imageSlot {
	slot := imageSlot{field: "thumbnail", upload: thumbnail, current: category.Thumbnail, invalid: "Invalid image format", failed: "Thumbnail upload failed"}
	if required {
		slot.required = "Thumbnail is required"
	}

	return slot
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, data dto.CategoryRequest, thumbnail asset.Upload) (name string, err error) {
	_, err = s.repo.GetCategoryByName(ctx, *data.Name)
	if err == nil {
		return "", errCategoryExists
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return "", err
	}

	slot := categoryImages(domain.Category{}, thumbnail, true)
	if err = prepareImages(ctx, s.assets, slot); err != nil {
		return
	}

	owner := AssetOwner{Collection: "categories"}
	images := bson.M{}
	fresh, _, err := uploadImages(ctx, s.assets, owner, images, slot)
	if err != nil {
		return
	}

	category := domain.Category{
		Name:      *data.Name,
		Thumbnail: stringField(images, "thumbnail"),
		IsPublic:  *data.IsPublic,
	}

	category.ID, err = s.repo.AddCategory(ctx, category)
	if err != nil {
		s.assets.Discard(ctx, owner, fresh...)
		// a concurrent create with the same name lost the race on the unique index
		if errors.Is(err, errs.ErrDuplicate) {
			return "", errCategoryExists
		}
		return "", errs.New(errs.ErrPersistFailure, "Category creation failed")
	}

	publishEvent(ctx, s.publisher, "category_created", category.ID.Hex(), category)

	return category.Name, nil
}

func (s *CategoryServiceImpl) GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error) {
	category, err = s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return category, errs.New(errs.ErrNotFound, "Category not found")
		}
		return
	}

	return category, nil
}

func toCategorySummaries(categories []domain.Category) []dto.CategorySummary {
	data := make([]dto.CategorySummary, 0, len(categories))
	for _, category := range categories {
		data = append(data, dto.CategorySummary{
			ID:        category.ID.Hex(),
			Name:      category.Name,
			Thumbnail: category.Thumbnail,
			IsPublic:  category.IsPublic,
		})
	}

	return data
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (data []dto.CategorySummary, err error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return
	}

	if len(categories) == 0 {
		return nil, errs.New(errs.ErrNotFound, "Categories not found")
	}

	return toCategorySummaries(categories), nil
}

func (s *CategoryServiceImpl) GetCategoryNames(ctx context.Context) (data []dto.CategoryName, err error) {
	categories, err := s.repo.GetCategoryNames(ctx)
	if err != nil {
		return
	}

	data = make([]dto.CategoryName, 0, len(categories))
	for _, category := range categories {
		data = append(data, dto.CategoryName{ID: category.ID.Hex(), Name: category.Name})
	}

	return data, nil
}

func (s *CategoryServiceImpl) GetRecentCategories(ctx context.Context) (data []dto.CategorySummary, err error) {
	categories, err := s.repo.GetRecentCategories(ctx, recentLimit)
	if err != nil {
		return
	}

	return toCategorySummaries(categories), nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, id string, data dto.CategoryUpdateRequest, thumbnail asset.Upload) (category domain.Category, err error) {
	category, err = s.GetCategoryByID(ctx, id)
	if err != nil {
		return
	}

	fields := bson.M{}
	setIfChanged(fields, "name", data.Name, category.Name)
	setIfChanged(fields, "isPublic", data.IsPublic, category.IsPublic)

	if len(fields) == 0 && thumbnail == nil {
		return category, errs.New(errs.ErrNoOp, "No fields to update")
	}

	slot := categoryImages(category, thumbnail, false)
	if err = prepareImages(ctx, s.assets, slot); err != nil {
		return
	}

	owner := AssetOwner{Collection: "categories", ID: category.ID.Hex()}
	fresh, stale, err := uploadImages(ctx, s.assets, owner, fields, slot)
	if err != nil {
		return
	}

	if err = s.repo.UpdateCategory(ctx, category.ID, fields); err != nil {
		s.assets.Discard(ctx, owner, fresh...)
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return category, errs.New(errs.ErrNotFound, "Category not found")
		case errors.Is(err, errs.ErrDuplicate):
			return category, errCategoryExists
		}
		return category, errs.New(errs.ErrPersistFailure, "Category update failed")
	}

	s.assets.Discard(ctx, owner, stale...)
	publishEvent(ctx, s.publisher, "category_updated", category.ID.Hex(), fields)

	return s.GetCategoryByID(ctx, id)
}

// DeleteCategory leaves products that reference the name untouched.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return
	}

	s.assets.Discard(ctx, AssetOwner{Collection: "categories", ID: category.ID.Hex()}, category.Thumbnail)

	if err = s.repo.DeleteCategory(ctx, category.ID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.New(errs.ErrNotFound, "Category not found")
		}
		return errs.New(errs.ErrPersistFailure, "Category delete failed")
	}

	publishEvent(ctx, s.publisher, "category_deleted", category.ID.Hex(), category)

	return nil
}
