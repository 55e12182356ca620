package service

import (
	"context"
	"errors"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/repository"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

type BannerService interface {
	AddBanner(ctx context.Context, image asset.Upload) (err error)
	GetBannerByID(ctx context.Context, id string) (banner dto.BannerResponse, err error)
	GetBanners(ctx context.Context) (data []dto.BannerResponse, err error)
	GetRecentBanners(ctx context.Context) (data []dto.BannerResponse, err error)
	UpdateBanner(ctx context.Context, id string, image asset.Upload) (banner dto.BannerResponse, err error)
	DeleteBanner(ctx context.Context, id string) (err error)
	SyncBannerSlots(ctx context.Context) (err error)
}

type BannerServiceImpl struct {
	repo      repository.BannerRepository
	assets    AssetService
	publisher EventPublisher
}

func CreateBannerService(repo repository.BannerRepository, assets AssetService, publisher EventPublisher) BannerService {
	return &BannerServiceImpl{repo: repo, assets: assets, publisher: publisher}
}

var errBannerLimit = errs.New(errs.ErrLimitExceeded, "Banner limit reached")

func bannerImage(banner domain.Banner, image asset.Upload) imageSlot {
	return imageSlot{field: "image", upload: image, current: banner.Image, required: "Image is required", invalid: "Invalid image format", failed: "Image upload failed"}
}

func toBannerResponse(banner domain.Banner) dto.BannerResponse {
	return dto.BannerResponse{ID: banner.ID.Hex(), Image: banner.Image}
}

func (s *BannerServiceImpl) releaseSlot(ctx context.Context) {
	if err := s.repo.ReleaseBannerSlot(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ReleaseBannerSlot").Msg("")
	}
}

// AddBanner checks the limit before touching the image so a full carousel
// never costs an upload. The slot reservation closes the race between two
// concurrent creates that both passed the count.
func (s *BannerServiceImpl) AddBanner(ctx context.Context, image asset.Upload) (err error) {
	count, err := s.repo.CountBanners(ctx)
	if err != nil {
		return
	}

	if count >= domain.MaxBanners {
		return errBannerLimit
	}

	slot := bannerImage(domain.Banner{}, image)
	if err = prepareImages(ctx, s.assets, slot); err != nil {
		return
	}

	if err = s.repo.ReserveBannerSlot(ctx); err != nil {
		if errors.Is(err, errs.ErrLimitExceeded) {
			return errBannerLimit
		}
		return
	}

	owner := AssetOwner{Collection: "banners"}
	images := bson.M{}
	fresh, _, err := uploadImages(ctx, s.assets, owner, images, slot)
	if err != nil {
		s.releaseSlot(ctx)
		return
	}

	banner := domain.Banner{Image: stringField(images, "image")}
	banner.ID, err = s.repo.AddBanner(ctx, banner)
	if err != nil {
		s.assets.Discard(ctx, owner, fresh...)
		s.releaseSlot(ctx)
		return errs.New(errs.ErrPersistFailure, "Banner creation failed")
	}

	publishEvent(ctx, s.publisher, "banner_created", banner.ID.Hex(), toBannerResponse(banner))

	return nil
}

func (s *BannerServiceImpl) getBanner(ctx context.Context, id string) (banner domain.Banner, err error) {
	banner, err = s.repo.GetBannerByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return banner, errs.New(errs.ErrNotFound, "Banner not found")
		}
		return
	}

	return banner, nil
}

func (s *BannerServiceImpl) GetBannerByID(ctx context.Context, id string) (banner dto.BannerResponse, err error) {
	found, err := s.getBanner(ctx, id)
	if err != nil {
		return
	}

	return toBannerResponse(found), nil
}

func (s *BannerServiceImpl) GetBanners(ctx context.Context) (data []dto.BannerResponse, err error) {
	banners, err := s.repo.GetBanners(ctx)
	if err != nil {
		return
	}

	data = make([]dto.BannerResponse, 0, len(banners))
	for _, banner := range banners {
		data = append(data, toBannerResponse(banner))
	}

	return data, nil
}

func (s *BannerServiceImpl) GetRecentBanners(ctx context.Context) (data []dto.BannerResponse, err error) {
	banners, err := s.repo.GetRecentBanners(ctx, recentLimit)
	if err != nil {
		return
	}

	data = make([]dto.BannerResponse, 0, len(banners))
	for _, banner := range banners {
		data = append(data, toBannerResponse(banner))
	}

	return data, nil
}

// UpdateBanner swaps the image; the image is the only field so a request
// without one changes nothing.
func (s *BannerServiceImpl) UpdateBanner(ctx context.Context, id string, image asset.Upload) (banner dto.BannerResponse, err error) {
	found, err := s.getBanner(ctx, id)
	if err != nil {
		return
	}

	if image == nil {
		return banner, errs.New(errs.ErrNoOp, "No fields to update")
	}

	slot := bannerImage(found, image)
	if err = prepareImages(ctx, s.assets, slot); err != nil {
		return
	}

	owner := AssetOwner{Collection: "banners", ID: found.ID.Hex()}
	fields := bson.M{}
	fresh, stale, err := uploadImages(ctx, s.assets, owner, fields, slot)
	if err != nil {
		return
	}

	if err = s.repo.UpdateBanner(ctx, found.ID, fields); err != nil {
		s.assets.Discard(ctx, owner, fresh...)
		if errors.Is(err, errs.ErrNotFound) {
			return banner, errs.New(errs.ErrNotFound, "Banner not found")
		}
		return banner, errs.New(errs.ErrPersistFailure, "Banner update failed")
	}

	s.assets.Discard(ctx, owner, stale...)

	found.Image = stringField(fields, "image")
	banner = toBannerResponse(found)
	publishEvent(ctx, s.publisher, "banner_updated", banner.ID, banner)

	return banner, nil
}

func (s *BannerServiceImpl) DeleteBanner(ctx context.Context, id string) (err error) {
	banner, err := s.getBanner(ctx, id)
	if err != nil {
		return
	}

	s.assets.Discard(ctx, AssetOwner{Collection: "banners", ID: banner.ID.Hex()}, banner.Image)

	if err = s.repo.DeleteBanner(ctx, banner.ID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.New(errs.ErrNotFound, "Banner not found")
		}
		return errs.New(errs.ErrPersistFailure, "Banner delete failed")
	}

	s.releaseSlot(ctx)
	publishEvent(ctx, s.publisher, "banner_deleted", banner.ID.Hex(), toBannerResponse(banner))

	return nil
}

func (s *BannerServiceImpl) SyncBannerSlots(ctx context.Context) (err error) {
	return s.repo.SyncBannerSlots(ctx)
}
