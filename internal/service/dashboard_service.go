package service

import (
	"context"

	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/repository"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetCounts(ctx context.Context) (data dto.CountResponse, err error)
}

type DashboardServiceImpl struct {
	products   repository.ProductRepository
	blogs      repository.BlogRepository
	categories repository.CategoryRepository
	banners    repository.BannerRepository
}

func CreateDashboardService(products repository.ProductRepository, blogs repository.BlogRepository, categories repository.CategoryRepository, banners repository.BannerRepository) DashboardService {
	return &DashboardServiceImpl{products: products, blogs: blogs, categories: categories, banners: banners}
}

// GetCounts takes each count independently; the four numbers are not a
// consistent snapshot.
func (s *DashboardServiceImpl) GetCounts(ctx context.Context) (data dto.CountResponse, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.ProductCount, err = s.products.CountProducts(gctx)
		return
	})
	g.Go(func() (err error) {
		data.BlogCount, err = s.blogs.CountBlogs(gctx)
		return
	})
	g.Go(func() (err error) {
		data.CategoryCount, err = s.categories.CountCategories(gctx)
		return
	})
	g.Go(func() (err error) {
		data.BannerCount, err = s.banners.CountBanners(gctx)
		return
	})

	if err = g.Wait(); err != nil {
		return dto.CountResponse{}, err
	}

	return data, nil
}
