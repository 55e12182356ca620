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

type BlogService interface {
	AddBlog(ctx context.Context, data dto.BlogRequest, thumbnail, detailImage asset.Upload) (title string, err error)
	GetBlogByID(ctx context.Context, id string) (blog domain.Blog, err error)
	GetBlogs(ctx context.Context) (data []dto.BlogSummary, err error)
	GetRecentBlogs(ctx context.Context) (data []dto.BlogCard, err error)
	UpdateBlog(ctx context.Context, id string, data dto.BlogUpdateRequest, thumbnail, detailImage asset.Upload) (blog domain.Blog, err error)
	DeleteBlog(ctx context.Context, id string) (err error)
}

type BlogServiceImpl struct {
	repo      repository.BlogRepository
	assets    AssetService
	publisher EventPublisher
}

func CreateBlogService(repo repository.BlogRepository, assets AssetService, publisher EventPublisher) BlogService {
	return &BlogServiceImpl{repo: repo, assets: assets, publisher: publisher}
}

func blogImages(blog domain.Blog, thumbnail, detailImage asset.Upload, required bool) []imageSlot {
	slots := []imageSlot{
		{field: "thumbnail", upload: thumbnail, current: blog.Thumbnail, required: "Thumbnail is required", invalid: "Invalid thumbnail format", failed: "Thumbnail upload failed"},
		{field: "detailImage", upload: detailImage, current: blog.DetailImage, required: "Detail image is required", invalid: "Invalid detail image format", failed: "Detail image upload failed"},
	}
	if !required {
		for i := range slots {
			slots[i].required = ""
		}
	}

	return slots
}

func optional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func (s *BlogServiceImpl) AddBlog(ctx context.Context, data dto.BlogRequest, thumbnail, detailImage asset.Upload) (title string, err error) {
	slots := blogImages(domain.Blog{}, thumbnail, detailImage, true)
	if err = prepareImages(ctx, s.assets, slots...); err != nil {
		return
	}

	owner := AssetOwner{Collection: "blogs"}
	images := bson.M{}
	fresh, _, err := uploadImages(ctx, s.assets, owner, images, slots...)
	if err != nil {
		return
	}

	blog := domain.Blog{
		Title:          *data.Title,
		Content:        *data.Content,
		Thumbnail:      stringField(images, "thumbnail"),
		DetailImage:    stringField(images, "detailImage"),
		SEOTitle:       optional(data.SEOTitle),
		SEODescription: optional(data.SEODescription),
		SEOKeywords:    optional(data.SEOKeywords),
		IsPublic:       *data.IsPublic,
	}

	blog.ID, err = s.repo.AddBlog(ctx, blog)
	if err != nil {
		s.assets.Discard(ctx, owner, fresh...)
		return "", errs.New(errs.ErrPersistFailure, "Blog creation failed")
	}

	publishEvent(ctx, s.publisher, "blog_created", blog.ID.Hex(), blog)

	return blog.Title, nil
}

func (s *BlogServiceImpl) GetBlogByID(ctx context.Context, id string) (blog domain.Blog, err error) {
	blog, err = s.repo.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return blog, errs.New(errs.ErrNotFound, "Blog not found")
		}
		return
	}

	return blog, nil
}

func (s *BlogServiceImpl) GetBlogs(ctx context.Context) (data []dto.BlogSummary, err error) {
	blogs, err := s.repo.GetBlogs(ctx)
	if err != nil {
		return
	}

	data = make([]dto.BlogSummary, 0, len(blogs))
	for _, blog := range blogs {
		data = append(data, dto.BlogSummary{
			ID:        blog.ID.Hex(),
			Title:     blog.Title,
			Thumbnail: blog.Thumbnail,
			IsPublic:  blog.IsPublic,
		})
	}

	return data, nil
}

func (s *BlogServiceImpl) GetRecentBlogs(ctx context.Context) (data []dto.BlogCard, err error) {
	blogs, err := s.repo.GetRecentBlogs(ctx, recentLimit)
	if err != nil {
		return
	}

	data = make([]dto.BlogCard, 0, len(blogs))
	for _, blog := range blogs {
		data = append(data, dto.BlogCard{ID: blog.ID.Hex(), Title: blog.Title, Thumbnail: blog.Thumbnail})
	}

	return data, nil
}

func (s *BlogServiceImpl) UpdateBlog(ctx context.Context, id string, data dto.BlogUpdateRequest, thumbnail, detailImage asset.Upload) (blog domain.Blog, err error) {
	blog, err = s.GetBlogByID(ctx, id)
	if err != nil {
		return
	}

	fields := bson.M{}
	setIfChanged(fields, "title", data.Title, blog.Title)
	setIfChanged(fields, "content", data.Content, blog.Content)
	setIfChanged(fields, "seoTitle", data.SEOTitle, blog.SEOTitle)
	setIfChanged(fields, "seoDescription", data.SEODescription, blog.SEODescription)
	setIfChanged(fields, "seoKeywords", data.SEOKeywords, blog.SEOKeywords)
	setIfChanged(fields, "isPublic", data.IsPublic, blog.IsPublic)

	if len(fields) == 0 && thumbnail == nil && detailImage == nil {
		return blog, errs.New(errs.ErrNoOp, "No fields to update")
	}

	slots := blogImages(blog, thumbnail, detailImage, false)
	if err = prepareImages(ctx, s.assets, slots...); err != nil {
		return
	}

	owner := AssetOwner{Collection: "blogs", ID: blog.ID.Hex()}
	fresh, stale, err := uploadImages(ctx, s.assets, owner, fields, slots...)
	if err != nil {
		return
	}

	if err = s.repo.UpdateBlog(ctx, blog.ID, fields); err != nil {
		s.assets.Discard(ctx, owner, fresh...)
		if errors.Is(err, errs.ErrNotFound) {
			return blog, errs.New(errs.ErrNotFound, "Blog not found")
		}
		return blog, errs.New(errs.ErrPersistFailure, "Blog update failed")
	}

	s.assets.Discard(ctx, owner, stale...)
	publishEvent(ctx, s.publisher, "blog_updated", blog.ID.Hex(), fields)

	return s.GetBlogByID(ctx, id)
}

func (s *BlogServiceImpl) DeleteBlog(ctx context.Context, id string) (err error) {
	blog, err := s.GetBlogByID(ctx, id)
	if err != nil {
		return
	}

	s.assets.Discard(ctx, AssetOwner{Collection: "blogs", ID: blog.ID.Hex()}, blog.Thumbnail, blog.DetailImage)

	if err = s.repo.DeleteBlog(ctx, blog.ID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.New(errs.ErrNotFound, "Blog not found")
		}
		return errs.New(errs.ErrPersistFailure, "Blog delete failed")
	}

	publishEvent(ctx, s.publisher, "blog_deleted", blog.ID.Hex(), blog)

	return nil
}
