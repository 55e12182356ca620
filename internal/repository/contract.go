package repository

import (
	"context"

	"github.com/alimikegami/content-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetRecentProducts(ctx context.Context, limit int64) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, fields bson.M) (err error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (err error)
	CountProducts(ctx context.Context) (count int64, err error)
}

type CategoryRepository interface {
	AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error)
	GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error)
	GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryNames(ctx context.Context) (data []domain.Category, err error)
	GetRecentCategories(ctx context.Context, limit int64) (data []domain.Category, err error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) (err error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID) (err error)
	CountCategories(ctx context.Context) (count int64, err error)
}

type BlogRepository interface {
	AddBlog(ctx context.Context, data domain.Blog) (id primitive.ObjectID, err error)
	GetBlogByID(ctx context.Context, id string) (blog domain.Blog, err error)
	GetBlogs(ctx context.Context) (data []domain.Blog, err error)
	GetRecentBlogs(ctx context.Context, limit int64) (data []domain.Blog, err error)
	UpdateBlog(ctx context.Context, id primitive.ObjectID, fields bson.M) (err error)
	DeleteBlog(ctx context.Context, id primitive.ObjectID) (err error)
	CountBlogs(ctx context.Context) (count int64, err error)
}

type BannerRepository interface {
	AddBanner(ctx context.Context, data domain.Banner) (id primitive.ObjectID, err error)
	GetBannerByID(ctx context.Context, id string) (banner domain.Banner, err error)
	GetBanners(ctx context.Context) (data []domain.Banner, err error)
	GetRecentBanners(ctx context.Context, limit int64) (data []domain.Banner, err error)
	UpdateBanner(ctx context.Context, id primitive.ObjectID, fields bson.M) (err error)
	DeleteBanner(ctx context.Context, id primitive.ObjectID) (err error)
	CountBanners(ctx context.Context) (count int64, err error)
	// ReserveBannerSlot fails with errs.ErrLimitExceeded once every slot is taken.
	ReserveBannerSlot(ctx context.Context) (err error)
	ReleaseBannerSlot(ctx context.Context) (err error)
	SyncBannerSlots(ctx context.Context) (err error)
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
}

type OrphanedAssetRepository interface {
	AddOrphanedAsset(ctx context.Context, data domain.OrphanedAsset) (err error)
	GetOrphanedAssets(ctx context.Context, limit int64) (data []domain.OrphanedAsset, err error)
	DeleteOrphanedAsset(ctx context.Context, id primitive.ObjectID) (err error)
	MarkOrphanedAssetAttempt(ctx context.Context, id primitive.ObjectID, reason string) (err error)
}
