package testutil

import (
	"context"
	"sync"

	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository struct {
	collection[domain.Product]
	InsertErr error
	UpdateErr error
}

func (r *ProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	if r.InsertErr != nil {
		return primitive.NilObjectID, r.InsertErr
	}
	return r.insert(data)
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	return r.findByHex(id)
}

func (r *ProductRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return r.newest(0), nil
}

func (r *ProductRepository) GetRecentProducts(ctx context.Context, limit int64) ([]domain.Product, error) {
	return r.newest(limit), nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	return r.update(id, fields)
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return r.remove(id)
}

func (r *ProductRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(), nil
}

type CategoryRepository struct {
	collection[domain.Category]
}

func NewCategoryRepository() *CategoryRepository {
	r := &CategoryRepository{}
	r.unique = "name"
	return r
}

func (r *CategoryRepository) AddCategory(ctx context.Context, data domain.Category) (primitive.ObjectID, error) {
	return r.insert(data)
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id string) (domain.Category, error) {
	return r.findByHex(id)
}

func (r *CategoryRepository) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	return r.findBy("name", name)
}

func (r *CategoryRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return r.newest(0), nil
}

func (r *CategoryRepository) GetCategoryNames(ctx context.Context) ([]domain.Category, error) {
	return r.sortedBy("name"), nil
}

func (r *CategoryRepository) GetRecentCategories(ctx context.Context, limit int64) ([]domain.Category, error) {
	return r.newest(limit), nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return r.update(id, fields)
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	return r.remove(id)
}

func (r *CategoryRepository) CountCategories(ctx context.Context) (int64, error) {
	return r.count(), nil
}

type BlogRepository struct {
	collection[domain.Blog]
}

func (r *BlogRepository) AddBlog(ctx context.Context, data domain.Blog) (primitive.ObjectID, error) {
	return r.insert(data)
}

func (r *BlogRepository) GetBlogByID(ctx context.Context, id string) (domain.Blog, error) {
	return r.findByHex(id)
}

func (r *BlogRepository) GetBlogs(ctx context.Context) ([]domain.Blog, error) {
	return r.newest(0), nil
}

func (r *BlogRepository) GetRecentBlogs(ctx context.Context, limit int64) ([]domain.Blog, error) {
	return r.newest(limit), nil
}

func (r *BlogRepository) UpdateBlog(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return r.update(id, fields)
}

func (r *BlogRepository) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	return r.remove(id)
}

func (r *BlogRepository) CountBlogs(ctx context.Context) (int64, error) {
	return r.count(), nil
}

type BannerRepository struct {
	collection[domain.Banner]
	slotMu sync.Mutex
	Slots  int
}

func (r *BannerRepository) AddBanner(ctx context.Context, data domain.Banner) (primitive.ObjectID, error) {
	return r.insert(data)
}

func (r *BannerRepository) GetBannerByID(ctx context.Context, id string) (domain.Banner, error) {
	return r.findByHex(id)
}

func (r *BannerRepository) GetBanners(ctx context.Context) ([]domain.Banner, error) {
	return r.newest(0), nil
}

func (r *BannerRepository) GetRecentBanners(ctx context.Context, limit int64) ([]domain.Banner, error) {
	return r.newest(limit), nil
}

func (r *BannerRepository) UpdateBanner(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return r.update(id, fields)
}

func (r *BannerRepository) DeleteBanner(ctx context.Context, id primitive.ObjectID) error {
	return r.remove(id)
}

func (r *BannerRepository) CountBanners(ctx context.Context) (int64, error) {
	return r.count(), nil
}

func (r *BannerRepository) ReserveBannerSlot(ctx context.Context) error {
	r.slotMu.Lock()
	defer r.slotMu.Unlock()

	if r.Slots >= domain.MaxBanners {
		return errs.ErrLimitExceeded
	}
	r.Slots++
	return nil
}

func (r *BannerRepository) ReleaseBannerSlot(ctx context.Context) error {
	r.slotMu.Lock()
	defer r.slotMu.Unlock()

	if r.Slots > 0 {
		r.Slots--
	}
	return nil
}

func (r *BannerRepository) SyncBannerSlots(ctx context.Context) error {
	r.slotMu.Lock()
	defer r.slotMu.Unlock()

	r.Slots = int(r.count())
	return nil
}

type UserRepository struct {
	collection[domain.User]
}

func NewUserRepository() *UserRepository {
	r := &UserRepository{}
	r.unique = "email"
	return r
}

func (r *UserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	return r.insert(data)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findBy("email", email)
}

type OrphanedAssetRepository struct {
	mu     sync.Mutex
	Assets []domain.OrphanedAsset
}

func (r *OrphanedAssetRepository) AddOrphanedAsset(ctx context.Context, data domain.OrphanedAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range r.Assets {
		if r.Assets[i].PublicID == data.PublicID {
			r.Assets[i].Reason = data.Reason
			return nil
		}
	}

	data.ID = primitive.NewObjectID()
	r.Assets = append(r.Assets, data)
	return nil
}

func (r *OrphanedAssetRepository) GetOrphanedAssets(ctx context.Context, limit int64) ([]domain.OrphanedAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.OrphanedAsset, 0, len(r.Assets))
	for _, a := range r.Assets {
		if limit > 0 && int64(len(out)) == limit {
			break
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *OrphanedAssetRepository) DeleteOrphanedAsset(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Assets {
		if r.Assets[i].ID == id {
			r.Assets = append(r.Assets[:i], r.Assets[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *OrphanedAssetRepository) MarkOrphanedAssetAttempt(ctx context.Context, id primitive.ObjectID, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Assets {
		if r.Assets[i].ID == id {
			r.Assets[i].Attempts++
			r.Assets[i].Reason = reason
			return nil
		}
	}
	return errs.ErrNotFound
}
