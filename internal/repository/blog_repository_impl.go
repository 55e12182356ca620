package repository

import (
	"context"

	"github.com/alimikegami/content-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBBlogRepositoryImpl struct {
	coll *mongo.Collection
}

func CreateBlogRepository(db *mongo.Database) BlogRepository {
	return &MongoDBBlogRepositoryImpl{coll: db.Collection(blogsCollection)}
}

func (r *MongoDBBlogRepositoryImpl) AddBlog(ctx context.Context, data domain.Blog) (id primitive.ObjectID, err error) {
	stamp(&data.CreatedAt, &data.UpdatedAt)
	return insertOne(ctx, r.coll, "AddBlog", data)
}

func (r *MongoDBBlogRepositoryImpl) GetBlogByID(ctx context.Context, id string) (blog domain.Blog, err error) {
	return findByID[domain.Blog](ctx, r.coll, "GetBlogByID", id)
}

func (r *MongoDBBlogRepositoryImpl) GetBlogs(ctx context.Context) (data []domain.Blog, err error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetProjection(bson.D{
			{Key: "title", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "isPublic", Value: 1},
		})

	return findAll[domain.Blog](ctx, r.coll, "GetBlogs", bson.D{}, opts)
}

func (r *MongoDBBlogRepositoryImpl) GetRecentBlogs(ctx context.Context, limit int64) (data []domain.Blog, err error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetLimit(limit).
		SetProjection(bson.D{
			{Key: "title", Value: 1},
			{Key: "thumbnail", Value: 1},
		})

	return findAll[domain.Blog](ctx, r.coll, "GetRecentBlogs", bson.D{}, opts)
}

func (r *MongoDBBlogRepositoryImpl) UpdateBlog(ctx context.Context, id primitive.ObjectID, fields bson.M) (err error) {
	return updateByID(ctx, r.coll, "UpdateBlog", id, fields)
}

func (r *MongoDBBlogRepositoryImpl) DeleteBlog(ctx context.Context, id primitive.ObjectID) (err error) {
	return deleteByID(ctx, r.coll, "DeleteBlog", id)
}

func (r *MongoDBBlogRepositoryImpl) CountBlogs(ctx context.Context) (count int64, err error) {
	return countAll(ctx, r.coll, "CountBlogs")
}
