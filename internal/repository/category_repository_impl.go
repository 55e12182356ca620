package repository

import (
	"context"

	"github.com/alimikegami/content-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBCategoryRepositoryImpl struct {
	coll *mongo.Collection
}

func CreateCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{coll: db.Collection(categoriesCollection)}
}

var categorySummary = bson.D{
	{Key: "name", Value: 1},
	{Key: "thumbnail", Value: 1},
	{Key: "isPublic", Value: 1},
}

func (r *MongoDBCategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error) {
	stamp(&data.CreatedAt, &data.UpdatedAt)
	return insertOne(ctx, r.coll, "AddCategory", data)
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error) {
	return findByID[domain.Category](ctx, r.coll, "GetCategoryByID", id)
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error) {
	return findOne[domain.Category](ctx, r.coll, "GetCategoryByName", bson.D{{Key: "name", Value: name}})
}

func (r *MongoDBCategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	opts := options.Find().SetSort(newestFirst).SetProjection(categorySummary)

	return findAll[domain.Category](ctx, r.coll, "GetCategories", bson.D{}, opts)
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryNames(ctx context.Context) (data []domain.Category, err error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetProjection(bson.D{{Key: "name", Value: 1}})

	return findAll[domain.Category](ctx, r.coll, "GetCategoryNames", bson.D{}, opts)
}

func (r *MongoDBCategoryRepositoryImpl) GetRecentCategories(ctx context.Context, limit int64) (data []domain.Category, err error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(limit).SetProjection(categorySummary)

	return findAll[domain.Category](ctx, r.coll, "GetRecentCategories", bson.D{}, opts)
}

func (r *MongoDBCategoryRepositoryImpl) UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) (err error) {
	return updateByID(ctx, r.coll, "UpdateCategory", id, fields)
}

func (r *MongoDBCategoryRepositoryImpl) DeleteCategory(ctx context.Context, id primitive.ObjectID) (err error) {
	return deleteByID(ctx, r.coll, "DeleteCategory", id)
}

func (r *MongoDBCategoryRepositoryImpl) CountCategories(ctx context.Context) (count int64, err error) {
	return countAll(ctx, r.coll, "CountCategories")
}
