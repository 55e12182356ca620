package repository

import (
	"context"

	"github.com/alimikegami/content-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	coll *mongo.Collection
}

func CreateProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{coll: db.Collection(productsCollection)}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	stamp(&data.CreatedAt, &data.UpdatedAt)
	return insertOne(ctx, r.coll, "AddProduct", data)
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	return findByID[domain.Product](ctx, r.coll, "GetProductByID", id)
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetProjection(bson.D{
			{Key: "name", Value: 1},
			{Key: "category", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "amount", Value: 1},
			{Key: "discount", Value: 1},
			{Key: "sellingPrice", Value: 1},
			{Key: "isPublic", Value: 1},
		})

	return findAll[domain.Product](ctx, r.coll, "GetProducts", bson.D{}, opts)
}

func (r *MongoDBProductRepositoryImpl) GetRecentProducts(ctx context.Context, limit int64) (data []domain.Product, err error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetLimit(limit).
		SetProjection(bson.D{
			{Key: "name", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "affiliateLink", Value: 1},
			{Key: "sellingPrice", Value: 1},
		})

	return findAll[domain.Product](ctx, r.coll, "GetRecentProducts", bson.D{}, opts)
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, id primitive.ObjectID, fields bson.M) (err error) {
	return updateByID(ctx, r.coll, "UpdateProduct", id, fields)
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id primitive.ObjectID) (err error) {
	return deleteByID(ctx, r.coll, "DeleteProduct", id)
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context) (count int64, err error) {
	return countAll(ctx, r.coll, "CountProducts")
}
