package repository

import (
	"context"
	"time"

	"github.com/alimikegami/content-service/internal/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBOrphanedAssetRepositoryImpl struct {
	coll *mongo.Collection
}

func CreateOrphanedAssetRepository(db *mongo.Database) OrphanedAssetRepository {
	return &MongoDBOrphanedAssetRepositoryImpl{coll: db.Collection(orphanedAssetsCollection)}
}

// AddOrphanedAsset upserts by public id so repeated failures for the same asset
// keep a single ledger entry.
func (r *MongoDBOrphanedAssetRepositoryImpl) AddOrphanedAsset(ctx context.Context, data domain.OrphanedAsset) (err error) {
	now := time.Now().UTC()
	filter := bson.D{{Key: "publicId", Value: data.PublicID}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "url", Value: data.URL},
			{Key: "collection", Value: data.Collection},
			{Key: "ownerId", Value: data.OwnerID},
			{Key: "reason", Value: data.Reason},
			{Key: "updatedAt", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "attempts", Value: 0},
			{Key: "createdAt", Value: now},
		}},
	}

	_, err = r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrphanedAsset").Msg("")
		return err
	}

	return nil
}

func (r *MongoDBOrphanedAssetRepositoryImpl) GetOrphanedAssets(ctx context.Context, limit int64) (data []domain.OrphanedAsset, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: 1}}).SetLimit(limit)

	return findAll[domain.OrphanedAsset](ctx, r.coll, "GetOrphanedAssets", bson.D{}, opts)
}

func (r *MongoDBOrphanedAssetRepositoryImpl) DeleteOrphanedAsset(ctx context.Context, id primitive.ObjectID) (err error) {
	return deleteByID(ctx, r.coll, "DeleteOrphanedAsset", id)
}

func (r *MongoDBOrphanedAssetRepositoryImpl) MarkOrphanedAssetAttempt(ctx context.Context, id primitive.ObjectID, reason string) (err error) {
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "attempts", Value: 1}}},
		{Key: "$set", Value: bson.D{
			{Key: "reason", Value: reason},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	}

	_, err = r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkOrphanedAssetAttempt").Msg("")
		return err
	}

	return nil
}
