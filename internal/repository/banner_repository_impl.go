package repository

import (
	"context"
	"time"

	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	bannerSlotsID = "banners"
	// A reservation older than this is assumed to belong to a request that died.
	bannerSlotGrace = time.Minute
)

type MongoDBBannerRepositoryImpl struct {
	coll  *mongo.Collection
	slots *mongo.Collection
}

func CreateBannerRepository(db *mongo.Database) BannerRepository {
	return &MongoDBBannerRepositoryImpl{
		coll:  db.Collection(bannersCollection),
		slots: db.Collection(bannerSlotsCollection),
	}
}

func (r *MongoDBBannerRepositoryImpl) AddBanner(ctx context.Context, data domain.Banner) (id primitive.ObjectID, err error) {
	stamp(&data.CreatedAt, &data.UpdatedAt)
	return insertOne(ctx, r.coll, "AddBanner", data)
}

func (r *MongoDBBannerRepositoryImpl) GetBannerByID(ctx context.Context, id string) (banner domain.Banner, err error) {
	return findByID[domain.Banner](ctx, r.coll, "GetBannerByID", id)
}

func (r *MongoDBBannerRepositoryImpl) GetBanners(ctx context.Context) (data []domain.Banner, err error) {
	opts := options.Find().SetSort(newestFirst).SetProjection(bson.D{{Key: "image", Value: 1}})

	return findAll[domain.Banner](ctx, r.coll, "GetBanners", bson.D{}, opts)
}

func (r *MongoDBBannerRepositoryImpl) GetRecentBanners(ctx context.Context, limit int64) (data []domain.Banner, err error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(limit).SetProjection(bson.D{{Key: "image", Value: 1}})

	return findAll[domain.Banner](ctx, r.coll, "GetRecentBanners", bson.D{}, opts)
}

func (r *MongoDBBannerRepositoryImpl) UpdateBanner(ctx context.Context, id primitive.ObjectID, fields bson.M) (err error) {
	return updateByID(ctx, r.coll, "UpdateBanner", id, fields)
}

func (r *MongoDBBannerRepositoryImpl) DeleteBanner(ctx context.Context, id primitive.ObjectID) (err error) {
	return deleteByID(ctx, r.coll, "DeleteBanner", id)
}

func (r *MongoDBBannerRepositoryImpl) CountBanners(ctx context.Context) (count int64, err error) {
	return countAll(ctx, r.coll, "CountBanners")
}

// ReserveBannerSlot increments the slot counter only while it is below the
// limit. When the counter is full the filter misses, the upsert collides with
// the existing _id and the duplicate key error becomes the limit signal.
func (r *MongoDBBannerRepositoryImpl) ReserveBannerSlot(ctx context.Context) (err error) {
	filter := bson.D{
		{Key: "_id", Value: bannerSlotsID},
		{Key: "count", Value: bson.D{{Key: "$lt", Value: domain.MaxBanners}}},
	}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "count", Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	// Two first-ever reservations can race on the upsert; the second try sees the document.
	for attempt := 0; attempt < 2; attempt++ {
		_, err = r.slots.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err == nil {
			return nil
		}

		if !mongo.IsDuplicateKeyError(err) {
			log.Ctx(ctx).Error().Err(err).Str("component", "ReserveBannerSlot").Msg("")
			return err
		}
	}

	return errs.ErrLimitExceeded
}

func (r *MongoDBBannerRepositoryImpl) ReleaseBannerSlot(ctx context.Context) (err error) {
	filter := bson.D{
		{Key: "_id", Value: bannerSlotsID},
		{Key: "count", Value: bson.D{{Key: "$gt", Value: 0}}},
	}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "count", Value: -1}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	_, err = r.slots.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ReleaseBannerSlot").Msg("")
		return err
	}

	return nil
}

// SyncBannerSlots resets the counter to the stored banner count, skipping the
// reset while a reservation is recent enough to still be in flight. A missing
// counter is created from the count first, so a database that already holds
// banners is guarded before the first reservation.
func (r *MongoDBBannerRepositoryImpl) SyncBannerSlots(ctx context.Context) (err error) {
	count, err := r.CountBanners(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	seed := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "count", Value: count},
		{Key: "updatedAt", Value: now},
	}}}
	_, err = r.slots.UpdateOne(ctx, bson.D{{Key: "_id", Value: bannerSlotsID}}, seed, options.Update().SetUpsert(true))
	// a concurrent first reservation may have created it already
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		log.Ctx(ctx).Error().Err(err).Str("component", "SyncBannerSlots").Msg("")
		return err
	}

	filter := bson.D{
		{Key: "_id", Value: bannerSlotsID},
		{Key: "updatedAt", Value: bson.D{{Key: "$lt", Value: now.Add(-bannerSlotGrace)}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "count", Value: count}}}}

	_, err = r.slots.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SyncBannerSlots").Msg("")
		return err
	}

	return nil
}
