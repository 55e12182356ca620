package repository

import (
	"context"
	"time"

	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	productsCollection       = "products"
	categoriesCollection     = "categories"
	blogsCollection          = "blogs"
	bannersCollection        = "banners"
	bannerSlotsCollection    = "banner_slots"
	usersCollection          = "users"
	orphanedAssetsCollection = "orphaned_assets"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// Malformed ids cannot reference a stored document, so they read as not found.
func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errs.ErrNotFound
	}

	return objectID, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, component string, data interface{}) (primitive.ObjectID, error) {
	result, err := coll.InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, errs.ErrDuplicate
		}

		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, component string, filter interface{}) (data T, err error) {
	err = coll.FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return data, err
	}

	return data, nil
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, component string, id string) (data T, err error) {
	objectID, err := parseID(id)
	if err != nil {
		return
	}

	return findOne[T](ctx, coll, component, bson.D{{Key: "_id", Value: objectID}})
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, component string, filter interface{}, opts *options.FindOptions) (data []T, err error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	data = []T{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return data, nil
}

// updateByID sets only the given fields and bumps updatedAt.
func updateByID(ctx context.Context, coll *mongo.Collection, component string, id primitive.ObjectID, fields bson.M) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: set}}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrDuplicate
		}

		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, component string, id primitive.ObjectID) error {
	result, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return err
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func countAll(ctx context.Context, coll *mongo.Collection, component string) (int64, error) {
	count, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return 0, err
	}

	return count, nil
}

func stamp(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	*createdAt = now
	*updatedAt = now
}
