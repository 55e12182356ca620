package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const defaultDBName = "ecommerce"

func ConnectToMongoDB(uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Set client options
	clientOptions := options.Client().ApplyURI(uri)

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Check the connection
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	return client.Database(ResolveDBName(uri, dbName)), nil
}

// ResolveDBName prefers the explicit name, then the database in the URI path.
func ResolveDBName(uri, dbName string) string {
	if dbName != "" {
		return dbName
	}

	cs, err := connstring.Parse(uri)
	if err == nil && cs.Database != "" {
		return cs.Database
	}

	return defaultDBName
}

// EnsureIndexes creates the unique indexes that back name and email uniqueness.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		"categories": {
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"users": {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"orphaned_assets": {
			Keys:    bson.D{{Key: "publicId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	for collection, model := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "EnsureIndexes").Str("collection", collection).Msg("")
			return fmt.Errorf("creating index on %s: %w", collection, err)
		}
	}

	return nil
}
