package repository

import (
	"context"

	"github.com/alimikegami/content-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBUserRepositoryImpl struct {
	coll *mongo.Collection
}

func CreateUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{coll: db.Collection(usersCollection)}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	stamp(&data.CreatedAt, &data.UpdatedAt)
	return insertOne(ctx, r.coll, "AddUser", data)
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	return findOne[domain.User](ctx, r.coll, "GetUserByEmail", bson.D{{Key: "email", Value: email}})
}
