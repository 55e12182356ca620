package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxBanners is the number of banners the storefront carousel can hold.
const MaxBanners = 3

type Banner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
