package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name               string             `bson:"name" json:"name"`
	ProductDescription string             `bson:"productDescription" json:"productDescription"`
	ProductDetail      string             `bson:"productDetail" json:"productDetail"`
	AffiliateLink      string             `bson:"affiliateLink" json:"affiliateLink"`
	Category           string             `bson:"category" json:"category"`
	Thumbnail          string             `bson:"thumbnail" json:"thumbnail"`
	BigImage           string             `bson:"bigImage" json:"bigImage"`
	Quantity           int64              `bson:"quantity" json:"quantity"`
	Amount             float64            `bson:"amount" json:"amount"`
	Discount           float64            `bson:"discount" json:"discount"`
	SellingPrice       float64            `bson:"sellingPrice" json:"sellingPrice"`
	IsPublic           bool               `bson:"isPublic" json:"isPublic"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
