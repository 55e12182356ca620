package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title          string             `bson:"title" json:"title"`
	Content        string             `bson:"content" json:"content"`
	Thumbnail      string             `bson:"thumbnail" json:"thumbnail"`
	DetailImage    string             `bson:"detailImage" json:"detailImage"`
	SEOTitle       string             `bson:"seoTitle" json:"seoTitle"`
	SEODescription string             `bson:"seoDescription" json:"seoDescription"`
	SEOKeywords    string             `bson:"seoKeywords" json:"seoKeywords"`
	IsPublic       bool               `bson:"isPublic" json:"isPublic"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
