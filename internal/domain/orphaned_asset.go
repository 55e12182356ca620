package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrphanedAsset is a hosted image whose deletion failed and still needs cleanup.
type OrphanedAsset struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PublicID   string             `bson:"publicId" json:"publicId"`
	URL        string             `bson:"url" json:"url"`
	Collection string             `bson:"collection" json:"collection"`
	OwnerID    string             `bson:"ownerId" json:"ownerId"`
	Reason     string             `bson:"reason" json:"reason"`
	Attempts   int                `bson:"attempts" json:"attempts"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
