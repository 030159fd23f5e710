package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Newsletter subscription statuses.
const (
	NewsletterStatusActive       = "active"
	NewsletterStatusUnsubscribed = "unsubscribed"
)

// Newsletter is a mailing-list subscription. Email carries a unique index;
// a duplicate subscription attempt is rejected by the store.
type Newsletter struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Status    string             `bson:"status" json:"status"`
	Language  string             `bson:"language" json:"language"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
