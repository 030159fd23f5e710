package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracelogistics/backend/internal/database"
	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
)

// NewsletterRepository persists newsletter subscriptions. Uniqueness on the
// email field is enforced by a unique index, not by an application-level
// pre-check, so concurrent subscribes cannot race past each other.
type NewsletterRepository struct {
	coll *mongo.Collection
}

// NewNewsletterRepository constructs a NewsletterRepository.
func NewNewsletterRepository(s *server.Server) *NewsletterRepository {
	return &NewsletterRepository{
		coll: s.DB.Collection(database.NewslettersCollection),
	}
}

// Insert stores a subscription. Returns the raw driver error so callers can
// classify duplicate-key failures.
func (r *NewsletterRepository) Insert(ctx context.Context, sub *model.Newsletter) error {
	res, err := r.coll.InsertOne(ctx, sub)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}
	return nil
}
