package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gracelogistics/backend/internal/database"
	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
)

// ContactRepository persists contact-form and quick-quote submissions.
type ContactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository constructs a ContactRepository.
func NewContactRepository(s *server.Server) *ContactRepository {
	return &ContactRepository{
		coll: s.DB.Collection(database.ContactsCollection),
	}
}

// Insert stores a contact submission and backfills its generated id.
func (r *ContactRepository) Insert(ctx context.Context, contact *model.Contact) error {
	res, err := r.coll.InsertOne(ctx, contact)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid
	}
	return nil
}

// List returns one page of contacts newest-first plus the total count of
// documents matching the filter.
func (r *ContactRepository) List(ctx context.Context, filter model.ContactFilter) ([]model.Contact, int64, error) {
	query := buildContactQuery(filter)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, err
	}

	contacts := []model.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func buildContactQuery(filter model.ContactFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.FormType != "" {
		query["formType"] = filter.FormType
	}
	return query
}
