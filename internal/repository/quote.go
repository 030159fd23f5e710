package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gracelogistics/backend/internal/database"
	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
)

// quoteSearchFields are the fields the admin search box matches against.
var quoteSearchFields = []string{"referenceNo", "firstName", "lastName", "email", "company"}

// QuoteRepository persists and queries freight-quote requests.
type QuoteRepository struct {
	coll *mongo.Collection
}

// NewQuoteRepository constructs a QuoteRepository.
func NewQuoteRepository(s *server.Server) *QuoteRepository {
	return &QuoteRepository{
		coll: s.DB.Collection(database.QuotesCollection),
	}
}

// Insert stores a new quote. A unique-index violation on referenceNo is
// returned as the raw driver error so callers can run the regenerate-retry
// path before the error funnel sees it.
func (r *QuoteRepository) Insert(ctx context.Context, quote *model.Quote) error {
	res, err := r.coll.InsertOne(ctx, quote)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		quote.ID = oid
	}
	return nil
}

// List returns a page of quotes newest-first, plus the total count matching
// the filter.
func (r *QuoteRepository) List(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, int64, error) {
	query := buildQuoteQuery(filter)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, err
	}

	quotes := []model.Quote{}
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return quotes, total, nil
}

// All returns every quote matching the filter, newest-first, without
// pagination. Used by the CSV export.
func (r *QuoteRepository) All(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, error) {
	query := buildQuoteQuery(filter)

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	quotes := []model.Quote{}
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// UpdateStatus sets a quote's status and refreshes updatedAt, returning the
// updated document. mongo.ErrNoDocuments is returned when id is unknown.
func (r *QuoteRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) (*model.Quote, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": updatedAt}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var quote model.Quote
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&quote)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// buildQuoteQuery translates a QuoteFilter into a Mongo query document.
// Search is a case-insensitive substring OR across quoteSearchFields, with
// regex metacharacters escaped so user input can't act as a pattern.
func buildQuoteQuery(filter model.QuoteFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		or := make([]bson.M, 0, len(quoteSearchFields))
		for _, field := range quoteSearchFields {
			or = append(or, bson.M{field: pattern})
		}
		query["$or"] = or
	}
	return query
}
