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

// CalculationRepository persists CBM calculator submissions.
type CalculationRepository struct {
	coll *mongo.Collection
}

// NewCalculationRepository constructs a CalculationRepository.
func NewCalculationRepository(s *server.Server) *CalculationRepository {
	return &CalculationRepository{
		coll: s.DB.Collection(database.CalculationsCollection),
	}
}

// Insert stores a calculation record exactly as built by the service.
func (r *CalculationRepository) Insert(ctx context.Context, calc *model.CBMCalculation) error {
	res, err := r.coll.InsertOne(ctx, calc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		calc.ID = oid
	}
	return nil
}

// List returns one page of calculation records newest-first plus the total
// count. No filters beyond pagination.
func (r *CalculationRepository) List(ctx context.Context, page model.PageFilter) ([]model.CBMCalculation, int64, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page.Page - 1) * page.Limit)).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, 0, err
	}

	calculations := []model.CBMCalculation{}
	if err := cursor.All(ctx, &calculations); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return calculations, total, nil
}
