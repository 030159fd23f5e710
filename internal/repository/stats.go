package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/gracelogistics/backend/internal/server"
)

// StatsRepository runs the counting aggregations behind the dashboard.
type StatsRepository struct {
	server *server.Server
}

// NewStatsRepository constructs a StatsRepository.
func NewStatsRepository(s *server.Server) *StatsRepository {
	return &StatsRepository{server: s}
}

type facetCount struct {
	N int64 `bson:"n"`
}

// CollectionCounts runs a single $facet aggregation over the named
// collection. Each branch is a $match filter whose matching documents are
// counted; an empty filter counts the whole collection. One round trip
// replaces the burst of parallel countDocuments calls the dashboard would
// otherwise need.
func (r *StatsRepository) CollectionCounts(ctx context.Context, collection string, branches map[string]bson.M) (map[string]int64, error) {
	facets := bson.M{}
	for name, match := range branches {
		pipeline := bson.A{}
		if len(match) > 0 {
			pipeline = append(pipeline, bson.M{"$match": match})
		}
		pipeline = append(pipeline, bson.M{"$count": "n"})
		facets[name] = pipeline
	}

	cursor, err := r.server.DB.Collection(collection).Aggregate(ctx, bson.A{
		bson.M{"$facet": facets},
	})
	if err != nil {
		return nil, err
	}

	var results []map[string][]facetCount
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(branches))
	for name := range branches {
		counts[name] = 0
	}
	if len(results) > 0 {
		for name, docs := range results[0] {
			// $count emits no document when nothing matched.
			if len(docs) > 0 {
				counts[name] = docs[0].N
			}
		}
	}

	return counts, nil
}
