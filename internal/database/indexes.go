package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the write paths rely on:
// quotes.referenceNo and newsletters.email. CreateOne is idempotent for an
// identical existing index, so this runs on every boot.
//
// Callers treat a failure as non-fatal (the store may simply be down at
// boot); the duplicate-key guarantees then hold only once the indexes exist.
func (db *Database) EnsureIndexes(ctx context.Context) error {
	uniqueOn := map[string]string{
		QuotesCollection:      "referenceNo",
		NewslettersCollection: "email",
	}

	for collection, field := range uniqueOn {
		_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
		db.log.Debug().
			Str("collection", collection).
			Str("field", field).
			Msg("unique index ensured")
	}

	return nil
}
