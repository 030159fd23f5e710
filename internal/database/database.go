// Package database contains the logic for establishing connections to the
// MongoDB document store.
//
// It handles:
//   - creating the shared client (connection pooling is provided by the
//     driver)
//   - a bounded startup connectivity probe that tolerates an unreachable
//     server, because the API must boot and keep serving non-store endpoints
//     either way
//   - ensuring the unique indexes the write paths depend on
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gracelogistics/backend/internal/config"
)

// Collection names, matching what the original admin panel reads.
const (
	QuotesCollection       = "quotes"
	CalculationsCollection = "cbmcalculations"
	ContactsCollection     = "contacts"
	NewslettersCollection  = "newsletters"
)

// Database wraps the Mongo client and the application database handle.
type Database struct {
	Client *mongo.Client

	db  *mongo.Database
	log *zerolog.Logger
}

// New creates the Mongo client and probes connectivity once.
//
// The probe failing is NOT an error: the server may come up later, and the
// driver reconnects on its own. Only a malformed URI aborts startup.
func New(cfg *config.Config, log *zerolog.Logger) (*Database, error) {
	timeout := time.Duration(cfg.Mongo.ConnectTimeout) * time.Second

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerSelectionTimeout(timeout)

	if threshold := cfg.Observability.Logging.SlowQueryThreshold; threshold > 0 {
		opts.SetMonitor(slowQueryMonitor(log, threshold))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	database := &Database{
		Client: client,
		db:     client.Database(cfg.Mongo.Database),
		log:    log,
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error().Err(err).Msg("MongoDB not reachable at startup, continuing; store operations will fail until it comes up")
	} else {
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
	}

	return database, nil
}

// Collection returns a handle on the named collection.
func (db *Database) Collection(name string) *mongo.Collection {
	return db.db.Collection(name)
}

// Ping verifies live connectivity within the caller's context.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Connected reports current store reachability with a bounded probe.
// Used by the health endpoint and as the fail-fast pre-check before writes.
func (db *Database) Connected(ctx context.Context, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return db.Ping(ctx) == nil
}

// Close disconnects the client.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing MongoDB connection")
	return db.Client.Disconnect(ctx)
}

// slowQueryMonitor warns about store commands slower than threshold.
func slowQueryMonitor(log *zerolog.Logger, threshold time.Duration) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			if evt.Duration > threshold {
				log.Warn().
					Str("command", evt.CommandName).
					Dur("duration", evt.Duration).
					Msg("slow store command")
			}
		},
	}
}
