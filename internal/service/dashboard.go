package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/gracelogistics/backend/internal/database"
	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
)

// StatsStore runs one faceted count aggregation per collection.
type StatsStore interface {
	CollectionCounts(ctx context.Context, collection string, branches map[string]bson.M) (map[string]int64, error)
}

// DashboardService assembles the admin dashboard counters. Every call
// queries live; nothing is cached between requests.
type DashboardService struct {
	server *server.Server
	store  StatsStore
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(s *server.Server, store StatsStore) *DashboardService {
	return &DashboardService{server: s, store: store}
}

// Stats collects all dashboard counters, one aggregation round trip per
// collection. Time windows are computed in server-local time.
func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	now := time.Now()
	day := startOfDay(now)
	week := startOfWeek(now)
	month := startOfMonth(now)

	quotes, err := s.store.CollectionCounts(ctx, database.QuotesCollection, map[string]bson.M{
		"total":      {},
		"today":      {"createdAt": bson.M{"$gte": day}},
		"thisWeek":   {"createdAt": bson.M{"$gte": week}},
		"thisMonth":  {"createdAt": bson.M{"$gte": month}},
		"pending":    {"status": model.QuoteStatusPending},
		"processing": {"status": model.QuoteStatusProcessing},
		"quoted":     {"status": model.QuoteStatusQuoted},
	})
	if err != nil {
		return nil, err
	}

	calculations, err := s.store.CollectionCounts(ctx, database.CalculationsCollection, map[string]bson.M{
		"total":     {},
		"today":     {"createdAt": bson.M{"$gte": day}},
		"thisWeek":  {"createdAt": bson.M{"$gte": week}},
		"thisMonth": {"createdAt": bson.M{"$gte": month}},
	})
	if err != nil {
		return nil, err
	}

	contacts, err := s.store.CollectionCounts(ctx, database.ContactsCollection, map[string]bson.M{
		"total": {},
		"new":   {"status": model.ContactStatusNew},
		"today": {"createdAt": bson.M{"$gte": day}},
	})
	if err != nil {
		return nil, err
	}

	// Unsubscribed addresses stay in the collection but never count.
	newsletter, err := s.store.CollectionCounts(ctx, database.NewslettersCollection, map[string]bson.M{
		"total": {"status": model.NewsletterStatusActive},
		"today": {"status": model.NewsletterStatusActive, "createdAt": bson.M{"$gte": day}},
	})
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		Quotes: model.QuoteStats{
			Total:      quotes["total"],
			Today:      quotes["today"],
			ThisWeek:   quotes["thisWeek"],
			ThisMonth:  quotes["thisMonth"],
			Pending:    quotes["pending"],
			Processing: quotes["processing"],
			Quoted:     quotes["quoted"],
		},
		Calculations: model.CalculationStats{
			Total:     calculations["total"],
			Today:     calculations["today"],
			ThisWeek:  calculations["thisWeek"],
			ThisMonth: calculations["thisMonth"],
		},
		Contacts: model.ContactStats{
			Total: contacts["total"],
			New:   contacts["new"],
			Today: contacts["today"],
		},
		Newsletter: model.NewsletterStats{
			Total: newsletter["total"],
			Today: newsletter["today"],
		},
	}, nil
}

// startOfDay is local midnight of the day containing t.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek is local midnight of the most recent Sunday.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// startOfMonth is local midnight of the first day of t's month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
