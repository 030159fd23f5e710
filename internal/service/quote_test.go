package service

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracelogistics/backend/internal/errs"
	"github.com/gracelogistics/backend/internal/model"
)

type fakeQuoteStore struct {
	insertFn       func(ctx context.Context, quote *model.Quote) error
	listFn         func(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, int64, error)
	allFn          func(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, error)
	updateStatusFn func(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) (*model.Quote, error)

	inserted []model.Quote
}

func (f *fakeQuoteStore) Insert(ctx context.Context, quote *model.Quote) error {
	if f.insertFn != nil {
		if err := f.insertFn(ctx, quote); err != nil {
			return err
		}
	}
	f.inserted = append(f.inserted, *quote)
	return nil
}

func (f *fakeQuoteStore) List(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, int64, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeQuoteStore) All(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, error) {
	return f.allFn(ctx, filter)
}

func (f *fakeQuoteStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) (*model.Quote, error) {
	return f.updateStatusFn(ctx, id, status, updatedAt)
}

type fakeConn struct {
	connected bool
}

func (f fakeConn) Connected(ctx context.Context, timeout time.Duration) bool {
	return f.connected
}

func newTestQuoteService(store QuoteStore, conn ConnChecker) *QuoteService {
	log := zerolog.Nop()
	return &QuoteService{
		store:    store,
		conn:     conn,
		notifier: NewNotifier(nil, &log),
	}
}

func duplicateKeyErr() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: `E11000 duplicate key error collection: gracelog.quotes index: referenceNo_1 dup key: { referenceNo: "GRL12345678" }`,
		}},
	}
}

func TestQuoteCreateAssignsReference(t *testing.T) {
	store := &fakeQuoteStore{}
	svc := newTestQuoteService(store, fakeConn{connected: true})

	quote, err := svc.Create(context.Background(), QuoteInput{
		FirstName:     "  Ayşe ",
		LastName:      "Yılmaz",
		Email:         " Ayse@Example.COM ",
		Phone:         "+90 555 000 00 00",
		ServiceType:   model.ServiceTypeSea,
		OriginCountry: "Türkiye",
		OriginCity:    "Istanbul",
		DestCountry:   "Germany",
		DestCity:      "Hamburg",
		TotalWeight:   1200,
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^GRL\d{8}$`), quote.ReferenceNo)
	assert.Equal(t, "Ayşe", quote.FirstName)
	assert.Equal(t, "ayse@example.com", quote.Email)
	assert.Equal(t, model.QuoteStatusPending, quote.Status)
	assert.Equal(t, "tr", quote.Language)
	assert.False(t, quote.CreatedAt.IsZero())
	assert.Equal(t, quote.CreatedAt, quote.UpdatedAt)
	require.Len(t, store.inserted, 1)
}

func TestQuoteCreateFailsFastWhenDisconnected(t *testing.T) {
	store := &fakeQuoteStore{}
	svc := newTestQuoteService(store, fakeConn{connected: false})

	_, err := svc.Create(context.Background(), QuoteInput{FirstName: "x", TotalWeight: 1})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 503, httpErr.Status)
	assert.Empty(t, store.inserted)
}

func TestQuoteCreateRetriesReferenceCollision(t *testing.T) {
	attempts := 0
	store := &fakeQuoteStore{
		insertFn: func(ctx context.Context, quote *model.Quote) error {
			attempts++
			if attempts == 1 {
				return duplicateKeyErr()
			}
			return nil
		},
	}
	svc := newTestQuoteService(store, fakeConn{connected: true})

	quote, err := svc.Create(context.Background(), QuoteInput{
		FirstName: "a", Email: "a@b.c", ServiceType: model.ServiceTypeAir,
		OriginCountry: "TR", OriginCity: "IST", DestCountry: "DE", DestCity: "HAM",
		TotalWeight: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	// Retried reference keeps the original prefix and gains three digits.
	assert.Regexp(t, regexp.MustCompile(`^GRL\d{11}$`), quote.ReferenceNo)
}

func TestQuoteCreateSurfacesOriginalErrorWhenRetryFails(t *testing.T) {
	first := duplicateKeyErr()
	attempts := 0
	store := &fakeQuoteStore{
		insertFn: func(ctx context.Context, quote *model.Quote) error {
			attempts++
			if attempts == 1 {
				return first
			}
			return duplicateKeyErr()
		},
	}
	svc := newTestQuoteService(store, fakeConn{connected: true})

	_, err := svc.Create(context.Background(), QuoteInput{FirstName: "a", TotalWeight: 1})
	require.Error(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, first, err)
}

func TestQuoteListNormalizesPagination(t *testing.T) {
	var seen model.QuoteFilter
	store := &fakeQuoteStore{
		listFn: func(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, int64, error) {
			seen = filter
			return []model.Quote{{}, {}}, 25, nil
		},
	}
	svc := newTestQuoteService(store, fakeConn{connected: true})

	list, err := svc.List(context.Background(), model.QuoteFilter{Page: 0, Limit: 0})
	require.NoError(t, err)

	assert.Equal(t, 1, seen.Page)
	assert.Equal(t, 10, seen.Limit)
	assert.Equal(t, int64(25), list.Total)
	assert.Equal(t, 3, list.TotalPages)
	assert.Equal(t, 1, list.Page)
}

func TestQuoteListEmptyHasZeroPages(t *testing.T) {
	store := &fakeQuoteStore{
		listFn: func(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, int64, error) {
			return nil, 0, nil
		},
	}
	svc := newTestQuoteService(store, fakeConn{connected: true})

	list, err := svc.List(context.Background(), model.QuoteFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, list.TotalPages)
}

func TestQuoteUpdateStatusNotFound(t *testing.T) {
	store := &fakeQuoteStore{
		updateStatusFn: func(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) (*model.Quote, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := newTestQuoteService(store, fakeConn{connected: true})

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), model.QuoteStatusQuoted)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}

func TestQuoteExportCSV(t *testing.T) {
	cbm := 2.5
	store := &fakeQuoteStore{
		allFn: func(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, error) {
			return []model.Quote{{
				ReferenceNo: "GRL00000001",
				FirstName:   "Ali",
				LastName:    "Veli",
				Email:       "ali@example.com",
				ServiceType: model.ServiceTypeRoad,
				TotalWeight: 100,
				TotalCBM:    &cbm,
				Status:      model.QuoteStatusPending,
				Language:    "tr",
				CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			}}, nil
		},
	}
	svc := newTestQuoteService(store, fakeConn{connected: true})

	data, err := svc.ExportCSV(context.Background(), model.QuoteFilter{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.Contains(t, lines[1], "GRL00000001")
	assert.Contains(t, lines[1], "2.5")
	assert.Contains(t, lines[1], "2025-06-01T12:00:00Z")
}

func TestNewReferenceNo(t *testing.T) {
	now := time.UnixMilli(1717243800123)
	ref := newReferenceNo(now)

	assert.Len(t, ref, 11)
	assert.True(t, strings.HasPrefix(ref, "GRL"))
	assert.Equal(t, "43800123", ref[3:])
}
