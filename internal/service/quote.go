package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracelogistics/backend/internal/errs"
	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/mongoerr"
	"github.com/gracelogistics/backend/internal/server"
)

// connCheckTimeout bounds the pre-write connectivity probe so an
// unreachable store turns into an immediate 503 instead of a hung request.
const connCheckTimeout = 2 * time.Second

// QuoteStore is the persistence surface the quote service needs.
type QuoteStore interface {
	Insert(ctx context.Context, quote *model.Quote) error
	List(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, int64, error)
	All(ctx context.Context, filter model.QuoteFilter) ([]model.Quote, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) (*model.Quote, error)
}

// ConnChecker reports whether the store is currently reachable.
type ConnChecker interface {
	Connected(ctx context.Context, timeout time.Duration) bool
}

// QuoteInput is a quote-form submission after binding and validation.
// String fields may still carry surrounding whitespace; Create trims them.
type QuoteInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string

	ServiceType   string
	Incoterms     string
	OriginCountry string
	OriginCity    string
	DestCountry   string
	DestCity      string

	TotalWeight float64
	TotalCBM    *float64

	AdditionalServices model.AdditionalServices
	Notes              string
	Language           string
}

// QuoteList is one page of quotes plus the pagination envelope.
type QuoteList struct {
	Quotes     []model.Quote
	Total      int64
	TotalPages int
	Page       int
}

// QuoteService owns quote-request business logic: reference assignment,
// normalization, listing and status management.
type QuoteService struct {
	server   *server.Server
	store    QuoteStore
	conn     ConnChecker
	notifier *Notifier
}

// NewQuoteService constructs a QuoteService backed by the live store.
func NewQuoteService(s *server.Server, store QuoteStore, notifier *Notifier) *QuoteService {
	return &QuoteService{
		server:   s,
		store:    store,
		conn:     s.DB,
		notifier: notifier,
	}
}

// Create stores a new quote request and assigns it a reference number.
//
// The store is probed first so a customer-facing form submit fails fast
// with a 503 when the database is down, rather than timing out. On a
// reference collision the insert is retried once with extra random digits;
// if the retry also fails the original error is surfaced.
func (s *QuoteService) Create(ctx context.Context, in QuoteInput) (*model.Quote, error) {
	if !s.conn.Connected(ctx, connCheckTimeout) {
		return nil, errs.NewServiceUnavailableError("Service temporarily unavailable. Please try again later.")
	}

	now := time.Now()
	quote := &model.Quote{
		ReferenceNo: newReferenceNo(now),

		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Company:   strings.TrimSpace(in.Company),

		ServiceType:   in.ServiceType,
		Incoterms:     in.Incoterms,
		OriginCountry: strings.TrimSpace(in.OriginCountry),
		OriginCity:    strings.TrimSpace(in.OriginCity),
		DestCountry:   strings.TrimSpace(in.DestCountry),
		DestCity:      strings.TrimSpace(in.DestCity),

		TotalWeight: in.TotalWeight,
		TotalCBM:    in.TotalCBM,

		AdditionalServices: in.AdditionalServices,
		Notes:              strings.TrimSpace(in.Notes),

		Status:    model.QuoteStatusPending,
		Language:  defaultLanguage(in.Language),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Insert(ctx, quote); err != nil {
		if !mongoerr.IsDuplicate(err) {
			return nil, err
		}

		// Two submissions inside the same millisecond window collided on the
		// reference index. Retry once with a randomized suffix; if that also
		// fails, report the collision the first attempt hit.
		firstErr := err
		quote.ReferenceNo += strconv.Itoa(rand.IntN(900) + 100)
		if err := s.store.Insert(ctx, quote); err != nil {
			return nil, firstErr
		}
	}

	s.notifier.QuoteReceived(ctx, quote)

	return quote, nil
}

// List returns one page of quotes with optional status and search filters.
func (s *QuoteService) List(ctx context.Context, filter model.QuoteFilter) (*QuoteList, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	quotes, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &QuoteList{
		Quotes:     quotes,
		Total:      total,
		TotalPages: totalPages(total, filter.Limit),
		Page:       filter.Page,
	}, nil
}

// UpdateStatus moves a quote to the given lifecycle status. Any enumerated
// status may be set regardless of the current one.
func (s *QuoteService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*model.Quote, error) {
	quote, err := s.store.UpdateStatus(ctx, id, status, time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFoundError("Quote not found", false, nil)
		}
		return nil, err
	}
	return quote, nil
}

// csvHeader is the column order of the quote export.
var csvHeader = []string{
	"referenceNo", "firstName", "lastName", "email", "phone", "company",
	"serviceType", "incoterms", "originCountry", "originCity",
	"destCountry", "destCity", "totalWeight", "totalCBM",
	"status", "language", "createdAt",
}

// ExportCSV renders every quote matching the filter as a CSV document for
// the admin export download. Pagination is ignored.
func (s *QuoteService) ExportCSV(ctx context.Context, filter model.QuoteFilter) ([]byte, error) {
	quotes, err := s.store.All(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, q := range quotes {
		totalCBM := ""
		if q.TotalCBM != nil {
			totalCBM = strconv.FormatFloat(*q.TotalCBM, 'f', -1, 64)
		}

		record := []string{
			q.ReferenceNo, q.FirstName, q.LastName, q.Email, q.Phone, q.Company,
			q.ServiceType, q.Incoterms, q.OriginCountry, q.OriginCity,
			q.DestCountry, q.DestCity,
			strconv.FormatFloat(q.TotalWeight, 'f', -1, 64), totalCBM,
			q.Status, q.Language, q.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// newReferenceNo builds a customer-facing reference from the submission
// time: "GRL" plus the last eight digits of the epoch-millisecond clock.
// Unique enough in practice; the unique index catches the rest.
func newReferenceNo(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return "GRL" + ms[len(ms)-8:]
}

// defaultLanguage falls back to Turkish, the site's primary locale.
func defaultLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "tr"
	}
	return lang
}

// normalizePage clamps pagination inputs to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// totalPages is a ceiling division; an empty result set has zero pages.
func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}
