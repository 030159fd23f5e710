package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
)

// CalculationStore is the persistence surface the calculation service needs.
type CalculationStore interface {
	Insert(ctx context.Context, calc *model.CBMCalculation) error
	List(ctx context.Context, page model.PageFilter) ([]model.CBMCalculation, int64, error)
}

// CalculationInput is a CBM calculator submission plus the request metadata
// the handler extracted from the connection.
type CalculationInput struct {
	SessionID       string
	CalculationType string
	SingleBox       *model.Box
	MultipleBoxes   []model.Box
	Results         model.CalculationResults

	IPAddress string
	UserAgent string
	Language  string
}

// CalculationList is one page of calculation records plus the pagination
// envelope.
type CalculationList struct {
	Calculations []model.CBMCalculation
	Total        int64
	TotalPages   int
	Page         int
}

// CalculationService records CBM calculator usage. The arithmetic happens
// in the browser; the backend only archives what was computed.
type CalculationService struct {
	server *server.Server
	store  CalculationStore
}

// NewCalculationService constructs a CalculationService.
func NewCalculationService(s *server.Server, store CalculationStore) *CalculationService {
	return &CalculationService{server: s, store: store}
}

// Create archives one calculator run. Anonymous visitors get a synthetic
// session id so repeat runs in one page load still group together.
func (s *CalculationService) Create(ctx context.Context, in CalculationInput) (*model.CBMCalculation, error) {
	now := time.Now()

	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		sessionID = "anonymous-" + strconv.FormatInt(now.UnixMilli(), 10)
	}

	calc := &model.CBMCalculation{
		SessionID:       sessionID,
		CalculationType: in.CalculationType,
		SingleBox:       in.SingleBox,
		MultipleBoxes:   in.MultipleBoxes,
		Results:         in.Results,

		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
		Language:  defaultLanguage(in.Language),
		CreatedAt: now,
	}

	if err := s.store.Insert(ctx, calc); err != nil {
		return nil, err
	}

	return calc, nil
}

// List returns one page of calculation records, newest first.
func (s *CalculationService) List(ctx context.Context, page model.PageFilter) (*CalculationList, error) {
	page.Page, page.Limit = normalizePage(page.Page, page.Limit)

	calculations, total, err := s.store.List(ctx, page)
	if err != nil {
		return nil, err
	}

	return &CalculationList{
		Calculations: calculations,
		Total:        total,
		TotalPages:   totalPages(total, page.Limit),
		Page:         page.Page,
	}, nil
}
