package handler

import (
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
	"github.com/gracelogistics/backend/internal/service"
	"github.com/gracelogistics/backend/internal/validation"
)

// QuoteHandler serves the quote-request endpoints: the public form submit
// and the admin list/status/export operations.
type QuoteHandler struct {
	Handler
	quotes *service.QuoteService
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(s *server.Server, quotes *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		Handler: NewHandler(s),
		quotes:  quotes,
	}
}

// CreateQuoteRequest is the public quote-form payload.
type CreateQuoteRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`

	ServiceType   string `json:"serviceType"`
	Incoterms     string `json:"incoterms"`
	OriginCountry string `json:"originCountry"`
	OriginCity    string `json:"originCity"`
	DestCountry   string `json:"destCountry"`
	DestCity      string `json:"destCity"`

	TotalWeight *Number `json:"totalWeight"`
	TotalCBM    *Number `json:"totalCBM"`

	AdditionalServices model.AdditionalServices `json:"additionalServices"`
	Notes              string                   `json:"notes"`
	Language           string                   `json:"language"`
}

// Validate enumerates every missing required field in one response so the
// form can highlight all of them at once.
func (r *CreateQuoteRequest) Validate() error {
	var errs validation.CustomValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"firstName", r.FirstName},
		{"email", r.Email},
		{"serviceType", r.ServiceType},
		{"originCountry", r.OriginCountry},
		{"originCity", r.OriginCity},
		{"destCountry", r.DestCountry},
		{"destCity", r.DestCity},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, validation.CustomValidationError{
				Field:   f.field,
				Message: "is required",
			})
		}
	}

	// A weight of zero, or a non-numeric string coerced to zero, is still a
	// submitted weight; only an absent, null or blank value fails the check.
	if r.TotalWeight.Missing() {
		errs = append(errs, validation.CustomValidationError{
			Field:   "totalWeight",
			Message: "is required",
		})
	}

	if r.ServiceType != "" && !slices.Contains(model.ServiceTypes, r.ServiceType) {
		errs = append(errs, validation.CustomValidationError{
			Field:   "serviceType",
			Message: "must be one of: " + strings.Join(model.ServiceTypes, " "),
		})
	}

	if r.Incoterms != "" && !slices.Contains(model.Incoterms, r.Incoterms) {
		errs = append(errs, validation.CustomValidationError{
			Field:   "incoterms",
			Message: "must be one of: " + strings.Join(model.Incoterms, " "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateQuoteResponse acknowledges a stored quote request with the
// reference number customers use in follow-ups.
type CreateQuoteResponse struct {
	Success     bool   `json:"success"`
	ReferenceNo string `json:"referenceNo"`
	Message     string `json:"message"`
}

// Create stores a quote request.
func (h *QuoteHandler) Create(c echo.Context, req *CreateQuoteRequest) (*CreateQuoteResponse, error) {
	quote, err := h.quotes.Create(c.Request().Context(), service.QuoteInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,

		ServiceType:   req.ServiceType,
		Incoterms:     req.Incoterms,
		OriginCountry: req.OriginCountry,
		OriginCity:    req.OriginCity,
		DestCountry:   req.DestCountry,
		DestCity:      req.DestCity,

		TotalWeight: req.TotalWeight.Float(),
		TotalCBM:    req.TotalCBM.FloatPtr(),

		AdditionalServices: req.AdditionalServices,
		Notes:              req.Notes,
		Language:           req.Language,
	})
	if err != nil {
		return nil, err
	}

	return &CreateQuoteResponse{
		Success:     true,
		ReferenceNo: quote.ReferenceNo,
		Message:     "Quote request submitted successfully",
	}, nil
}

// ListQuotesRequest is the admin quote listing query. status "all" (or
// empty) disables the status filter.
type ListQuotesRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Status string `query:"status"`
	Search string `query:"search"`
}

func (r *ListQuotesRequest) Validate() error {
	return nil
}

// ListQuotesResponse is one page of quotes plus the pagination envelope.
type ListQuotesResponse struct {
	Quotes      []model.Quote `json:"quotes"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Total       int64         `json:"total"`
}

// List returns a filtered, paginated quote listing for the admin panel.
func (h *QuoteHandler) List(c echo.Context, req *ListQuotesRequest) (*ListQuotesResponse, error) {
	list, err := h.quotes.List(c.Request().Context(), model.QuoteFilter{
		Page:   req.Page,
		Limit:  req.Limit,
		Status: statusFilter(req.Status),
		Search: req.Search,
	})
	if err != nil {
		return nil, err
	}

	return &ListQuotesResponse{
		Quotes:      list.Quotes,
		TotalPages:  list.TotalPages,
		CurrentPage: list.Page,
		Total:       list.Total,
	}, nil
}

// UpdateQuoteStatusRequest moves a quote to a new lifecycle status.
type UpdateQuoteStatusRequest struct {
	ID     string `param:"id"`
	Status string `json:"status"`
}

func (r *UpdateQuoteStatusRequest) Validate() error {
	var errs validation.CustomValidationErrors

	if !validation.IsValidObjectID(r.ID) {
		errs = append(errs, validation.CustomValidationError{
			Field:   "id",
			Message: "must be a valid id",
		})
	}

	if r.Status == "" {
		errs = append(errs, validation.CustomValidationError{
			Field:   "status",
			Message: "is required",
		})
	} else if !slices.Contains(model.QuoteStatuses, r.Status) {
		errs = append(errs, validation.CustomValidationError{
			Field:   "status",
			Message: "must be one of: " + strings.Join(model.QuoteStatuses, " "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateQuoteStatusResponse returns the quote as stored after the update.
type UpdateQuoteStatusResponse struct {
	Success bool         `json:"success"`
	Quote   *model.Quote `json:"quote"`
}

// UpdateStatus sets a quote's status from the admin panel.
func (h *QuoteHandler) UpdateStatus(c echo.Context, req *UpdateQuoteStatusRequest) (*UpdateQuoteStatusResponse, error) {
	// Validate already guaranteed well-formed hex.
	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return nil, err
	}

	quote, err := h.quotes.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return nil, err
	}

	return &UpdateQuoteStatusResponse{Success: true, Quote: quote}, nil
}

// ExportQuotesRequest filters the CSV export the same way as the listing.
type ExportQuotesRequest struct {
	Status string `query:"status"`
	Search string `query:"search"`
}

func (r *ExportQuotesRequest) Validate() error {
	return nil
}

// Export streams all matching quotes as a CSV download.
func (h *QuoteHandler) Export(c echo.Context, req *ExportQuotesRequest) ([]byte, error) {
	return h.quotes.ExportCSV(c.Request().Context(), model.QuoteFilter{
		Status: statusFilter(req.Status),
		Search: req.Search,
	})
}

// statusFilter maps the frontend's "all" sentinel to no filter.
func statusFilter(status string) string {
	if status == "all" {
		return ""
	}
	return status
}
