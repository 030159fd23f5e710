package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
	"github.com/gracelogistics/backend/internal/service"
	"github.com/gracelogistics/backend/internal/validation"
)

// CalculationHandler serves the CBM calculator record endpoints.
type CalculationHandler struct {
	Handler
	calculations *service.CalculationService
}

// NewCalculationHandler constructs a CalculationHandler.
func NewCalculationHandler(s *server.Server, calculations *service.CalculationService) *CalculationHandler {
	return &CalculationHandler{
		Handler:      NewHandler(s),
		calculations: calculations,
	}
}

// BoxPayload is one package entry as submitted by the calculator widget.
type BoxPayload struct {
	Length   *Number `json:"length"`
	Width    *Number `json:"width"`
	Height   *Number `json:"height"`
	Weight   *Number `json:"weight"`
	Quantity *Number `json:"quantity"`
}

func (b *BoxPayload) toModel() model.Box {
	return model.Box{
		Length:   b.Length.FloatPtr(),
		Width:    b.Width.FloatPtr(),
		Height:   b.Height.FloatPtr(),
		Weight:   b.Weight.FloatPtr(),
		Quantity: b.Quantity.FloatPtr(),
	}
}

// CreateCalculationRequest archives one calculator run. The totals arrive
// precomputed from the browser and are stored verbatim.
type CreateCalculationRequest struct {
	SessionID       string       `json:"sessionId"`
	CalculationType string       `json:"calculationType"`
	SingleBox       *BoxPayload  `json:"singleBox"`
	MultipleBoxes   []BoxPayload `json:"multipleBoxes"`

	Results struct {
		TotalCBM         *Number `json:"totalCBM"`
		TotalWeight      *Number `json:"totalWeight"`
		VolumetricWeight *Number `json:"volumetricWeight"`
		BoxCount         *Number `json:"boxCount"`
	} `json:"results"`

	Language string `json:"language"`
}

func (r *CreateCalculationRequest) Validate() error {
	if r.CalculationType == "" {
		return validation.CustomValidationErrors{{
			Field:   "calculationType",
			Message: "is required",
		}}
	}
	if r.CalculationType != model.CalculationTypeSingle &&
		r.CalculationType != model.CalculationTypeMultiple {
		return validation.CustomValidationErrors{{
			Field: "calculationType",
			Message: "must be one of: " + strings.Join(
				[]string{model.CalculationTypeSingle, model.CalculationTypeMultiple}, " "),
		}}
	}
	return nil
}

// CreateCalculationResponse acknowledges a stored calculation.
type CreateCalculationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create archives a calculator run along with request metadata.
func (h *CalculationHandler) Create(c echo.Context, req *CreateCalculationRequest) (*CreateCalculationResponse, error) {
	in := service.CalculationInput{
		SessionID:       req.SessionID,
		CalculationType: req.CalculationType,
		Results: model.CalculationResults{
			TotalCBM:         req.Results.TotalCBM.FloatPtr(),
			TotalWeight:      req.Results.TotalWeight.FloatPtr(),
			VolumetricWeight: req.Results.VolumetricWeight.FloatPtr(),
			BoxCount:         req.Results.BoxCount.FloatPtr(),
		},

		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Language:  req.Language,
	}

	if req.SingleBox != nil {
		box := req.SingleBox.toModel()
		in.SingleBox = &box
	}
	for _, b := range req.MultipleBoxes {
		in.MultipleBoxes = append(in.MultipleBoxes, b.toModel())
	}

	if _, err := h.calculations.Create(c.Request().Context(), in); err != nil {
		return nil, err
	}

	return &CreateCalculationResponse{
		Success: true,
		Message: "Calculation saved",
	}, nil
}

// ListCalculationsRequest is plain pagination.
type ListCalculationsRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

func (r *ListCalculationsRequest) Validate() error {
	return nil
}

// ListCalculationsResponse is one page of calculation records.
type ListCalculationsResponse struct {
	Calculations []model.CBMCalculation `json:"calculations"`
	TotalPages   int                    `json:"totalPages"`
	CurrentPage  int                    `json:"currentPage"`
	Total        int64                  `json:"total"`
}

// List returns paginated calculation records for the admin panel.
func (h *CalculationHandler) List(c echo.Context, req *ListCalculationsRequest) (*ListCalculationsResponse, error) {
	list, err := h.calculations.List(c.Request().Context(), model.PageFilter{
		Page:  req.Page,
		Limit: req.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListCalculationsResponse{
		Calculations: list.Calculations,
		TotalPages:   list.TotalPages,
		CurrentPage:  list.Page,
		Total:        list.Total,
	}, nil
}
