package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gracelogistics/backend/internal/server"
	"github.com/gracelogistics/backend/internal/service"
	"github.com/gracelogistics/backend/internal/validation"
)

// NewsletterHandler serves the newsletter signup endpoint.
type NewsletterHandler struct {
	Handler
	newsletter *service.NewsletterService
}

// NewNewsletterHandler constructs a NewsletterHandler.
func NewNewsletterHandler(s *server.Server, newsletter *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		Handler:    NewHandler(s),
		newsletter: newsletter,
	}
}

// SubscribeRequest is the footer signup payload.
type SubscribeRequest struct {
	Email    string `json:"email"`
	Language string `json:"language"`
}

func (r *SubscribeRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return validation.CustomValidationErrors{{
			Field:   "email",
			Message: "is required",
		}}
	}
	return nil
}

// SubscribeResponse acknowledges a new subscription.
type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe adds an email to the mailing list. A duplicate address comes
// back as a 400 from the service.
func (h *NewsletterHandler) Subscribe(c echo.Context, req *SubscribeRequest) (*SubscribeResponse, error) {
	if _, err := h.newsletter.Subscribe(c.Request().Context(), req.Email, req.Language); err != nil {
		return nil, err
	}

	return &SubscribeResponse{
		Success: true,
		Message: "Newsletter subscription successful",
	}, nil
}
