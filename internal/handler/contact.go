package handler

import (
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
	"github.com/gracelogistics/backend/internal/service"
	"github.com/gracelogistics/backend/internal/validation"
)

// ContactHandler serves the contact-form, quick-quote and contact listing
// endpoints.
type ContactHandler struct {
	Handler
	contacts *service.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(s *server.Server, contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:  NewHandler(s),
		contacts: contacts,
	}
}

// requireNameAndEmail is the shared required-field rule of both public
// contact forms.
func requireNameAndEmail(name, email string) error {
	var errs validation.CustomValidationErrors
	if strings.TrimSpace(name) == "" {
		errs = append(errs, validation.CustomValidationError{Field: "name", Message: "is required"})
	}
	if strings.TrimSpace(email) == "" {
		errs = append(errs, validation.CustomValidationError{Field: "email", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateContactRequest is the full contact-form payload. formType is
// optional and defaults to "contact" when omitted.
type CreateContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	FormType string `json:"formType"`
	Language string `json:"language"`
}

func (r *CreateContactRequest) Validate() error {
	err := requireNameAndEmail(r.Name, r.Email)

	if r.FormType != "" && !slices.Contains(model.FormTypes, r.FormType) {
		ferr := validation.CustomValidationError{
			Field:   "formType",
			Message: "must be one of: " + strings.Join(model.FormTypes, " "),
		}
		if errs, ok := err.(validation.CustomValidationErrors); ok {
			return append(errs, ferr)
		}
		return validation.CustomValidationErrors{ferr}
	}

	return err
}

// CreateContactResponse acknowledges a stored submission.
type CreateContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create stores a contact-form submission.
func (h *ContactHandler) Create(c echo.Context, req *CreateContactRequest) (*CreateContactResponse, error) {
	_, err := h.contacts.Create(c.Request().Context(), service.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
		FormType: req.FormType,
		Language: req.Language,
	})
	if err != nil {
		return nil, err
	}

	return &CreateContactResponse{
		Success: true,
		Message: "Contact form submitted successfully",
	}, nil
}

// QuickQuoteRequest is the reduced homepage quick-quote form.
type QuickQuoteRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
}

func (r *QuickQuoteRequest) Validate() error {
	return requireNameAndEmail(r.Name, r.Email)
}

// QuickQuote stores a homepage quick-quote submission.
func (h *ContactHandler) QuickQuote(c echo.Context, req *QuickQuoteRequest) (*CreateContactResponse, error) {
	_, err := h.contacts.CreateQuickQuote(c.Request().Context(), service.QuickQuoteInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Language: req.Language,
	})
	if err != nil {
		return nil, err
	}

	return &CreateContactResponse{
		Success: true,
		Message: "Quote request submitted successfully",
	}, nil
}

// ListContactsRequest filters the admin contact listing.
type ListContactsRequest struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Status   string `query:"status"`
	FormType string `query:"formType"`
}

func (r *ListContactsRequest) Validate() error {
	return nil
}

// ListContactsResponse is one page of contacts.
type ListContactsResponse struct {
	Contacts    []model.Contact `json:"contacts"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int64           `json:"total"`
}

// List returns a filtered, paginated contact listing for the admin panel.
func (h *ContactHandler) List(c echo.Context, req *ListContactsRequest) (*ListContactsResponse, error) {
	list, err := h.contacts.List(c.Request().Context(), model.ContactFilter{
		Page:     req.Page,
		Limit:    req.Limit,
		Status:   statusFilter(req.Status),
		FormType: req.FormType,
	})
	if err != nil {
		return nil, err
	}

	return &ListContactsResponse{
		Contacts:    list.Contacts,
		TotalPages:  list.TotalPages,
		CurrentPage: list.Page,
		Total:       list.Total,
	}, nil
}
