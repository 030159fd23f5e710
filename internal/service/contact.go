package service

import (
	"context"
	"strings"
	"time"

	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
)

// ContactStore is the persistence surface the contact service needs.
type ContactStore interface {
	Insert(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context, filter model.ContactFilter) ([]model.Contact, int64, error)
}

// ContactInput is a contact-form submission after binding and validation.
// FormType is kept as submitted and defaults to "contact" when empty.
type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Message  string
	FormType string
	Language string
}

// QuickQuoteInput is the reduced homepage quick-quote form. It lands in the
// same collection as contact submissions with a fixed subject and message.
type QuickQuoteInput struct {
	Name     string
	Email    string
	Phone    string
	Language string
}

// ContactList is one page of contacts plus the pagination envelope.
type ContactList struct {
	Contacts   []model.Contact
	Total      int64
	TotalPages int
	Page       int
}

// ContactService stores contact-form and quick-quote submissions.
type ContactService struct {
	server   *server.Server
	store    ContactStore
	notifier *Notifier
}

// NewContactService constructs a ContactService.
func NewContactService(s *server.Server, store ContactStore, notifier *Notifier) *ContactService {
	return &ContactService{server: s, store: store, notifier: notifier}
}

// Create stores a full contact-form submission.
func (s *ContactService) Create(ctx context.Context, in ContactInput) (*model.Contact, error) {
	formType := in.FormType
	if formType == "" {
		formType = model.FormTypeContact
	}

	contact := &model.Contact{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:    strings.TrimSpace(in.Phone),
		Subject:  strings.TrimSpace(in.Subject),
		Message:  strings.TrimSpace(in.Message),
		FormType: formType,
		Status:   model.ContactStatusNew,
		Language: defaultLanguage(in.Language),

		CreatedAt: time.Now(),
	}

	if err := s.store.Insert(ctx, contact); err != nil {
		return nil, err
	}

	s.notifier.ContactReceived(ctx, contact)

	return contact, nil
}

// CreateQuickQuote stores a homepage quick-quote submission as a contact
// record with canned subject and message text.
func (s *ContactService) CreateQuickQuote(ctx context.Context, in QuickQuoteInput) (*model.Contact, error) {
	contact := &model.Contact{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:    strings.TrimSpace(in.Phone),
		Subject:  "Quick Quote Request",
		Message:  "Quick quote request from homepage",
		FormType: model.FormTypeQuickQuote,
		Status:   model.ContactStatusNew,
		Language: defaultLanguage(in.Language),

		CreatedAt: time.Now(),
	}

	if err := s.store.Insert(ctx, contact); err != nil {
		return nil, err
	}

	s.notifier.ContactReceived(ctx, contact)

	return contact, nil
}

// List returns one page of contacts with optional status and form-type
// filters, newest first.
func (s *ContactService) List(ctx context.Context, filter model.ContactFilter) (*ContactList, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	contacts, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ContactList{
		Contacts:   contacts,
		Total:      total,
		TotalPages: totalPages(total, filter.Limit),
		Page:       filter.Page,
	}, nil
}
