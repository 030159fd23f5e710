package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracelogistics/backend/internal/model"
)

type fakeContactStore struct {
	insertErr error
	listFn    func(ctx context.Context, filter model.ContactFilter) ([]model.Contact, int64, error)
	inserted  []model.Contact
}

func (f *fakeContactStore) Insert(ctx context.Context, contact *model.Contact) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, *contact)
	return nil
}

func (f *fakeContactStore) List(ctx context.Context, filter model.ContactFilter) ([]model.Contact, int64, error) {
	return f.listFn(ctx, filter)
}

func newTestContactService(store ContactStore) *ContactService {
	log := zerolog.Nop()
	return &ContactService{store: store, notifier: NewNotifier(nil, &log)}
}

func TestContactCreateNormalizes(t *testing.T) {
	store := &fakeContactStore{}
	svc := newTestContactService(store)

	contact, err := svc.Create(context.Background(), ContactInput{
		Name:    "  Mehmet Demir ",
		Email:   " MEHMET@Example.com",
		Subject: "Shipping rates ",
		Message: " hello ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Mehmet Demir", contact.Name)
	assert.Equal(t, "mehmet@example.com", contact.Email)
	assert.Equal(t, "Shipping rates", contact.Subject)
	assert.Equal(t, model.FormTypeContact, contact.FormType)
	assert.Equal(t, model.ContactStatusNew, contact.Status)
	assert.Equal(t, "tr", contact.Language)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestContactCreateKeepsSubmittedFormType(t *testing.T) {
	store := &fakeContactStore{}
	svc := newTestContactService(store)

	contact, err := svc.Create(context.Background(), ContactInput{
		Name:     "Ayse",
		Email:    "ayse@example.com",
		FormType: model.FormTypeQuickQuote,
	})
	require.NoError(t, err)

	assert.Equal(t, model.FormTypeQuickQuote, contact.FormType)
}

func TestQuickQuoteUsesCannedText(t *testing.T) {
	store := &fakeContactStore{}
	svc := newTestContactService(store)

	contact, err := svc.CreateQuickQuote(context.Background(), QuickQuoteInput{
		Name:     "Zeynep",
		Email:    "zeynep@example.com",
		Language: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, model.FormTypeQuickQuote, contact.FormType)
	assert.Equal(t, "Quick Quote Request", contact.Subject)
	assert.Equal(t, "Quick quote request from homepage", contact.Message)
	assert.Equal(t, model.ContactStatusNew, contact.Status)
	assert.Equal(t, "en", contact.Language)
}

func TestContactListPassesFilters(t *testing.T) {
	var seen model.ContactFilter
	store := &fakeContactStore{
		listFn: func(ctx context.Context, filter model.ContactFilter) ([]model.Contact, int64, error) {
			seen = filter
			return []model.Contact{}, 0, nil
		},
	}
	svc := newTestContactService(store)

	_, err := svc.List(context.Background(), model.ContactFilter{
		Page:     2,
		Limit:    20,
		Status:   model.ContactStatusNew,
		FormType: model.FormTypeQuickQuote,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, seen.Page)
	assert.Equal(t, 20, seen.Limit)
	assert.Equal(t, model.ContactStatusNew, seen.Status)
	assert.Equal(t, model.FormTypeQuickQuote, seen.FormType)
}
