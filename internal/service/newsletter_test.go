package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracelogistics/backend/internal/errs"
	"github.com/gracelogistics/backend/internal/model"
)

type fakeNewsletterStore struct {
	insertErr error
	inserted  []model.Newsletter
}

func (f *fakeNewsletterStore) Insert(ctx context.Context, sub *model.Newsletter) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, *sub)
	return nil
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	store := &fakeNewsletterStore{}
	svc := &NewsletterService{store: store}

	sub, err := svc.Subscribe(context.Background(), "  News@Example.COM ", "")
	require.NoError(t, err)

	assert.Equal(t, "news@example.com", sub.Email)
	assert.Equal(t, model.NewsletterStatusActive, sub.Status)
	assert.Equal(t, "tr", sub.Language)
	assert.False(t, sub.CreatedAt.IsZero())
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	store := &fakeNewsletterStore{
		insertErr: mongo.WriteException{
			WriteErrors: []mongo.WriteError{{
				Code:    11000,
				Message: `E11000 duplicate key error collection: gracelog.newsletters index: email_1 dup key: { email: "news@example.com" }`,
			}},
		},
	}
	svc := &NewsletterService{store: store}

	_, err := svc.Subscribe(context.Background(), "news@example.com", "tr")
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "Email already subscribed", httpErr.Message)
}
