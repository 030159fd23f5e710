package service

import (
	"context"
	"strings"
	"time"

	"github.com/gracelogistics/backend/internal/errs"
	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/mongoerr"
	"github.com/gracelogistics/backend/internal/server"
)

// NewsletterStore is the persistence surface the newsletter service needs.
type NewsletterStore interface {
	Insert(ctx context.Context, sub *model.Newsletter) error
}

// NewsletterService handles mailing-list subscriptions.
type NewsletterService struct {
	server *server.Server
	store  NewsletterStore
}

// NewNewsletterService constructs a NewsletterService.
func NewNewsletterService(s *server.Server, store NewsletterStore) *NewsletterService {
	return &NewsletterService{server: s, store: store}
}

// Subscribe stores a new subscription. Emails are normalized to lower case
// before insert so the unique index also deduplicates case variants.
func (s *NewsletterService) Subscribe(ctx context.Context, emailAddr, language string) (*model.Newsletter, error) {
	sub := &model.Newsletter{
		Email:     strings.ToLower(strings.TrimSpace(emailAddr)),
		Status:    model.NewsletterStatusActive,
		Language:  defaultLanguage(language),
		CreatedAt: time.Now(),
	}

	if err := s.store.Insert(ctx, sub); err != nil {
		if mongoerr.IsDuplicate(err) {
			return nil, errs.NewDuplicateError("Email already subscribed")
		}
		return nil, err
	}

	return sub, nil
}
