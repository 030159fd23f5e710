package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gracelogistics/backend/internal/model"
)

// Mailer sends internal notification emails. Implemented by lib/email.Client;
// nil means email is not configured.
type Mailer interface {
	SendQuoteNotification(ctx context.Context, quote *model.Quote) error
	SendContactNotification(ctx context.Context, contact *model.Contact) error
}

// Notifier emails the operations inbox about new submissions.
//
// Sends are best effort: a failed or unconfigured send never fails the
// request that triggered it, the submission is already stored by then.
type Notifier struct {
	mailer Mailer
	log    *zerolog.Logger
}

// NewNotifier constructs a Notifier. mailer may be nil.
func NewNotifier(mailer Mailer, log *zerolog.Logger) *Notifier {
	return &Notifier{mailer: mailer, log: log}
}

// QuoteReceived notifies about a newly stored quote request.
func (n *Notifier) QuoteReceived(ctx context.Context, quote *model.Quote) {
	if n.mailer == nil {
		return
	}
	if err := n.mailer.SendQuoteNotification(ctx, quote); err != nil {
		n.log.Warn().
			Err(err).
			Str("referenceNo", quote.ReferenceNo).
			Msg("quote notification email failed")
	}
}

// ContactReceived notifies about a newly stored contact submission.
func (n *Notifier) ContactReceived(ctx context.Context, contact *model.Contact) {
	if n.mailer == nil {
		return
	}
	if err := n.mailer.SendContactNotification(ctx, contact); err != nil {
		n.log.Warn().
			Err(err).
			Str("formType", contact.FormType).
			Msg("contact notification email failed")
	}
}
