package service

import (
	"github.com/gracelogistics/backend/internal/lib/email"
	"github.com/gracelogistics/backend/internal/repository"
	"github.com/gracelogistics/backend/internal/server"
)

// Services groups the business-logic services handed to the handler layer.
type Services struct {
	Quotes       *QuoteService
	Calculations *CalculationService
	Contacts     *ContactService
	Newsletter   *NewsletterService
	Dashboard    *DashboardService
}

// NewServices constructs every service against the real repositories.
//
// Notification emails are optional: when no Resend key is configured the
// notifier is wired with a nil mailer and silently does nothing.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var mailer Mailer
	if s.Config.Email.Enabled() {
		mailer = email.NewClient(s.Config, s.Logger)
	}
	notifier := NewNotifier(mailer, s.Logger)

	return &Services{
		Quotes:       NewQuoteService(s, repos.Quotes, notifier),
		Calculations: NewCalculationService(s, repos.Calculations),
		Contacts:     NewContactService(s, repos.Contacts, notifier),
		Newsletter:   NewNewsletterService(s, repos.Newsletters),
		Dashboard:    NewDashboardService(s, repos.Stats),
	}, nil
}
