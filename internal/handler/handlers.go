package handler

import (
	"github.com/gracelogistics/backend/internal/server"
	"github.com/gracelogistics/backend/internal/service"
)

// Handlers is a container that groups all HTTP handlers so router setup
// passes one object around instead of many.
type Handlers struct {
	Health       *HealthHandler
	Quotes       *QuoteHandler
	Calculations *CalculationHandler
	Contacts     *ContactHandler
	Newsletter   *NewsletterHandler
	Dashboard    *DashboardHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Quotes:       NewQuoteHandler(s, services.Quotes),
		Calculations: NewCalculationHandler(s, services.Calculations),
		Contacts:     NewContactHandler(s, services.Contacts),
		Newsletter:   NewNewsletterHandler(s, services.Newsletter),
		Dashboard:    NewDashboardHandler(s, services.Dashboard),
	}
}
