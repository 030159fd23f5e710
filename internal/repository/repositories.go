package repository

import (
	"github.com/gracelogistics/backend/internal/server"
)

// Repositories is a container for all repository instances, so router and
// service wiring can pass one object around.
type Repositories struct {
	Quotes       *QuoteRepository
	Calculations *CalculationRepository
	Contacts     *ContactRepository
	Newsletters  *NewsletterRepository
	Stats        *StatsRepository
}

// NewRepositories constructs the repository container from the shared
// application container (the Mongo handle lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Quotes:       NewQuoteRepository(s),
		Calculations: NewCalculationRepository(s),
		Contacts:     NewContactRepository(s),
		Newsletters:  NewNewsletterRepository(s),
		Stats:        NewStatsRepository(s),
	}
}
