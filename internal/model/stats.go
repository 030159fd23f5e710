package model

// QuoteStats are the dashboard counters for the quotes collection.
type QuoteStats struct {
	Total      int64 `json:"total"`
	Today      int64 `json:"today"`
	ThisWeek   int64 `json:"thisWeek"`
	ThisMonth  int64 `json:"thisMonth"`
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Quoted     int64 `json:"quoted"`
}

// CalculationStats are the dashboard counters for CBM calculations.
type CalculationStats struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"thisWeek"`
	ThisMonth int64 `json:"thisMonth"`
}

// ContactStats are the dashboard counters for contact submissions.
type ContactStats struct {
	Total int64 `json:"total"`
	New   int64 `json:"new"`
	Today int64 `json:"today"`
}

// NewsletterStats count active subscriptions only.
type NewsletterStats struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
}

// DashboardStats is the aggregate payload served to the admin dashboard.
// Every counter is a point-in-time query; nothing is cached.
type DashboardStats struct {
	Quotes       QuoteStats       `json:"quotes"`
	Calculations CalculationStats `json:"calculations"`
	Contacts     ContactStats     `json:"contacts"`
	Newsletter   NewsletterStats  `json:"newsletter"`
}
