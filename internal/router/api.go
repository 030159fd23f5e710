package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracelogistics/backend/internal/handler"
)

// registerAPIRoutes wires the /api route group: the public site forms and
// the admin listing/statistics endpoints.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	api := e.Group("/api")

	// Quote requests.
	api.POST("/quotes", handler.Handle(h.Quotes.Handler, h.Quotes.Create, http.StatusOK))
	api.GET("/quotes", handler.Handle(h.Quotes.Handler, h.Quotes.List, http.StatusOK))
	api.PUT("/quotes/:id/status", handler.Handle(h.Quotes.Handler, h.Quotes.UpdateStatus, http.StatusOK))
	api.GET("/quotes/export", handler.HandleFile(h.Quotes.Handler, h.Quotes.Export, http.StatusOK, "quotes.csv", "text/csv"))

	// CBM calculator records.
	api.POST("/cbm-calculations", handler.Handle(h.Calculations.Handler, h.Calculations.Create, http.StatusOK))
	api.GET("/cbm-calculations", handler.Handle(h.Calculations.Handler, h.Calculations.List, http.StatusOK))

	// Contact forms.
	api.POST("/contacts", handler.Handle(h.Contacts.Handler, h.Contacts.Create, http.StatusOK))
	api.POST("/quick-quote", handler.Handle(h.Contacts.Handler, h.Contacts.QuickQuote, http.StatusOK))
	api.GET("/contacts", handler.Handle(h.Contacts.Handler, h.Contacts.List, http.StatusOK))

	// Newsletter.
	api.POST("/newsletter", handler.Handle(h.Newsletter.Handler, h.Newsletter.Subscribe, http.StatusOK))

	// Admin dashboard.
	api.GET("/dashboard/stats", handler.Handle(h.Dashboard.Handler, h.Dashboard.Stats, http.StatusOK))
}
