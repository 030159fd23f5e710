package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gracelogistics/backend/internal/model"
	"github.com/gracelogistics/backend/internal/server"
	"github.com/gracelogistics/backend/internal/service"
)

// DashboardHandler serves the admin dashboard counters.
type DashboardHandler struct {
	Handler
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(s *server.Server, dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		Handler:   NewHandler(s),
		dashboard: dashboard,
	}
}

// DashboardStatsRequest is empty; the endpoint takes no parameters but
// still goes through the shared pipeline for logging and tracing.
type DashboardStatsRequest struct{}

func (r *DashboardStatsRequest) Validate() error {
	return nil
}

// Stats returns the dashboard counters, freshly counted per request.
func (h *DashboardHandler) Stats(c echo.Context, _ *DashboardStatsRequest) (*model.DashboardStats, error) {
	return h.dashboard.Stats(c.Request().Context())
}
